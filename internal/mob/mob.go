// Package mob models generated creatures and compiles their declared
// abilities into a Bedrock entity component set.
//
// The compiler is deliberately total: any ability list, including an empty or
// entirely unrecognized one, produces a valid component set. Records are
// immutable inputs; compilation only derives new structures.
package mob

// LootDrop describes a single drop entry on a mob record.
type LootDrop struct {
	Item string `json:"item"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// Mob is the validated structured description of one creature.
type Mob struct {
	Name         string     `json:"name"`
	Health       int        `json:"health"`
	AttackDamage int        `json:"attack_damage"`
	Abilities    []string   `json:"abilities"`
	Loot         []LootDrop `json:"loot"`
}

// Components maps namespaced component names to their configuration blocks.
// Writes to an existing key fully replace the previous value.
type Components map[string]any
