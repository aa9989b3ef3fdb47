package mob

import "strings"

// Rule describes what one recognized ability does to the working component
// set: keys listed in Remove are deleted first, then every entry in Add is
// written by overwrite. Hostile marks abilities that make a mob seek combat.
type Rule struct {
	Add     Components
	Remove  []string
	Hostile bool
}

// rangedAttackGoal is shared by every projectile ability so they all drive
// the same attack behavior regardless of projectile type.
func rangedAttackGoal() map[string]any {
	return map[string]any{
		"priority":             3,
		"burst_shots":          1,
		"charge_shoot_trigger": 2.0,
		"speed_multiplier":     1.0,
	}
}

func shooter(projectile string) map[string]any {
	return map[string]any{
		"def":     projectile,
		"type":    "ranged",
		"aux_val": 0,
	}
}

func contactEffect(effect string) map[string]any {
	return map[string]any{
		"mob_effect":   effect,
		"effect_range": 2.0,
		"effect_time":  10,
	}
}

// abilityRules is the static keyword-to-rule table. It is built once at
// startup and never written afterwards; the per-rule payloads are shared and
// must be treated as read-only by the compiler.
var abilityRules = map[string]Rule{
	"melee attack": {
		Add: Components{
			componentMeleeGoal: map[string]any{
				"priority":         3,
				"speed_multiplier": 1.2,
				"track_target":     true,
			},
		},
		Hostile: true,
	},
	"ranged attack": {
		Add:     Components{componentRangedGoal: rangedAttackGoal()},
		Hostile: true,
	},
	"shoot fireballs": {
		Add: Components{
			"minecraft:shooter":  shooter("minecraft:small_fireball"),
			componentRangedGoal: rangedAttackGoal(),
		},
		Hostile: true,
	},
	"shoot snowballs": {
		Add: Components{
			"minecraft:shooter":  shooter("minecraft:snowball"),
			componentRangedGoal: rangedAttackGoal(),
		},
		Hostile: true,
	},
	"shoot arrows": {
		Add: Components{
			"minecraft:shooter":  shooter("minecraft:arrow"),
			componentRangedGoal: rangedAttackGoal(),
		},
		Hostile: true,
	},
	"flying": {
		Add: Components{
			"minecraft:flying": map[string]any{},
			"minecraft:navigation.fly": map[string]any{
				"can_path_over_water": true,
				"can_pass_doors":      true,
			},
		},
		Remove: []string{componentWalkNavigation},
	},
	"teleport": {
		Add: Components{
			"minecraft:teleport": map[string]any{
				"random_teleports":            true,
				"max_random_teleport_time":    30.0,
				"random_teleport_cube_length": 16.0,
			},
		},
	},
	"explode": {
		Add: Components{
			"minecraft:explode": map[string]any{
				"fuse_length": 1.5,
				"fuse_lit":    true,
				"power":       3,
				"causes_fire": false,
			},
		},
		Hostile: true,
	},
	"swim": {
		Add: Components{
			"minecraft:navigation.swim": map[string]any{
				"can_path_over_water": false,
				"can_sink":            false,
			},
		},
		Remove: []string{componentWalkNavigation},
	},
	"poison": {
		Add:     Components{"minecraft:mob_effect": contactEffect("poison")},
		Hostile: true,
	},
	"wither": {
		Add:     Components{"minecraft:mob_effect": contactEffect("wither")},
		Hostile: true,
	},
}

// lookupRule resolves an ability string case-insensitively after trimming.
// Unrecognized abilities resolve to nothing; the vocabulary is open-ended.
func lookupRule(ability string) (Rule, bool) {
	rule, ok := abilityRules[strings.ToLower(strings.TrimSpace(ability))]
	return rule, ok
}
