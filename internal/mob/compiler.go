package mob

// Component keys the compiler reads or writes by name.
const (
	componentHealth         = "minecraft:health"
	componentAttack         = "minecraft:attack"
	componentTypeFamily     = "minecraft:type_family"
	componentWalkNavigation = "minecraft:navigation.walk"
	componentMeleeGoal      = "minecraft:behavior.melee_attack"
	componentRangedGoal     = "minecraft:behavior.ranged_attack"
	componentTargetGoal     = "minecraft:behavior.nearest_attackable_target"
)

// Base returns the default component set every mob starts from: appearance,
// physics, passive wandering behaviors, and the loot table reference for the
// given identifier. A fresh set is returned on every call.
func Base(id string) Components {
	return Components{
		"minecraft:physics": map[string]any{},
		componentTypeFamily: map[string]any{
			"family": []any{"mob", "custom"},
		},
		"minecraft:collision_box": map[string]any{
			"width":  0.8,
			"height": 1.8,
		},
		"minecraft:movement": map[string]any{
			"value": 0.3,
		},
		"minecraft:movement.basic": map[string]any{},
		"minecraft:jump.static":    map[string]any{},
		componentWalkNavigation: map[string]any{
			"can_path_over_water": true,
			"avoid_water":         true,
			"can_walk":            true,
		},
		"minecraft:pushable": map[string]any{
			"is_pushable":           true,
			"is_pushable_by_piston": true,
		},
		"minecraft:behavior.random_stroll": map[string]any{
			"priority":         6,
			"speed_multiplier": 1.0,
		},
		"minecraft:behavior.look_at_player": map[string]any{
			"priority":      7,
			"look_distance": 6.0,
			"probability":   0.02,
		},
		"minecraft:behavior.random_look_around": map[string]any{
			"priority": 8,
		},
		"minecraft:behavior.hurt_by_target": map[string]any{
			"priority": 1,
		},
		"minecraft:loot": map[string]any{
			"table": "loot_tables/entities/" + id + ".json",
		},
	}
}

// Compile applies the ability rules to a copy of base, injects health and
// attack damage, and runs the derived-default pass. Abilities are processed
// in input order, so a later ability wins when two target the same component
// key. Unknown abilities are ignored. The base set is never mutated and the
// function never fails.
func Compile(base Components, abilities []string, health, attackDamage int) Components {
	out := make(Components, len(base)+8)
	for key, value := range base {
		out[key] = value
	}

	out[componentHealth] = map[string]any{
		"value": health,
		"max":   health,
	}
	out[componentAttack] = map[string]any{
		"damage": attackDamage,
	}

	hostile := false
	for _, ability := range abilities {
		rule, ok := lookupRule(ability)
		if !ok {
			continue
		}
		// Removals run before additions so a rule that swaps navigation
		// modes cannot leave both present.
		for _, key := range rule.Remove {
			delete(out, key)
		}
		for key, component := range rule.Add {
			out[key] = component
		}
		if rule.Hostile {
			hostile = true
		}
	}

	applyDerivedDefaults(out, hostile)
	return out
}

// applyDerivedDefaults guarantees every compiled mob is viable in-engine: it
// can always acquire a target and carries at least one attack goal even when
// the abilities only supplied movement or passive traits.
//
// Targeting is installed unconditionally; the accumulated hostility flag only
// widens the type family so the engine classifies the mob as a monster.
func applyDerivedDefaults(set Components, hostile bool) {
	if _, ok := set[componentTargetGoal]; !ok {
		set[componentTargetGoal] = map[string]any{
			"priority":         2,
			"must_see":         true,
			"reselect_targets": true,
			"entity_types": []any{
				map[string]any{
					"filters": map[string]any{
						"test":    "is_family",
						"subject": "other",
						"value":   "player",
					},
					"max_dist": 16.0,
				},
			},
		}
	}

	_, hasMelee := set[componentMeleeGoal]
	_, hasRanged := set[componentRangedGoal]
	if !hasMelee && !hasRanged {
		set[componentMeleeGoal] = map[string]any{
			"priority":         3,
			"speed_multiplier": 1.2,
			"track_target":     true,
		}
	}

	if hostile {
		set[componentTypeFamily] = map[string]any{
			"family": []any{"mob", "custom", "monster"},
		}
	}
}
