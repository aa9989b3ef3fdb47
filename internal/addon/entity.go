package addon

import "github.com/Anteater2019/ai-minecraft-platform/internal/mob"

// BehaviorEntity builds the behavior pack entity document: the compiled
// component set wrapped in the server entity envelope.
func BehaviorEntity(id string, m mob.Mob) map[string]any {
	components := mob.Compile(mob.Base(id), m.Abilities, m.Health, m.AttackDamage)
	return map[string]any{
		"format_version": "1.12.0",
		"minecraft:entity": map[string]any{
			"description": map[string]any{
				"identifier":    "custom:" + id,
				"is_spawnable":  true,
				"is_summonable": true,
			},
			"components": components,
		},
	}
}

// ClientEntity builds the resource pack client entity document, binding the
// mob's texture, geometry, and render controller.
func ClientEntity(id string) map[string]any {
	return map[string]any{
		"format_version": "1.10.0",
		"minecraft:client_entity": map[string]any{
			"description": map[string]any{
				"identifier": "custom:" + id,
				"materials": map[string]any{
					"default": "entity_alphatest",
				},
				"textures": map[string]any{
					"default": "textures/entity/" + id,
				},
				"geometry": map[string]any{
					"default": "geometry." + id,
				},
				"render_controllers": []any{
					"controller.render.default",
				},
				"spawn_egg": map[string]any{
					"base_color":    "#FF00FF",
					"overlay_color": "#800080",
				},
			},
		},
	}
}
