package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
)

// parseRecord repairs and coerces raw model output into a validated mob
// record.
func parseRecord(raw string) (mob.Mob, error) {
	data, err := extractJSON(raw)
	if err != nil {
		return mob.Mob{}, err
	}
	return coerceRecord(data)
}

// coerceRecord maps the loosely-typed model output onto a mob record. Numeric
// fields arrive as floats, list fields sometimes arrive as strings, and loot
// entries may be individually malformed; everything coercible is kept and
// malformed loot entries are dropped one by one.
func coerceRecord(data map[string]any) (mob.Mob, error) {
	name, ok := data["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return mob.Mob{}, fmt.Errorf("record missing name")
	}

	health, ok := asInt(data["health"])
	if !ok || health <= 0 {
		return mob.Mob{}, fmt.Errorf("record missing positive health")
	}
	attackDamage, ok := asInt(data["attack_damage"])
	if !ok || attackDamage <= 0 {
		return mob.Mob{}, fmt.Errorf("record missing positive attack_damage")
	}

	return mob.Mob{
		Name:         name,
		Health:       health,
		AttackDamage: attackDamage,
		Abilities:    coerceAbilities(data["abilities"]),
		Loot:         coerceLoot(data["loot"]),
	}, nil
}

// coerceAbilities accepts a JSON list of strings, a JSON-encoded list inside
// a string, or a comma-separated string. Anything else yields no abilities.
func coerceAbilities(value any) []string {
	switch typed := value.(type) {
	case []any:
		abilities := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				abilities = append(abilities, s)
			}
		}
		return abilities
	case string:
		var list []string
		if err := json.Unmarshal([]byte(typed), &list); err == nil {
			return list
		}
		var abilities []string
		for _, part := range strings.Split(typed, ",") {
			if part = strings.TrimSpace(part); part != "" {
				abilities = append(abilities, part)
			}
		}
		return abilities
	default:
		return nil
	}
}

// coerceLoot keeps every well-formed drop entry and silently drops the rest.
func coerceLoot(value any) []mob.LootDrop {
	var items []any
	switch typed := value.(type) {
	case []any:
		items = typed
	case string:
		if err := json.Unmarshal([]byte(typed), &items); err != nil {
			return nil
		}
	default:
		return nil
	}

	var drops []mob.LootDrop
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		itemID, ok := entry["item"].(string)
		if !ok || strings.TrimSpace(itemID) == "" {
			continue
		}
		min, okMin := asInt(entry["min"])
		max, okMax := asInt(entry["max"])
		if !okMin || !okMax {
			continue
		}
		drops = append(drops, mob.LootDrop{Item: itemID, Min: min, Max: max})
	}
	return drops
}

// asInt coerces JSON numerics, including floats and numeric strings, to int.
func asInt(value any) (int, bool) {
	switch typed := value.(type) {
	case float64:
		return int(typed), true
	case int:
		return typed, true
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(typed), "%g", &f); err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
