package addon

// cube is a shorthand for one textured box within a bone.
func cube(origin [3]int, size [3]int) map[string]any {
	return map[string]any{
		"origin": []any{origin[0], origin[1], origin[2]},
		"size":   []any{size[0], size[1], size[2]},
		"uv":     []any{0, 0},
	}
}

func bone(name, parent string, pivot [3]int, c map[string]any) map[string]any {
	b := map[string]any{
		"name":  name,
		"pivot": []any{pivot[0], pivot[1], pivot[2]},
		"cubes": []any{c},
	}
	if parent != "" {
		b["parent"] = parent
	}
	return b
}

// Geometry builds a simple humanoid placeholder model: head, body, and four
// limbs.
func Geometry(id string) map[string]any {
	return map[string]any{
		"format_version": "1.12.0",
		"minecraft:geometry": []any{
			map[string]any{
				"description": map[string]any{
					"identifier":            "geometry." + id,
					"texture_width":         16,
					"texture_height":        16,
					"visible_bounds_width":  1,
					"visible_bounds_height": 2,
					"visible_bounds_offset": []any{0, 1, 0},
				},
				"bones": []any{
					bone("body", "", [3]int{0, 24, 0}, cube([3]int{-4, 12, -2}, [3]int{8, 12, 4})),
					bone("head", "body", [3]int{0, 24, 0}, cube([3]int{-4, 24, -4}, [3]int{8, 8, 8})),
					bone("left_arm", "body", [3]int{5, 22, 0}, cube([3]int{4, 12, -2}, [3]int{4, 12, 4})),
					bone("right_arm", "body", [3]int{-5, 22, 0}, cube([3]int{-8, 12, -2}, [3]int{4, 12, 4})),
					bone("left_leg", "body", [3]int{2, 12, 0}, cube([3]int{0, 0, -2}, [3]int{4, 12, 4})),
					bone("right_leg", "body", [3]int{-2, 12, 0}, cube([3]int{-4, 0, -2}, [3]int{4, 12, 4})),
				},
			},
		},
	}
}
