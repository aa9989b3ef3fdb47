package mob

// LootTable is the Bedrock loot table document for one mob.
type LootTable struct {
	Pools []LootPool `json:"pools"`
}

// LootPool is a single weighted pool within a loot table.
type LootPool struct {
	Rolls   int         `json:"rolls"`
	Entries []LootEntry `json:"entries"`
}

// LootEntry is one weighted item drop within a pool.
type LootEntry struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	Weight    int            `json:"weight"`
	Functions []LootFunction `json:"functions"`
}

// LootFunction applies a count range to a drop.
type LootFunction struct {
	Function string    `json:"function"`
	Count    LootRange `json:"count"`
}

// LootRange bounds a drop count. Bounds pass through unvalidated.
type LootRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CompileLoot maps drop specs 1:1 onto a single pool of weight-1 entries in
// input order. An empty drop list yields a structurally valid empty pool.
func CompileLoot(drops []LootDrop) LootTable {
	entries := make([]LootEntry, 0, len(drops))
	for _, drop := range drops {
		entries = append(entries, LootEntry{
			Type:   "item",
			Name:   drop.Item,
			Weight: 1,
			Functions: []LootFunction{
				{
					Function: "set_count",
					Count:    LootRange{Min: drop.Min, Max: drop.Max},
				},
			},
		})
	}
	return LootTable{
		Pools: []LootPool{
			{Rolls: 1, Entries: entries},
		},
	}
}
