// Package main exports a .mcaddon archive from a mob record file without
// running the server. Useful for inspecting compiler output during tuning.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Anteater2019/ai-minecraft-platform/internal/addon"
	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
	"github.com/Anteater2019/ai-minecraft-platform/internal/platform/config"
)

func main() {
	recordPath := flag.String("record", "", "Path to a mob record JSON file")
	outPath := flag.String("out", "", "Output path (defaults to <identifier>.mcaddon)")
	flag.Parse()

	if *recordPath == "" {
		config.Exitf("-record is required")
	}

	raw, err := os.ReadFile(*recordPath)
	if err != nil {
		config.Exitf("read record: %v", err)
	}

	var record mob.Mob
	if err := json.Unmarshal(raw, &record); err != nil {
		config.Exitf("parse record: %v", err)
	}

	archive, err := addon.Build(record)
	if err != nil {
		config.Exitf("build addon: %v", err)
	}

	out := *outPath
	if out == "" {
		out = mob.Sanitize(record.Name) + ".mcaddon"
	}
	if err := os.WriteFile(out, archive, 0o644); err != nil {
		config.Exitf("write addon: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(archive))
}
