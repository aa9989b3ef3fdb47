package addon

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
)

func testMob() mob.Mob {
	return mob.Mob{
		Name:         "Fire Dragon",
		Health:       100,
		AttackDamage: 15,
		Abilities:    []string{"melee attack"},
		Loot:         []mob.LootDrop{{Item: "minecraft:diamond", Min: 1, Max: 3}},
	}
}

func buildArchive(t *testing.T, m mob.Mob) *zip.Reader {
	t.Helper()
	raw, err := Build(m)
	if err != nil {
		t.Fatalf("build addon: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	return zr
}

func readEntry(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	f, err := zr.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return raw
}

func readJSON(t *testing.T, zr *zip.Reader, name string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(readEntry(t, zr, name), &doc); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return doc
}

func TestBuildArchiveLayout(t *testing.T) {
	zr := buildArchive(t, testMob())

	wantPaths := []string{
		"fire_dragon_BP/manifest.json",
		"fire_dragon_BP/entities/fire_dragon.json",
		"fire_dragon_BP/loot_tables/entities/fire_dragon.json",
		"fire_dragon_RP/manifest.json",
		"fire_dragon_RP/entity/fire_dragon.entity.json",
		"fire_dragon_RP/models/entity/fire_dragon.geo.json",
		"fire_dragon_RP/texts/en_US.lang",
		"fire_dragon_RP/textures/entity/fire_dragon.png",
	}

	want := map[string]bool{}
	for _, name := range wantPaths {
		want[name] = true
	}
	got := map[string]bool{}
	for _, f := range zr.File {
		got[f.Name] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("archive missing %s", name)
		}
	}
	for name := range got {
		if !want[name] {
			t.Errorf("archive has unexpected entry %s", name)
		}
	}
}

func TestBuildEveryJSONDocumentParses(t *testing.T) {
	zr := buildArchive(t, testMob())
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".json") {
			continue
		}
		var doc any
		if err := json.Unmarshal(readEntry(t, zr, f.Name), &doc); err != nil {
			t.Errorf("%s is not valid JSON: %v", f.Name, err)
		}
	}
}

func TestBuildManifestsCrossReference(t *testing.T) {
	zr := buildArchive(t, testMob())
	bp := readJSON(t, zr, "fire_dragon_BP/manifest.json")
	rp := readJSON(t, zr, "fire_dragon_RP/manifest.json")

	bpUUID := bp["header"].(map[string]any)["uuid"].(string)
	rpUUID := rp["header"].(map[string]any)["uuid"].(string)
	if bpUUID == rpUUID {
		t.Fatal("behavior and resource pack headers share a UUID")
	}

	bpDep := bp["dependencies"].([]any)[0].(map[string]any)["uuid"].(string)
	if bpDep != rpUUID {
		t.Fatalf("BP dependency = %s, want RP header %s", bpDep, rpUUID)
	}
	rpDep := rp["dependencies"].([]any)[0].(map[string]any)["uuid"].(string)
	if rpDep != bpUUID {
		t.Fatalf("RP dependency = %s, want BP header %s", rpDep, bpUUID)
	}
}

func TestBuildManifestStructure(t *testing.T) {
	zr := buildArchive(t, testMob())
	bp := readJSON(t, zr, "fire_dragon_BP/manifest.json")
	rp := readJSON(t, zr, "fire_dragon_RP/manifest.json")

	if bp["format_version"] != float64(2) {
		t.Fatalf("BP format_version = %v", bp["format_version"])
	}
	if got := bp["modules"].([]any)[0].(map[string]any)["type"]; got != "data" {
		t.Fatalf("BP module type = %v, want data", got)
	}
	if got := rp["modules"].([]any)[0].(map[string]any)["type"]; got != "resources" {
		t.Fatalf("RP module type = %v, want resources", got)
	}
}

func TestBuildEntityCarriesHealthAndAttack(t *testing.T) {
	m := testMob()
	m.Health = 200
	m.AttackDamage = 25
	zr := buildArchive(t, m)

	entity := readJSON(t, zr, "fire_dragon_BP/entities/fire_dragon.json")
	components := entity["minecraft:entity"].(map[string]any)["components"].(map[string]any)
	health := components["minecraft:health"].(map[string]any)
	if health["value"] != float64(200) || health["max"] != float64(200) {
		t.Fatalf("health = %v, want 200/200", health)
	}
	attack := components["minecraft:attack"].(map[string]any)
	if attack["damage"] != float64(25) {
		t.Fatalf("attack = %v, want damage 25", attack)
	}
}

func TestBuildLangFileHasDisplayName(t *testing.T) {
	m := testMob()
	m.Name = "Ice Golem"
	zr := buildArchive(t, m)

	lang := string(readEntry(t, zr, "ice_golem_RP/texts/en_US.lang"))
	if !strings.Contains(lang, "entity.custom:ice_golem.name=Ice Golem") {
		t.Fatalf("lang file missing entity name line:\n%s", lang)
	}
	if !strings.Contains(lang, "Spawn Ice Golem") {
		t.Fatalf("lang file missing spawn egg line:\n%s", lang)
	}
}

func TestBuildTextureIsPNG(t *testing.T) {
	zr := buildArchive(t, testMob())
	raw := readEntry(t, zr, "fire_dragon_RP/textures/entity/fire_dragon.png")
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Fatalf("texture does not start with PNG magic: % x", raw[:4])
	}
}

func TestBuildDeterministic(t *testing.T) {
	m := testMob()
	first, err := Build(m)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := Build(m)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("two builds of the same record produced different archives")
	}
}
