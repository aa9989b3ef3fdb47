package addon

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Anteater2019/ai-minecraft-platform/internal/mob"
)

// Build assembles the full .mcaddon archive for a mob record: a behavior
// pack and a resource pack laid out under <id>_BP and <id>_RP.
func Build(m mob.Mob) ([]byte, error) {
	id := mob.Sanitize(m.Name)
	bp := id + "_BP"
	rp := id + "_RP"

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		path    string
		content func() ([]byte, error)
	}{
		{bp + "/manifest.json", jsonDoc(BehaviorManifest(id))},
		{bp + "/entities/" + id + ".json", jsonDoc(BehaviorEntity(id, m))},
		{bp + "/loot_tables/entities/" + id + ".json", jsonDoc(mob.CompileLoot(m.Loot))},
		{rp + "/manifest.json", jsonDoc(ResourceManifest(id))},
		{rp + "/entity/" + id + ".entity.json", jsonDoc(ClientEntity(id))},
		{rp + "/models/entity/" + id + ".geo.json", jsonDoc(Geometry(id))},
		{rp + "/texts/en_US.lang", func() ([]byte, error) { return []byte(LangFile(id, m.Name)), nil }},
		{rp + "/textures/entity/" + id + ".png", func() ([]byte, error) { return PlaceholderTexture(), nil }},
	}

	for _, f := range files {
		content, err := f.content()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.path, err)
		}
		w, err := zw.Create(f.path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.path, err)
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonDoc defers indented JSON rendering of a document. Go's map key sorting
// during marshal keeps the output stable for identical inputs.
func jsonDoc(doc any) func() ([]byte, error) {
	return func() ([]byte, error) {
		return json.MarshalIndent(doc, "", "  ")
	}
}
