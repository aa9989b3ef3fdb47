package addon

// Manifest is a Bedrock pack manifest document.
type Manifest struct {
	FormatVersion int                  `json:"format_version"`
	Header        ManifestHeader       `json:"header"`
	Modules       []ManifestModule     `json:"modules"`
	Dependencies  []ManifestDependency `json:"dependencies"`
}

// ManifestHeader declares pack identity and engine compatibility.
type ManifestHeader struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	UUID             string `json:"uuid"`
	Version          [3]int `json:"version"`
	MinEngineVersion [3]int `json:"min_engine_version"`
}

// ManifestModule declares one pack content module.
type ManifestModule struct {
	Type    string `json:"type"`
	UUID    string `json:"uuid"`
	Version [3]int `json:"version"`
}

// ManifestDependency references another pack by its header UUID.
type ManifestDependency struct {
	UUID    string `json:"uuid"`
	Version [3]int `json:"version"`
}

var (
	packVersion      = [3]int{1, 0, 0}
	minEngineVersion = [3]int{1, 20, 0}
)

// BehaviorManifest builds the behavior pack manifest for a mob identifier.
// Its dependency points at the resource pack header so the engine activates
// both packs together.
func BehaviorManifest(id string) Manifest {
	return Manifest{
		FormatVersion: 2,
		Header: ManifestHeader{
			Name:             id + " Behavior Pack",
			Description:      "Behavior pack for " + id,
			UUID:             DeterministicUUID(nsBehaviorHeader, id),
			Version:          packVersion,
			MinEngineVersion: minEngineVersion,
		},
		Modules: []ManifestModule{
			{
				Type:    "data",
				UUID:    DeterministicUUID(nsBehaviorModule, id),
				Version: packVersion,
			},
		},
		Dependencies: []ManifestDependency{
			{UUID: DeterministicUUID(nsResourceHeader, id), Version: packVersion},
		},
	}
}

// ResourceManifest builds the resource pack manifest for a mob identifier,
// depending back on the behavior pack header.
func ResourceManifest(id string) Manifest {
	return Manifest{
		FormatVersion: 2,
		Header: ManifestHeader{
			Name:             id + " Resource Pack",
			Description:      "Resource pack for " + id,
			UUID:             DeterministicUUID(nsResourceHeader, id),
			Version:          packVersion,
			MinEngineVersion: minEngineVersion,
		},
		Modules: []ManifestModule{
			{
				Type:    "resources",
				UUID:    DeterministicUUID(nsResourceModule, id),
				Version: packVersion,
			},
		},
		Dependencies: []ManifestDependency{
			{UUID: DeterministicUUID(nsBehaviorHeader, id), Version: packVersion},
		},
	}
}
