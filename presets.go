package lignum

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveSceneDef writes a scene definition to disk as JSON. Definitions
// are the swap unit for facade models: loading a different file and
// re-spawning replaces the scene content.
func SaveSceneDef(def *SceneDef, filename string) error {
	bytes, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

// LoadSceneDef reads a scene definition from disk.
func LoadSceneDef(filename string) (*SceneDef, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var def SceneDef
	if err := json.Unmarshal(bytes, &def); err != nil {
		return nil, fmt.Errorf("parsing scene def %s: %w", filename, err)
	}
	return &def, nil
}

// ReplaceModel swaps the scene content for a new definition: every node
// is removed, the new definition is spawned, and any active section is
// invalidated so the next toggle recomputes against the new facade.
func ReplaceModel(cmd *Commands, assets *AssetServer, controller *SceneController, def *SceneDef) []NodeId {
	if controller != nil && controller.Sectioned() {
		controller.ToggleSection()
	}
	cmd.Scene().Clear()
	return LoadScene(cmd, assets, def)
}
