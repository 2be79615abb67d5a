// Package scenes holds the embedded scene data files and their decoded
// form. Scene names are file basenames without the .json extension.
package scenes

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json *.tengo
var ScenesFS embed.FS

// Scene is one loadable unit of game content. Each era carries its own
// layer stack so the world can look and collide differently in the past.
type Scene struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	SpawnX int    `json:"spawn_x"`
	SpawnY int    `json:"spawn_y"`
	Script string `json:"script,omitempty"`

	// Eras maps "present"/"past" to that era's layers. Scenes without a
	// past variant (menus, the epilogue) only carry "present".
	Eras map[string]EraLayers `json:"eras"`
}

type EraLayers struct {
	// Layers are flat row-major tile arrays of length Width*Height,
	// drawn bottom first. 0 is empty; anything else is a solid tile.
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color"`
}

// Load decodes the named embedded scene.
func Load(name string) (*Scene, error) {
	data, err := fs.ReadFile(ScenesFS, name+".json")
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("scene %s: invalid dimensions %dx%d", name, sc.Width, sc.Height)
	}
	for era, layers := range sc.Eras {
		for i, layer := range layers.Layers {
			if len(layer) != sc.Width*sc.Height {
				return nil, fmt.Errorf("scene %s: era %s layer %d has %d tiles, want %d",
					name, era, i, len(layer), sc.Width*sc.Height)
			}
		}
	}
	return &sc, nil
}

// LoadScript reads an embedded scene script by filename.
func LoadScript(name string) ([]byte, error) {
	data, err := fs.ReadFile(ScenesFS, name)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return data, nil
}

// Exists reports whether a scene with the given name is embedded.
func Exists(name string) bool {
	_, err := fs.Stat(ScenesFS, name+".json")
	return err == nil
}
