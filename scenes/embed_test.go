package scenes

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAllEmbeddedScenesDecode(t *testing.T) {
	entries, err := fs.ReadDir(ScenesFS, ".")
	if err != nil {
		t.Fatal(err)
	}

	checked := 0
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		t.Run(name, func(t *testing.T) {
			sc, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, ok := sc.Eras["present"]; !ok {
				t.Fatalf("every scene needs a present era")
			}
			for era, layers := range sc.Eras {
				if len(layers.Layers) == 0 {
					t.Fatalf("era %s has no layers", era)
				}
				if len(layers.LayerMeta) != len(layers.Layers) {
					t.Fatalf("era %s: %d layers but %d meta entries", era, len(layers.Layers), len(layers.LayerMeta))
				}
			}
		})
		checked++
	}
	if checked == 0 {
		t.Fatalf("no embedded scenes found")
	}
}

func TestLoadUnknownScene(t *testing.T) {
	if _, err := Load("no_such_scene"); err == nil {
		t.Fatalf("expected error for unknown scene")
	}
	if Exists("no_such_scene") {
		t.Fatalf("Exists must be false for unknown scenes")
	}
	if !Exists("grove_1") {
		t.Fatalf("Exists must be true for embedded scenes")
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("grove_1.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if !strings.Contains(string(src), "onEraChanged") {
		t.Fatalf("scene scripts must define the era hook")
	}
}
