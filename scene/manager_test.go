package scene

import (
	"testing"

	"github.com/sablewing/timerift/timeshift"
)

func TestManagerLoad(t *testing.T) {
	m := NewManager()
	if m.Active() != nil {
		t.Fatalf("no active scene before the first load")
	}

	a, err := m.Load("grove_1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Active() != a {
		t.Fatalf("Active must return the loaded scene")
	}

	x, y := a.Spawn()
	if x < 0 || y < 0 || x >= a.WidthPx() {
		t.Fatalf("spawn out of bounds: %f,%f", x, y)
	}

	// A fresh Active per load, decoded data cached underneath.
	b, err := m.Load("grove_1")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("reload must build a fresh scene")
	}
}

func TestManagerLoadUnknown(t *testing.T) {
	m := NewManager()
	if _, err := m.Load("no_such_scene"); err == nil {
		t.Fatalf("expected error for unknown scene")
	}
	if m.Active() != nil {
		t.Fatalf("failed load must not replace the active scene")
	}
}

func TestManagerTrackables(t *testing.T) {
	m := NewManager()
	if got := m.Trackables(); got != nil {
		t.Fatalf("no trackables before a load, got %v", got)
	}
	a, err := m.Load("grove_1")
	if err != nil {
		t.Fatal(err)
	}
	tr := m.Trackables()
	if len(tr) != 1 || tr[0] != timeshift.Trackable(a) {
		t.Fatalf("the live scene is the one trackable")
	}
}

func TestApplyEraSwapsGeometryAndRunsScript(t *testing.T) {
	m := NewManager()
	a, err := m.Load("grove_1")
	if err != nil {
		t.Fatal(err)
	}

	if a.Era() != timeshift.Present {
		t.Fatalf("scenes load in the present, got %s", a.Era())
	}
	if a.Message() == "" {
		t.Fatalf("onEnter should have set a message")
	}
	enterMsg := a.Message()
	presentStatics := len(a.statics)
	if presentStatics == 0 {
		t.Fatalf("present era must have collision geometry")
	}

	a.ApplyEra(timeshift.Past)
	if a.Era() != timeshift.Past {
		t.Fatalf("expected past, got %s", a.Era())
	}
	if len(a.statics) == 0 {
		t.Fatalf("past era must have collision geometry")
	}
	if a.Message() == enterMsg {
		t.Fatalf("onEraChanged should have replaced the message")
	}

	pastMsg := a.Message()
	a.ApplyEra(timeshift.Past) // reapply: no era change, no script hook
	if a.Message() != pastMsg {
		t.Fatalf("reapplying the same era must not rerun the era hook")
	}
}

func TestEraFallbackForSingleEraScenes(t *testing.T) {
	m := NewManager()
	a, err := m.Load("main_menu")
	if err != nil {
		t.Fatal(err)
	}
	a.ApplyEra(timeshift.Past) // menu has no past variant; must not panic
	layers, key := a.eraLayers()
	if key != "present" || len(layers.Layers) == 0 {
		t.Fatalf("single-era scenes fall back to the present, got %q", key)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"#3c8c50", false},
		{"3c8c50", false},
		{"#zzz", true},
		{"", true},
	}
	for _, c := range cases {
		_, err := parseHexColor(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("parseHexColor(%q) err=%v, wantErr=%t", c.in, err, c.wantErr)
		}
	}
}
