package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablewing/timerift/config"
)

func TestParseBindings(t *testing.T) {
	cases := []struct {
		name    string
		keys    config.KeysConfig
		want    Bindings
		wantErr bool
	}{
		{
			name: "defaults",
			keys: config.KeysConfig{TimeTravel: "T", Reset: "R", Menu: "Escape"},
			want: Bindings{TimeTravel: ebiten.KeyT, Reset: ebiten.KeyR, Menu: ebiten.KeyEscape},
		},
		{
			name: "rebound",
			keys: config.KeysConfig{TimeTravel: "Q", Reset: "Backspace", Menu: "Tab"},
			want: Bindings{TimeTravel: ebiten.KeyQ, Reset: ebiten.KeyBackspace, Menu: ebiten.KeyTab},
		},
		{
			name:    "unknown_key",
			keys:    config.KeysConfig{TimeTravel: "NotAKey", Reset: "R", Menu: "Escape"},
			wantErr: true,
		},
		{
			name:    "empty_key",
			keys:    config.KeysConfig{TimeTravel: "", Reset: "R", Menu: "Escape"},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseBindings(c.keys)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %+v", c.keys)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBindings: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}
