// Package input snapshots the keys the game cares about once per frame.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sablewing/timerift/config"
)

// Bindings are the rebindable action keys resolved from config names.
type Bindings struct {
	TimeTravel ebiten.Key
	Reset      ebiten.Key
	Menu       ebiten.Key
}

// ParseBindings resolves config key names ("T", "Escape", ...) to keys.
func ParseBindings(keys config.KeysConfig) (Bindings, error) {
	var b Bindings
	for _, bind := range []struct {
		name string
		key  *ebiten.Key
	}{
		{keys.TimeTravel, &b.TimeTravel},
		{keys.Reset, &b.Reset},
		{keys.Menu, &b.Menu},
	} {
		if err := bind.key.UnmarshalText([]byte(bind.name)); err != nil {
			return Bindings{}, fmt.Errorf("input: unknown key %q: %w", bind.name, err)
		}
	}
	return b, nil
}

// State is one frame's input snapshot. Pressed fields are edge-triggered.
type State struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool

	TimeTravelPressed bool
	ResetPressed      bool
	MenuPressed       bool
}

// Poller reads device state each frame.
type Poller struct {
	binds Bindings
}

func NewPoller(binds Bindings) *Poller {
	return &Poller{binds: binds}
}

func (p *Poller) Poll() State {
	var st State

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		st.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		st.MoveX += 1
	}
	st.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	st.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	st.TimeTravelPressed = inpututil.IsKeyJustPressed(p.binds.TimeTravel)
	st.ResetPressed = inpututil.IsKeyJustPressed(p.binds.Reset)
	st.MenuPressed = inpututil.IsKeyJustPressed(p.binds.Menu)

	return st
}
