package scene

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/sablewing/timerift/scenes"
	"github.com/sablewing/timerift/timeshift"
)

// Scene scripts must define two hooks:
//
//	onEnter := func(state, scene, era) { ... }
//	onEraChanged := func(state, scene, era) { ... }
//
// state is a map persisted across calls for the lifetime of the loaded
// scene; the HUD surfaces its "message" entry.
const scriptDispatch = `
if __phase == "enter" {
	onEnter(__state, __scene, __era)
} else if __phase == "era" {
	onEraChanged(__state, __scene, __era)
}
`

// Script is a compiled per-scene tengo script with persistent state.
type Script struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

func loadScript(name string) (*Script, error) {
	src, err := scenes.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+scriptDispatch)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__scene", "")
	_ = script.Add("__era", "")
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile script %s: %w", name, err)
	}

	return &Script{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *Script) runPhase(phase, sceneName string, era timeshift.Era) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__scene", sceneName); err != nil {
		return err
	}
	if err := s.compiled.Set("__era", era.String()); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	return s.compiled.Run()
}

// OnEnter runs the scene's enter hook.
func (s *Script) OnEnter(sceneName string, era timeshift.Era) error {
	return s.runPhase("enter", sceneName, era)
}

// OnEraChanged runs the scene's era hook after a time travel flip.
func (s *Script) OnEraChanged(sceneName string, era timeshift.Era) error {
	return s.runPhase("era", sceneName, era)
}

// Message returns the script state's "message" entry, if set.
func (s *Script) Message() string {
	if s == nil || s.state == nil {
		return ""
	}
	obj, ok := s.state.Value["message"]
	if !ok {
		return ""
	}
	if str, ok := obj.(*tengo.String); ok {
		return str.Value
	}
	return obj.String()
}
