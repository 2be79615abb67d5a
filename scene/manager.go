// Package scene loads embedded scenes and keeps the one currently live.
package scene

import (
	"fmt"

	"github.com/sablewing/timerift/scenes"
	"github.com/sablewing/timerift/timeshift"
)

// Manager resolves scene names to live scenes. Decoded scene data is cached;
// each Load builds a fresh Active so a reload starts from a clean world.
type Manager struct {
	cache  map[string]*scenes.Scene
	active *Active
}

func NewManager() *Manager {
	return &Manager{cache: map[string]*scenes.Scene{}}
}

// Load activates the named scene, replacing the previous one.
func (m *Manager) Load(name string) (*Active, error) {
	data, ok := m.cache[name]
	if !ok {
		var err error
		data, err = scenes.Load(name)
		if err != nil {
			return nil, fmt.Errorf("scene: load %q: %w", name, err)
		}
		m.cache[name] = data
	}

	active, err := newActive(name, data)
	if err != nil {
		return nil, err
	}
	m.active = active
	return active, nil
}

// Active returns the live scene, or nil before the first Load.
func (m *Manager) Active() *Active { return m.active }

// Trackables is the time-shifter bind function: the live scene is the one
// object that reacts to era changes.
func (m *Manager) Trackables() []timeshift.Trackable {
	if m.active == nil {
		return nil
	}
	return []timeshift.Trackable{m.active}
}
