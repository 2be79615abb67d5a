// Package timeshift owns the global past/present state and pushes it onto
// the scene objects that care.
package timeshift

// Era is the narrative state the world is currently shown in.
type Era int

const (
	Present Era = iota
	Past
)

func (e Era) String() string {
	if e == Past {
		return "past"
	}
	return "present"
}

// Flip returns the other era.
func (e Era) Flip() Era {
	if e == Past {
		return Present
	}
	return Past
}

// A Trackable reacts to the era changing: swapping visuals, collision
// geometry, scripted behavior.
type Trackable interface {
	ApplyEra(Era)
}

// BindFunc collects the current scene's trackables. It is called on Rebind,
// after every scene load.
type BindFunc func() []Trackable

// Shifter toggles the global era and fans the change out to registered
// trackables. Mutations come from a single writer (the director) on the
// frame loop goroutine.
type Shifter struct {
	era     Era
	enabled bool
	bind    BindFunc
	tracked []Trackable
}

func NewShifter(bind BindFunc) *Shifter {
	return &Shifter{bind: bind}
}

// SetEnabled turns era handling on or off. While disabled, era changes are
// ignored.
func (s *Shifter) SetEnabled(enabled bool) { s.enabled = enabled }

func (s *Shifter) Enabled() bool { return s.enabled }

// Era returns the current era. It is meaningful even while disabled.
func (s *Shifter) Era() Era { return s.era }

// Register adds a trackable outside the scene bind, e.g. a HUD element.
func (s *Shifter) Register(t Trackable) {
	if t == nil {
		return
	}
	s.tracked = append(s.tracked, t)
}

// Clear drops every registered trackable.
func (s *Shifter) Clear() { s.tracked = nil }

// Rebind replaces the registry with the current scene's trackables.
func (s *Shifter) Rebind() {
	s.tracked = nil
	if s.bind == nil {
		return
	}
	for _, t := range s.bind() {
		s.Register(t)
	}
}

// SetEra switches to era and applies it to every registered trackable.
// No-op while disabled.
func (s *Shifter) SetEra(era Era) {
	if !s.enabled {
		return
	}
	s.era = era
	s.apply()
}

// FlipEra toggles past/present. No-op while disabled.
func (s *Shifter) FlipEra() { s.SetEra(s.era.Flip()) }

// Reapply pushes the current era onto registered trackables without
// toggling, used after a scene load to bring fresh objects in line.
func (s *Shifter) Reapply() {
	if !s.enabled {
		return
	}
	s.apply()
}

func (s *Shifter) apply() {
	for _, t := range s.tracked {
		t.ApplyEra(s.era)
	}
}
