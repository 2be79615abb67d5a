package timeshift

import "testing"

type recorder struct {
	applied []Era
}

func (r *recorder) ApplyEra(e Era) { r.applied = append(r.applied, e) }

func TestEraFlip(t *testing.T) {
	if Present.Flip() != Past || Past.Flip() != Present {
		t.Fatalf("flip must toggle between the two eras")
	}
	if Present.String() != "present" || Past.String() != "past" {
		t.Fatalf("unexpected era names: %q %q", Present, Past)
	}
}

func TestShifterAppliesToRegistered(t *testing.T) {
	s := NewShifter(nil)
	s.SetEnabled(true)

	a := &recorder{}
	b := &recorder{}
	s.Register(a)
	s.Register(b)

	s.SetEra(Past)
	if len(a.applied) != 1 || a.applied[0] != Past {
		t.Fatalf("expected past applied to a, got %v", a.applied)
	}
	if len(b.applied) != 1 || b.applied[0] != Past {
		t.Fatalf("expected past applied to b, got %v", b.applied)
	}

	s.FlipEra()
	if s.Era() != Present {
		t.Fatalf("expected flip back to present, got %s", s.Era())
	}
	if len(a.applied) != 2 || a.applied[1] != Present {
		t.Fatalf("expected present applied on flip, got %v", a.applied)
	}
}

func TestShifterDisabledIgnoresChanges(t *testing.T) {
	s := NewShifter(nil)
	a := &recorder{}
	s.Register(a)

	s.SetEra(Past)
	s.FlipEra()
	s.Reapply()
	if s.Era() != Present || len(a.applied) != 0 {
		t.Fatalf("disabled shifter must ignore era changes, era=%s applied=%v", s.Era(), a.applied)
	}
}

func TestShifterRebind(t *testing.T) {
	fresh := &recorder{}
	s := NewShifter(func() []Trackable { return []Trackable{fresh} })
	s.SetEnabled(true)

	stale := &recorder{}
	s.Register(stale)

	s.Rebind()
	s.Reapply()
	if len(stale.applied) != 0 {
		t.Fatalf("rebind must drop previously registered trackables")
	}
	if len(fresh.applied) != 1 {
		t.Fatalf("rebind must pick up the bind function's trackables, got %v", fresh.applied)
	}
}

func TestShifterReapplyKeepsEra(t *testing.T) {
	s := NewShifter(nil)
	s.SetEnabled(true)
	a := &recorder{}
	s.Register(a)

	s.SetEra(Past)
	s.Reapply()
	if s.Era() != Past {
		t.Fatalf("reapply must not toggle the era")
	}
	if len(a.applied) != 2 || a.applied[1] != Past {
		t.Fatalf("expected past reapplied, got %v", a.applied)
	}
}

func TestShifterNilBindAndNilTrackable(t *testing.T) {
	s := NewShifter(nil)
	s.SetEnabled(true)
	s.Register(nil)
	s.Rebind()
	s.SetEra(Past) // must not panic with an empty registry
	if s.Era() != Past {
		t.Fatalf("expected past, got %s", s.Era())
	}
}
