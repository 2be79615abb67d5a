package fade

import "testing"

func stepN(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

func TestFadeOutProgression(t *testing.T) {
	c := New(4)
	c.StartFadeOut()
	if c.Done() {
		t.Fatalf("fade must be in flight right after start")
	}

	stepN(c, 2)
	if a := c.Alpha(); a <= 0 || a >= 1 {
		t.Fatalf("mid-fade alpha should be between 0 and 1, got %f", a)
	}

	stepN(c, 2)
	if !c.Done() {
		t.Fatalf("fade should finish after its frame count")
	}
	if c.Alpha() != 1 {
		t.Fatalf("fade-out ends fully black, alpha=%f", c.Alpha())
	}
}

func TestFadeInProgression(t *testing.T) {
	c := New(4)
	c.StartFadeIn()
	if c.Alpha() != 1 {
		t.Fatalf("fade-in starts fully black, alpha=%f", c.Alpha())
	}

	stepN(c, 4)
	if !c.Done() || c.Alpha() != 0 {
		t.Fatalf("fade-in ends clear, done=%t alpha=%f", c.Done(), c.Alpha())
	}
}

func TestDisabledFaderNeverStalls(t *testing.T) {
	c := New(4)
	c.SetEnabled(false)

	c.StartFadeOut()
	if !c.Done() {
		t.Fatalf("a disabled fader must report Done immediately")
	}
	if c.Alpha() != 0 {
		t.Fatalf("a disabled fader draws nothing, alpha=%f", c.Alpha())
	}

	c.SetEnabled(true)
	c.StartFadeOut()
	if c.Done() {
		t.Fatalf("re-enabled fader should fade again")
	}
}

func TestDisableCancelsActiveFade(t *testing.T) {
	c := New(4)
	c.StartFadeOut()
	stepN(c, 2)
	c.SetEnabled(false)
	if !c.Done() || c.Alpha() != 0 {
		t.Fatalf("disabling mid-fade must clear it, done=%t alpha=%f", c.Done(), c.Alpha())
	}
}

func TestNonPositiveFramesFallsBack(t *testing.T) {
	c := New(0)
	c.StartFadeOut()
	stepN(c, DefaultFrames)
	if !c.Done() {
		t.Fatalf("expected default frame count to apply")
	}
}
