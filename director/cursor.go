package director

// cursor is an explicit position into an immutable, ordered list of scene
// names. It only moves forward; a fresh cursor is created on every game
// start.
type cursor struct {
	scenes []string
	pos    int
}

func newCursor(scenes []string) *cursor {
	return &cursor{scenes: scenes}
}

// Current returns the scene name at the cursor, or "" when the list is
// empty.
func (c *cursor) Current() string {
	if c.pos < 0 || c.pos >= len(c.scenes) {
		return ""
	}
	return c.scenes[c.pos]
}

// Peek returns the scene after the cursor without moving.
func (c *cursor) Peek() (string, bool) {
	if c.pos+1 >= len(c.scenes) {
		return "", false
	}
	return c.scenes[c.pos+1], true
}

// Advance moves the cursor one scene forward and reports whether it still
// points at a scene.
func (c *cursor) Advance() bool {
	c.pos++
	return c.pos < len(c.scenes)
}

// AtEnd reports whether the cursor is on the last scene of the list.
func (c *cursor) AtEnd() bool {
	return c.pos >= len(c.scenes)-1
}

// SeekTo moves the cursor directly to the named scene. It reports false and
// leaves the cursor untouched when the name is not in the list.
func (c *cursor) SeekTo(name string) bool {
	for i, s := range c.scenes {
		if s == name {
			c.pos = i
			return true
		}
	}
	return false
}
