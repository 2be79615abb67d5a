package director

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrNotInGame is returned when a game start is requested with a mode
	// that has no scene sequence to play.
	ErrNotInGame = errors.New("director: mode is not an in-game mode")
	// ErrUnknownScene is returned when a requested scene name is not part
	// of the selected mode's sequence.
	ErrUnknownScene = errors.New("director: scene not in sequence")
)

// SceneLoader resolves scene names to loadable content. Load must activate
// the named scene and notify the director through SceneLoaded once the
// scene is live, mirroring an engine scene-change callback.
type SceneLoader interface {
	Load(name string) error
}

// Fader plays fade-to-black / fade-from-black sequences. Fades are stepped
// by the frame loop; Done reports whether the most recently started fade
// has finished. A disabled fader must report Done immediately so sequences
// never stall.
type Fader interface {
	StartFadeOut()
	StartFadeIn()
	Done() bool
	SetEnabled(bool)
}

// TimeShifter owns the global past/present state and the registry of scene
// objects that react to it.
type TimeShifter interface {
	SetEnabled(bool)
	// Rebind re-registers the current scene's trackable objects.
	Rebind()
	// FlipEra toggles past/present and applies it to registered objects.
	FlipEra()
	// Reapply pushes the current era onto registered objects without
	// toggling.
	Reapply()
}

// Sequences holds the per-mode ordered scene lists plus the two scenes the
// director loads outside any sequence. Lists are fixed at startup and
// treated as read-only.
type Sequences struct {
	ByMode    map[Mode][]string
	MenuScene string
	EndScene  string
}

type advancePhase int

const (
	advanceIdle advancePhase = iota
	advanceFadingOut
)

type travelPhase int

const (
	travelIdle travelPhase = iota
	travelFadingOut
	travelFadingIn
)

// Director sequences levels, toggles the time-travel mechanic, and drives
// fade transitions. It is created once at launch and persists for the whole
// session; collaborators are passed in rather than discovered.
//
// All methods must be called from the frame loop goroutine. In-flight
// sequences are advanced by Step, called once per frame.
type Director struct {
	loader  SceneLoader
	fader   Fader
	shifter TimeShifter

	seq Sequences

	mode Mode
	cur  *cursor

	// Guard flags. Each is set when its sequence starts and cleared when
	// the sequence completes; a trigger arriving while the flag is set is
	// dropped, not queued.
	movingToNextLevel bool
	timeTravelling    bool

	advance advancePhase
	travel  travelPhase
}

// New wires a director to its collaborators. The sequences are captured
// as-is and must not be mutated afterwards.
func New(loader SceneLoader, fader Fader, shifter TimeShifter, seq Sequences) *Director {
	return &Director{
		loader:  loader,
		fader:   fader,
		shifter: shifter,
		seq:     seq,
		mode:    ModeNotInGame,
	}
}

// Mode returns the current game mode.
func (d *Director) Mode() Mode { return d.mode }

// CurrentScene returns the scene name at the sequence cursor, or "" when no
// game is running.
func (d *Director) CurrentScene() string {
	if d.cur == nil {
		return ""
	}
	return d.cur.Current()
}

// MovingToNextLevel reports whether a level advance is in flight.
func (d *Director) MovingToNextLevel() bool { return d.movingToNextLevel }

// TimeTravelling reports whether a time-travel sequence is in flight.
func (d *Director) TimeTravelling() bool { return d.timeTravelling }

// StartGame selects the mode's scene list, resets the cursor to its start,
// and loads the first scene. Modes without a sequence fail with
// ErrNotInGame and leave the director untouched.
func (d *Director) StartGame(mode Mode) error {
	scenes, err := d.sequenceFor(mode)
	if err != nil {
		return err
	}
	d.mode = mode
	d.cur = newCursor(scenes)
	return d.loadScene(d.cur.Current())
}

// StartGameAt starts mode with the cursor moved directly to sceneName,
// skipping the levels before it without playing them. Unknown scene names
// fail with ErrUnknownScene and leave the director untouched.
func (d *Director) StartGameAt(mode Mode, sceneName string) error {
	scenes, err := d.sequenceFor(mode)
	if err != nil {
		return err
	}
	cur := newCursor(scenes)
	if !cur.SeekTo(sceneName) {
		return fmt.Errorf("%w: %q in mode %s", ErrUnknownScene, sceneName, mode)
	}
	d.mode = mode
	d.cur = cur
	return d.loadScene(sceneName)
}

func (d *Director) sequenceFor(mode Mode) ([]string, error) {
	if !mode.InGame() {
		return nil, fmt.Errorf("%w: %s", ErrNotInGame, mode)
	}
	scenes := d.seq.ByMode[mode]
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: %s has no scenes", ErrNotInGame, mode)
	}
	return scenes, nil
}

// NextLevel begins the advance to the next scene in the sequence: fade-out,
// cursor advance, load. If an advance is already in flight the call is a
// no-op; a second trigger during the fade would skip a scene, so it is
// dropped rather than queued.
func (d *Director) NextLevel() {
	if d.movingToNextLevel || d.cur == nil {
		return
	}
	d.movingToNextLevel = true
	d.advance = advanceFadingOut
	d.fader.StartFadeOut()
}

// ResetLevel reloads the scene at the current cursor position without
// advancing.
func (d *Director) ResetLevel() {
	if d.cur == nil {
		return
	}
	if err := d.loadScene(d.cur.Current()); err != nil {
		log.Printf("director: reset level: %v", err)
	}
}

// ReturnToMenu unconditionally loads the menu scene. No fade, no guard.
func (d *Director) ReturnToMenu() {
	d.mode = ModeNotInGame
	if err := d.loadScene(d.seq.MenuScene); err != nil {
		log.Printf("director: return to menu: %v", err)
	}
}

// TriggerTimeTravel begins a fade-out, era flip, fade-in sequence. Triggers
// outside active play or while any transition is mid-flight are ignored.
func (d *Director) TriggerTimeTravel() {
	if !d.mode.InGame() || d.timeTravelling || d.movingToNextLevel {
		return
	}
	d.timeTravelling = true
	d.travel = travelFadingOut
	d.fader.StartFadeOut()
}

// Step advances any in-flight sequence by one frame. The host loop calls it
// once per update, after stepping the fader.
func (d *Director) Step() {
	d.stepAdvance()
	d.stepTravel()
}

func (d *Director) stepAdvance() {
	if d.advance != advanceFadingOut || !d.fader.Done() {
		return
	}
	d.advance = advanceIdle

	if d.cur.Advance() {
		if err := d.loadScene(d.cur.Current()); err != nil {
			log.Printf("director: next level: %v", err)
			d.movingToNextLevel = false
		}
		return
	}

	// Sequence exhausted: shut down in-game behavior and show the end
	// scene.
	d.shifter.SetEnabled(false)
	d.fader.SetEnabled(false)
	d.mode = ModeNotInGame
	d.movingToNextLevel = false
	if err := d.loadScene(d.seq.EndScene); err != nil {
		log.Printf("director: end scene: %v", err)
	}
}

func (d *Director) stepTravel() {
	switch d.travel {
	case travelFadingOut:
		if !d.fader.Done() {
			return
		}
		d.shifter.FlipEra()
		d.travel = travelFadingIn
		d.fader.StartFadeIn()
	case travelFadingIn:
		if !d.fader.Done() {
			return
		}
		d.travel = travelIdle
		d.timeTravelling = false
	}
}

// SceneLoaded is the engine scene-change notification. Entering a playable
// scene re-arms the in-game behavior; entering a menu or end scene shuts it
// down.
func (d *Director) SceneLoaded() {
	if d.mode.InGame() {
		d.movingToNextLevel = false
		d.fader.SetEnabled(true)
		d.fader.StartFadeIn()
		d.shifter.SetEnabled(true)
		d.shifter.Rebind()
		d.shifter.Reapply()
		return
	}
	d.shifter.SetEnabled(false)
	d.fader.SetEnabled(false)
}

func (d *Director) loadScene(name string) error {
	if err := d.loader.Load(name); err != nil {
		return fmt.Errorf("load scene %q: %w", name, err)
	}
	return nil
}
