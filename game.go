package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sablewing/timerift/common"
	"github.com/sablewing/timerift/config"
	"github.com/sablewing/timerift/director"
	"github.com/sablewing/timerift/fade"
	"github.com/sablewing/timerift/input"
	"github.com/sablewing/timerift/player"
	"github.com/sablewing/timerift/scene"
	"github.com/sablewing/timerift/timeshift"
)

const physicsStep = 1.0 / 60.0

// Game is the ebiten.Game driving the whole session: it polls input,
// forwards triggers to the director, steps the fade and the director's
// in-flight sequences, and performs the scene loads the director requests.
type Game struct {
	frames int
	debug  bool
	quit   bool

	cfg      *config.Config
	poller   *input.Poller
	mgr      *scene.Manager
	fader    *fade.Controller
	shifter  *timeshift.Shifter
	director *director.Director

	player *player.Player
	menuUI *ebitenui.UI

	watcher *config.Watcher
}

func NewGame(cfg *config.Config, configPath string, debug bool) (*Game, error) {
	binds, err := input.ParseBindings(cfg.Keys)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		cfg:    cfg,
		poller: input.NewPoller(binds),
		mgr:    scene.NewManager(),
		fader:  fade.New(cfg.FadeFrames),
	}
	g.shifter = timeshift.NewShifter(g.mgr.Trackables)
	g.director = director.New(g, g.fader, g.shifter, cfg.DirectorSequences())
	g.menuUI = NewMenuUI(g)

	if debug {
		initDebug()
	}
	if debug && configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Printf("config watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.director.ReturnToMenu()
	return g, nil
}

// Load implements director.SceneLoader: it activates the named scene, spawns
// the player for playable scenes, and reports the load back to the director
// in the same frame, standing in for an engine scene-change callback.
func (g *Game) Load(name string) error {
	active, err := g.mgr.Load(name)
	if err != nil {
		return err
	}

	g.player = nil
	g.director.SceneLoaded()

	if g.director.Mode().InGame() {
		x, y := active.Spawn()
		g.player = player.New(active.Space(), x, y)
	}
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.pollConfigReload()

	st := g.poller.Poll()

	if g.director.Mode().InGame() {
		g.updatePlay(st)
	} else {
		g.menuUI.Update()
	}

	g.fader.Step()
	g.director.Step()
	return nil
}

func (g *Game) updatePlay(st input.State) {
	if st.TimeTravelPressed {
		g.director.TriggerTimeTravel()
	}
	if st.ResetPressed {
		g.director.ResetLevel()
	}
	if st.MenuPressed {
		g.director.ReturnToMenu()
		return
	}

	active := g.mgr.Active()
	if active == nil || g.player == nil {
		return
	}

	g.player.Update(st)
	active.Space().Step(physicsStep)

	// Reaching the scene's right edge completes the level. The director's
	// guard drops the repeats fired on every following frame.
	if x, _ := g.player.Position(); x > active.WidthPx()-float64(common.TileSize) {
		g.director.NextLevel()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if active := g.mgr.Active(); active != nil {
		active.Draw(screen)
	}
	if g.player != nil {
		g.player.Draw(screen)
	}

	drawHUD(g, screen)
	g.fader.Draw(screen)

	if !g.director.Mode().InGame() {
		g.menuUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// pollConfigReload drains the debug config watcher and hot-reloads the
// scene sequences. Key bindings, fade timing, and window setup stay as
// launched.
func (g *Game) pollConfigReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			g.cfg = cfg
			g.director = director.New(g, g.fader, g.shifter, cfg.DirectorSequences())
			g.director.ReturnToMenu()
			log.Printf("config reloaded from %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) debugLine() string {
	return fmt.Sprintf("frames=%d fps=%.1f mode=%s scene=%s era=%s moving=%t travelling=%t",
		g.frames, ebiten.ActualFPS(), g.director.Mode(), g.director.CurrentScene(),
		g.shifter.Era(), g.director.MovingToNextLevel(), g.director.TimeTravelling())
}
