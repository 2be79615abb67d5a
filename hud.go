package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

var clipboardReady bool

// initDebug sets up the debug-only pieces: the clipboard used by the F8
// state dump.
func initDebug() {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

// drawHUD prints the scene script's message and, in debug builds, the
// director state line. F8 copies the state line for bug reports.
func drawHUD(g *Game, screen *ebiten.Image) {
	msg := ""
	if active := g.mgr.Active(); active != nil {
		msg = active.Message()
	}

	if !g.debug {
		if msg != "" && g.director.Mode().InGame() {
			ebitenutil.DebugPrint(screen, msg)
		}
		return
	}

	line := g.debugLine()
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) && clipboardReady {
		clipboard.Write(clipboard.FmtText, []byte(line))
	}
	if msg != "" {
		line = fmt.Sprintf("%s\n%s", line, msg)
	}
	ebitenutil.DebugPrint(screen, line)
}
