package scene

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/sablewing/timerift/common"
	"github.com/sablewing/timerift/scenes"
	"github.com/sablewing/timerift/timeshift"
)

const CollisionTypeSolid cp.CollisionType = 1

// Active is a loaded, live scene: tile images per era, a chipmunk space
// whose static geometry tracks the current era, and the optional scene
// script. It implements timeshift.Trackable so era flips swap its collision
// geometry and visuals.
type Active struct {
	Name string

	data *scenes.Scene
	era  timeshift.Era

	space   *cp.Space
	statics []*cp.Shape

	script *Script

	// per-era, per-layer tile images built lazily from LayerMeta colors
	layerImgs map[string][]*ebiten.Image
}

func newActive(name string, data *scenes.Scene) (*Active, error) {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	a := &Active{
		Name:      name,
		data:      data,
		space:     space,
		layerImgs: map[string][]*ebiten.Image{},
	}
	a.buildBounds()
	a.rebuildStatics()

	if data.Script != "" {
		script, err := loadScript(data.Script)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", name, err)
		}
		a.script = script
		if err := a.script.OnEnter(name, a.era); err != nil {
			log.Printf("scene %s: onEnter: %v", name, err)
		}
	}
	return a, nil
}

// Space returns the scene's physics space.
func (a *Active) Space() *cp.Space { return a.space }

// Era returns the era the scene geometry currently reflects.
func (a *Active) Era() timeshift.Era { return a.era }

// Spawn returns the player spawn point in pixels.
func (a *Active) Spawn() (float64, float64) {
	return float64(a.data.SpawnX * common.TileSize), float64(a.data.SpawnY * common.TileSize)
}

// WidthPx returns the scene width in pixels.
func (a *Active) WidthPx() float64 {
	return float64(a.data.Width * common.TileSize)
}

// Message returns the scene script's current HUD message.
func (a *Active) Message() string { return a.script.Message() }

// ApplyEra swaps the scene to era: static collision geometry is rebuilt and
// the scene script's era hook runs when the era actually changed.
func (a *Active) ApplyEra(era timeshift.Era) {
	changed := era != a.era
	a.era = era
	a.rebuildStatics()
	if changed && a.script != nil {
		if err := a.script.OnEraChanged(a.Name, era); err != nil {
			log.Printf("scene %s: onEraChanged: %v", a.Name, err)
		}
	}
}

// eraLayers picks the layer stack for the current era, falling back to the
// present for scenes without a past variant.
func (a *Active) eraLayers() (scenes.EraLayers, string) {
	key := a.era.String()
	if layers, ok := a.data.Eras[key]; ok {
		return layers, key
	}
	return a.data.Eras[timeshift.Present.String()], timeshift.Present.String()
}

// rebuildStatics replaces the era-dependent static shapes. Contiguous solid
// tiles are merged into wider boxes so the space holds fewer shapes.
func (a *Active) rebuildStatics() {
	for _, s := range a.statics {
		a.space.RemoveShape(s)
	}
	a.statics = a.statics[:0]

	layers, _ := a.eraLayers()
	w, h := a.data.Width, a.data.Height
	for layerIdx, layer := range layers.Layers {
		if layerIdx >= len(layers.LayerMeta) || !layers.LayerMeta[layerIdx].Physics {
			continue
		}
		processed := make([]bool, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				if processed[idx] || layer[idx] == 0 {
					processed[idx] = true
					continue
				}

				run := 1
				for x+run < w {
					idx2 := y*w + (x + run)
					if processed[idx2] || layer[idx2] == 0 {
						break
					}
					run++
				}

				x0 := float64(x * common.TileSize)
				y0 := float64(y * common.TileSize)
				bb := cp.BB{
					L: x0,
					B: y0,
					R: x0 + float64(run*common.TileSize),
					T: y0 + float64(common.TileSize),
				}
				shape := cp.NewBox2(a.space.StaticBody, bb, 0)
				shape.SetFriction(0.8)
				shape.SetCollisionType(CollisionTypeSolid)
				a.space.AddShape(shape)
				a.statics = append(a.statics, shape)

				for xx := x; xx < x+run; xx++ {
					processed[y*w+xx] = true
				}
			}
		}
	}
}

// buildBounds adds thin static segments along the scene edges so the player
// can never leave the space. Bounds are era-independent.
func (a *Active) buildBounds() {
	worldW := float64(a.data.Width * common.TileSize)
	worldH := float64(a.data.Height * common.TileSize)
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: worldW, Y: 0}},
		{{X: 0, Y: worldH}, {X: worldW, Y: worldH}},
		{{X: 0, Y: 0}, {X: 0, Y: worldH}},
		{{X: worldW, Y: 0}, {X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(a.space.StaticBody, seg[0], seg[1], 1.0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(CollisionTypeSolid)
		a.space.AddShape(shape)
	}
}

// Draw renders the current era's tile layers, bottom first.
func (a *Active) Draw(screen *ebiten.Image) {
	layers, key := a.eraLayers()
	imgs := a.layerImages(key, layers)
	w := a.data.Width
	for layerIdx, layer := range layers.Layers {
		img := imgs[layerIdx]
		for i, v := range layer {
			if v == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64((i%w)*common.TileSize), float64((i/w)*common.TileSize))
			screen.DrawImage(img, op)
		}
	}
}

func (a *Active) layerImages(eraKey string, layers scenes.EraLayers) []*ebiten.Image {
	if imgs, ok := a.layerImgs[eraKey]; ok {
		return imgs
	}
	imgs := make([]*ebiten.Image, len(layers.Layers))
	for i := range layers.Layers {
		col := color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
		if i < len(layers.LayerMeta) {
			if parsed, err := parseHexColor(layers.LayerMeta[i].Color); err == nil {
				col = parsed
			}
		}
		img := ebiten.NewImage(common.TileSize, common.TileSize)
		img.Fill(col)
		imgs[i] = img
	}
	a.layerImgs[eraKey] = imgs
	return imgs
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
