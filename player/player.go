// Package player is the minimal platforming avatar the director shuttles
// between scenes.
package player

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/sablewing/timerift/input"
)

const (
	width  = 20.0
	height = 28.0

	moveSpeed   = 160.0
	jumpImpulse = -420.0
)

// Player is a chipmunk body in the active scene's space. A new player is
// spawned on every scene load; era flips swap the static geometry out from
// under the same body.
type Player struct {
	body  *cp.Body
	shape *cp.Shape

	grounded bool
	img      *ebiten.Image
}

// New adds a player body to space at the given spawn position (top-left, in
// pixels).
func New(space *cp.Space, x, y float64) *Player {
	mass := 1.0
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x + width/2, Y: y + height/2})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)

	space.AddBody(body)
	space.AddShape(shape)

	return &Player{body: body, shape: shape}
}

// Update applies one frame of input to the body. Grounding is read from the
// body's current contacts: any roughly vertical contact normal counts.
func (p *Player) Update(st input.State) {
	p.grounded = false
	p.body.EachArbiter(func(arb *cp.Arbiter) {
		if math.Abs(arb.Normal().Y) > 0.5 {
			p.grounded = true
		}
	})

	v := p.body.Velocity()
	v.X = st.MoveX * moveSpeed
	if st.JumpPressed && p.grounded {
		v.Y = jumpImpulse
	}
	p.body.SetVelocity(v.X, v.Y)
}

// Position returns the body's top-left corner in pixels.
func (p *Player) Position() (float64, float64) {
	pos := p.body.Position()
	return pos.X - width/2, pos.Y - height/2
}

func (p *Player) Draw(screen *ebiten.Image) {
	if p.img == nil {
		p.img = ebiten.NewImage(int(width), int(height))
		p.img.Fill(color.RGBA{R: 0xe8, G: 0xd4, B: 0x4d, A: 0xff})
	}
	x, y := p.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.img, op)
}
