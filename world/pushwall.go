// pushwall.go
package world

import (
	"math"

	"retrograde/geom"
)

type PushwallState int

const (
	PushwallIdle PushwallState = iota
	PushwallMoving
)

const pushwallSpeed = 1.5 // tiles per second while sliding

// Pushwall is a movable wall block. It renders and collides like the wall
// tile it replaced (captured at spawn), and conforms to the Actor capability
// set so the same resolver that frees the player from walls frees other
// actors from it.
type Pushwall struct {
	Entity
	State            PushwallState
	Tile             Tile // captured wall identity
	OriginX, OriginY int  // anchoring cell at spawn, stable across resets
}

func NewPushwall(id, x, y int, tile Tile) Pushwall {
	return Pushwall{
		Entity: Entity{
			Id:              id,
			Position:        geom.V(float64(x)+0.5, float64(y)+0.5),
			CollisionRadius: 0.5,
			Health:          1, // never dies, but carries the flag like any actor
		},
		Tile:    tile,
		OriginX: x,
		OriginY: y,
	}
}

// Billboards returns the four faces of the block. Faces share the captured
// tile's texture pair: lit on the x-facing sides, dark on the y-facing ones,
// matching how static walls pick variants by hit axis. Winding puts each
// face's normal outward so back faces cull correctly.
func (p *Pushwall) Billboards() []geom.Billboard {
	lit, dark := p.Tile.Textures()
	topLeft := p.Position.Add(geom.V(-0.5, -0.5))
	topRight := p.Position.Add(geom.V(0.5, -0.5))
	bottomLeft := p.Position.Add(geom.V(-0.5, 0.5))
	bottomRight := p.Position.Add(geom.V(0.5, 0.5))
	return []geom.Billboard{
		{Start: topRight, Direction: geom.V(-1, 0), Length: 1, Texture: dark},   // north
		{Start: bottomLeft, Direction: geom.V(1, 0), Length: 1, Texture: dark},  // south
		{Start: topLeft, Direction: geom.V(0, 1), Length: 1, Texture: lit},      // west
		{Start: bottomRight, Direction: geom.V(0, -1), Length: 1, Texture: lit}, // east
	}
}

// Update advances the push-wall state machine. A living actor leaning into an
// idle block starts it sliding along the dominant axis of the overlap,
// provided the next cell over is clear. When two actors lean in from both
// sides in the same step, whichever is checked first wins the push; the block
// ignores further pushes until it comes to rest again. While moving it stops
// the moment it would overlap solid geometry, then snaps to the cell center
// to avoid drift.
func (p *Pushwall) Update(timeStep float64, w *World) {
	switch p.State {
	case PushwallIdle:
		mtv := w.livingActorIntersection(p.Rect(), p.Id)
		if mtv == nil {
			return
		}
		var direction geom.Vector
		if math.Abs(mtv.X) > math.Abs(mtv.Y) {
			direction = geom.V(sign(mtv.X), 0)
		} else {
			direction = geom.V(0, sign(mtv.Y))
		}
		nextX := int(math.Floor(p.Position.X + direction.X))
		nextY := int(math.Floor(p.Position.Y + direction.Y))
		if w.Map.Tile(nextX, nextY).IsSolid() || w.pushwallAt(nextX, nextY, p.Id) {
			return
		}
		p.State = PushwallMoving
		p.Velocity = direction.Mul(pushwallSpeed)
		w.playSound(SoundWallSlide, p.Position)
	case PushwallMoving:
		p.Position = p.Position.Add(p.Velocity.Mul(timeStep))
		if w.geometryIntersection(p) != nil {
			p.State = PushwallIdle
			p.Velocity = geom.Vector{}
			p.Position = geom.V(
				math.Floor(p.Position.X)+0.5,
				math.Floor(p.Position.Y)+0.5,
			)
			w.playSound(SoundWallThud, p.Position)
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
