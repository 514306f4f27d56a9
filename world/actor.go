// actor.go
package world

import (
	"math"

	"retrograde/geom"
)

// Actor is the shared capability set for anything that can be pushed out of
// walls and out of other actors: the player, monsters and push-walls all
// implement it, so the collision resolver never branches on a concrete kind.
type Actor interface {
	ID() int
	Pos() geom.Vector
	SetPos(geom.Vector)
	Radius() float64
	Rect() geom.Rect
	IsDead() bool
}

// Entity carries the fields every actor variant shares. The id is assigned at
// spawn and survives the copy-out/commit-back of a simulation step, so a
// copied-out actor can still be excluded from collision checks by identity
// rather than by value.
type Entity struct {
	Id              int
	Position        geom.Vector
	Velocity        geom.Vector
	CollisionRadius float64
	Health          float64
}

func (e *Entity) ID() int {
	return e.Id
}

func (e *Entity) Pos() geom.Vector {
	return e.Position
}

func (e *Entity) SetPos(p geom.Vector) {
	e.Position = p
}

func (e *Entity) Radius() float64 {
	return e.CollisionRadius
}

// Rect is the actor's bounding square, derived from position and radius.
func (e *Entity) Rect() geom.Rect {
	half := geom.V(e.CollisionRadius, e.CollisionRadius)
	return geom.Rect{Min: e.Position.Sub(half), Max: e.Position.Add(half)}
}

func (e *Entity) IsDead() bool {
	return e.Health <= 0
}

// TileCoords returns the grid cell the actor's center occupies.
func (e *Entity) TileCoords() (int, int) {
	return int(math.Floor(e.Position.X)), int(math.Floor(e.Position.Y))
}
