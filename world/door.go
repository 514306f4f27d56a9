// door.go
package world

import (
	"math"

	"retrograde/geom"
)

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

const (
	doorDuration   = 0.5 // seconds to slide fully open or closed
	doorCloseDelay = 3.0 // idle seconds before an open door starts closing
	doorDepth      = 0.1 // half-thickness of the touchable rectangle
)

// Door is a sliding panel anchored to one grid cell. Direction is the unit
// vector the panel spans and slides along; the panel is one tile long.
type Door struct {
	Position    geom.Vector // cell center
	Direction   geom.Vector
	State       DoorState
	Time        float64
	Texture     geom.Texture
	DarkTexture geom.Texture
}

func NewDoor(x, y int, direction geom.Vector) Door {
	return Door{
		Position:    geom.V(float64(x)+0.5, float64(y)+0.5),
		Direction:   direction,
		Texture:     "door",
		DarkTexture: "door-dark",
	}
}

// Offset is how far the panel has slid out of its cell, eased so the
// rectangle and billboard track the same animated position.
func (d *Door) Offset() float64 {
	t := math.Min(1, d.Time/doorDuration)
	switch d.State {
	case DoorOpening:
		return easeInOut(t)
	case DoorOpen:
		return 1
	case DoorClosing:
		return 1 - easeInOut(t)
	default:
		return 0
	}
}

// Billboard is the drawable panel face. The renderer flips it toward the
// viewer, so it carries no facing of its own.
func (d *Door) Billboard() geom.Billboard {
	tex := d.Texture
	if d.Direction.Y != 0 {
		tex = d.DarkTexture
	}
	return geom.Billboard{
		Start:     d.Position.Sub(d.Direction.Mul(0.5)).Add(d.Direction.Mul(d.Offset())),
		Direction: d.Direction,
		Length:    1,
		Texture:   tex,
	}
}

// Rect is the collision rectangle around the panel. It has a small thickness
// so an actor walking down the corridor touches it without needing exact
// alignment with the panel line.
func (d *Door) Rect() geom.Rect {
	b := d.Billboard()
	return segmentRect(b.Start, b.End(), doorDepth)
}

// TriggerRect covers the whole door cell; stepping anywhere into the cell
// opens the door even when the panel itself has slid mostly away.
func (d *Door) TriggerRect() geom.Rect {
	half := geom.V(0.5, 0.5)
	return geom.Rect{Min: d.Position.Sub(half), Max: d.Position.Add(half)}
}

func (d *Door) TileCoords() (int, int) {
	return int(math.Floor(d.Position.X)), int(math.Floor(d.Position.Y))
}

// Update advances the door state machine by one sub-step. closed->opening is
// triggered by any living actor touching the door; the timed transitions use
// fixed durations and the open->closing transition waits out a close delay
// that touching actors keep resetting.
func (d *Door) Update(timeStep float64, w *World) {
	switch d.State {
	case DoorClosed:
		if w.touchesLivingActor(d.Rect()) {
			d.State = DoorOpening
			d.Time = 0
			w.playSound(SoundDoorSlide, d.Position)
			return
		}
	case DoorOpening:
		if d.Time >= doorDuration {
			d.State = DoorOpen
			d.Time = 0
			return
		}
	case DoorOpen:
		if w.touchesLivingActor(d.TriggerRect()) {
			d.Time = 0
		}
		if d.Time >= doorCloseDelay {
			d.State = DoorClosing
			d.Time = 0
			w.playSound(SoundDoorSlide, d.Position)
			return
		}
	case DoorClosing:
		if d.Time >= doorDuration {
			d.State = DoorClosed
			d.Time = 0
			w.playSound(SoundDoorThud, d.Position)
			return
		}
	}
	d.Time += timeStep
}

// segmentRect builds an axis-aligned rectangle around the segment a-b, padded
// by depth across the segment's thin axis.
func segmentRect(a, b geom.Vector, depth float64) geom.Rect {
	min := geom.V(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
	max := geom.V(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
	if max.X-min.X < depth*2 {
		min.X -= depth
		max.X += depth
	}
	if max.Y-min.Y < depth*2 {
		min.Y -= depth
		max.Y += depth
	}
	return geom.Rect{Min: min, Max: max}
}
