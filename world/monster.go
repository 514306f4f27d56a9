// monster.go
package world

import (
	"math"

	"retrograde/geom"
	"retrograde/path"
)

type MonsterState int

const (
	MonsterIdle MonsterState = iota
	MonsterChasing
	MonsterScratching
	MonsterHurt
	MonsterDead
)

const (
	monsterSpeed     = 1.2 // tiles per second
	monsterRadius    = 0.25
	monsterMaxHealth = 50.0

	monsterReach       = 0.75 // melee range in tiles
	monsterSwipeDelay  = 0.8  // seconds between scratches
	monsterSwipeDamage = 10.0
	monsterHurtTime    = 0.4 // flinch duration after taking a hit

	// searches past this cost are abandoned and the monster holds position
	monsterRouteCostLimit = 50.0
)

// Monster is a melee enemy. Its behaviour is a five-state machine driven by
// line of sight and A* routes through the grid.
type Monster struct {
	Entity
	State     MonsterState
	Animation float64 // seconds in the current state, drives sprite choice
	SwipeTime float64
	Route     []path.Node
}

func NewMonster(id, x, y int) Monster {
	return Monster{
		Entity: Entity{
			Id:              id,
			Position:        geom.V(float64(x)+0.5, float64(y)+0.5),
			CollisionRadius: monsterRadius,
			Health:          monsterMaxHealth,
		},
	}
}

// Billboard returns the monster's sprite as a camera-plane-aligned segment
// centered on its position. plane must be a unit vector orthogonal to the
// view direction.
func (m *Monster) Billboard(plane geom.Vector) geom.Billboard {
	return geom.Billboard{
		Start:     m.Position.Sub(plane.Mul(0.5)),
		Direction: plane,
		Length:    1,
		Texture:   m.texture(),
	}
}

func (m *Monster) texture() geom.Texture {
	switch m.State {
	case MonsterChasing:
		// two-frame walk cycle
		if int(m.Animation*4)%2 == 0 {
			return "monster-walk1"
		}
		return "monster-walk2"
	case MonsterScratching:
		if int(m.Animation*4)%2 == 0 {
			return "monster-scratch1"
		}
		return "monster-scratch2"
	case MonsterHurt:
		return "monster-hurt"
	case MonsterDead:
		return "monster-dead"
	default:
		return "monster-idle"
	}
}

// Update advances the monster state machine by one sub-step. It may mutate
// the world (hurting the player, emitting sounds); the caller holds m as a
// copied-out value, so the world never sees a half-updated monster.
func (m *Monster) Update(timeStep float64, w *World) {
	m.Animation += timeStep

	switch m.State {
	case MonsterIdle:
		m.Velocity = geom.Vector{}
		if w.canSeePlayer(m.Position) {
			m.setState(MonsterChasing)
			w.playSound(SoundMonsterGroan, m.Position)
		}
	case MonsterChasing:
		if w.Player.IsDead() {
			m.Velocity = geom.Vector{}
			m.setState(MonsterIdle)
			return
		}
		if w.canSeePlayer(m.Position) {
			if w.Player.Position.Sub(m.Position).Length() < monsterReach {
				m.Velocity = geom.Vector{}
				m.SwipeTime = 0
				m.setState(MonsterScratching)
				return
			}
			m.Route = w.Route(m.Position, w.Player.Position)
		}
		if len(m.Route) == 0 {
			// unreachable or lost: hold position
			m.Velocity = geom.Vector{}
			m.setState(MonsterIdle)
			return
		}
		next := m.Route[0]
		target := geom.V(float64(next.X)+0.5, float64(next.Y)+0.5)
		delta := target.Sub(m.Position)
		if delta.Length() < 0.1 {
			m.Route = m.Route[1:]
			return
		}
		m.Velocity = delta.Normalized().Mul(monsterSpeed)
	case MonsterScratching:
		if w.Player.IsDead() || w.Player.Position.Sub(m.Position).Length() > monsterReach {
			m.setState(MonsterChasing)
			return
		}
		m.SwipeTime += timeStep
		if m.SwipeTime >= monsterSwipeDelay {
			m.SwipeTime = 0
			w.hurtPlayer(monsterSwipeDamage)
			w.playSound(SoundMonsterSwipe, m.Position)
		}
	case MonsterHurt:
		m.Velocity = geom.Vector{}
		if m.Animation >= monsterHurtTime {
			m.setState(MonsterChasing)
		}
	case MonsterDead:
		m.Velocity = geom.Vector{}
	}
}

func (m *Monster) setState(s MonsterState) {
	m.State = s
	m.Animation = 0
}

// reactToDamage moves the state machine in response to a hit; the world calls
// this after reducing health.
func (m *Monster) reactToDamage() {
	if m.IsDead() {
		m.setState(MonsterDead)
		return
	}
	m.setState(MonsterHurt)
}

// canSeePlayer reports whether an unobstructed straight line runs from the
// given point to the living player's position.
func (w *World) canSeePlayer(from geom.Vector) bool {
	if w.Player.IsDead() {
		return false
	}
	delta := w.Player.Position.Sub(from)
	distance := delta.Length()
	if distance == 0 {
		return true
	}
	ray := geom.Ray{Origin: from, Direction: delta.Div(distance)}
	return w.HitTest(ray) > distance
}

// Route plans a path between two world positions, cell-snapped. The returned
// route is ordered nearest step first and excludes the starting cell.
func (w *World) Route(from, to geom.Vector) []path.Node {
	start := path.Node{X: int(math.Floor(from.X)), Y: int(math.Floor(from.Y))}
	goal := path.Node{X: int(math.Floor(to.X)), Y: int(math.Floor(to.Y))}
	return path.Find(w.graph(), start, goal, monsterRouteCostLimit)
}
