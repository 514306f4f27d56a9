// player.go
package world

import (
	"retrograde/geom"
)

type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponFiring
)

const (
	playerSpeed     = 2.0 // tiles per second
	playerRadius    = 0.25
	playerMaxHealth = 100

	weaponCooldown = 0.25 // seconds between shots, also the firing animation time
	weaponDamage   = 10.0
)

// Player is the viewer-controlled actor.
type Player struct {
	Entity
	Direction  geom.Vector
	Weapon     WeaponState
	WeaponTime float64
}

func NewPlayer(id int, x, y int) Player {
	return Player{
		Entity: Entity{
			Id:              id,
			Position:        geom.V(float64(x)+0.5, float64(y)+0.5),
			CollisionRadius: playerRadius,
			Health:          playerMaxHealth,
		},
		Direction: geom.V(1, 0),
	}
}

// Update applies one sub-step of input: rotate the facing, convert the local
// movement vector into a world-space velocity, and run the weapon state
// machine. Position integration and collision resolution happen in the world
// step, after the copy-out commit.
func (p *Player) Update(timeStep float64, input Input, w *World) {
	p.Direction = p.Direction.Rotated(input.Rotation)

	movement := input.Movement
	if movement.LengthSquared() > 1 {
		movement = movement.Normalized()
	}
	forward := p.Direction.Mul(movement.Y)
	strafe := p.Direction.Orthogonal().Mul(movement.X)
	p.Velocity = forward.Add(strafe).Mul(playerSpeed)

	switch p.Weapon {
	case WeaponIdle:
		if input.Fire {
			p.Weapon = WeaponFiring
			p.WeaponTime = 0
			p.fire(w)
		}
	case WeaponFiring:
		p.WeaponTime += timeStep
		if p.WeaponTime >= weaponCooldown {
			p.Weapon = WeaponIdle
			p.WeaponTime = 0
		}
	}
}

// WeaponTexture is the sprite frame the renderer overlays for the weapon:
// the muzzle-flash frame for the first half of the firing state, the idle
// frame otherwise.
func (p *Player) WeaponTexture() geom.Texture {
	if p.Weapon == WeaponFiring && p.WeaponTime < weaponCooldown/2 {
		return "pistol-fire"
	}
	return "pistol"
}

// fire resolves a hitscan shot: the nearest monster crossed by the aim ray
// takes damage, unless a wall, door or push-wall stands closer.
func (p *Player) fire(w *World) {
	w.playSound(SoundPistolFire, p.Position)

	ray := geom.Ray{Origin: p.Position, Direction: p.Direction}
	wallDistance := w.HitTest(ray)

	bestIndex := -1
	bestDistance := wallDistance
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if m.IsDead() {
			continue
		}
		hit := m.Billboard(p.Direction.Orthogonal()).HitTest(ray)
		if hit == nil {
			continue
		}
		d := hit.Sub(p.Position).Length()
		if d < bestDistance {
			bestDistance = d
			bestIndex = i
		}
	}

	if bestIndex < 0 {
		w.playSound(SoundRicochet, ray.Origin.Add(ray.Direction.Mul(wallDistance)))
		return
	}
	w.hurtMonster(bestIndex, weaponDamage)
}
