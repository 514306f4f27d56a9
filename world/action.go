// action.go
package world

import "retrograde/geom"

// Sound is a semantic sound identifier; playback belongs to an external
// collaborator that consumes PlaySound actions.
type Sound string

const (
	SoundPistolFire   Sound = "pistol-fire"
	SoundRicochet     Sound = "ricochet"
	SoundMonsterHit   Sound = "monster-hit"
	SoundMonsterGroan Sound = "monster-groan"
	SoundMonsterSwipe Sound = "monster-swipe"
	SoundMonsterDeath Sound = "monster-death"
	SoundDoorSlide    Sound = "door-slide"
	SoundDoorThud     Sound = "door-thud"
	SoundWallSlide    Sound = "wall-slide"
	SoundWallThud     Sound = "wall-thud"
	SoundPlayerDeath  Sound = "player-death"
)

// Action is a declarative side-effect request returned by a simulation step.
// The world never calls audio or level loading directly; it only describes
// what should happen.
type Action interface {
	action()
}

// PlaySound asks the audio collaborator to play a sound at a world position.
type PlaySound struct {
	Sound    Sound
	Position geom.Vector
}

func (PlaySound) action() {}

// LoadLevel asks the level-loading collaborator to switch to another level.
type LoadLevel struct {
	Index int
}

func (LoadLevel) action() {}

// Input is the normalized player intent for one sub-step: movement in the
// player's local frame (x strafe, y forward, length <= 1), facing rotation in
// radians, and whether the fire control is held.
type Input struct {
	Movement geom.Vector
	Rotation float64
	Fire     bool
}
