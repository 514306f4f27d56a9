// effect.go
package world

import "image/color"

type EffectType int

const (
	EffectFadeIn EffectType = iota
	EffectFadeOut
	EffectFizzleOut
)

// Effect is a transient full-screen tint the renderer composites last.
type Effect struct {
	Type     EffectType
	Color    color.RGBA
	Duration float64
	Time     float64
}

func NewEffect(kind EffectType, c color.RGBA, duration float64) Effect {
	return Effect{Type: kind, Color: c, Duration: duration}
}

// Progress is the eased fraction of the effect that has elapsed. Fade-in
// eases out (fast start) and the others ease in, so reveals feel quick and
// dissolves build up.
func (e *Effect) Progress() float64 {
	t := e.Time / e.Duration
	if t > 1 {
		t = 1
	}
	switch e.Type {
	case EffectFadeIn:
		return easeOut(t)
	default:
		return easeIn(t)
	}
}

func (e *Effect) IsComplete() bool {
	return e.Time >= e.Duration
}
