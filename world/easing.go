// easing.go
package world

// easeInOut maps t in [0,1] to a smooth s-curve: slow start, slow finish.
func easeInOut(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// easeIn and easeOut are the two halves of the s-curve, used by effects.
func easeIn(t float64) float64 {
	return t * t
}

func easeOut(t float64) float64 {
	return 1 - easeIn(1-t)
}
