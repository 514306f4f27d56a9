// fizzle.go
package render

import "math/rand"

// Fizzle is the shuffled pixel order behind the dissolve transition. It is an
// explicitly owned, seeded resource rather than a process global, so the
// effect is deterministic for a given seed and testable.
type Fizzle struct {
	rank []int // rank[pixel] = position of that pixel in the dissolve order
}

func NewFizzle(pixelCount int, seed int64) *Fizzle {
	rng := rand.New(rand.NewSource(seed))
	rank := make([]int, pixelCount)
	for i, p := range rng.Perm(pixelCount) {
		rank[p] = i
	}
	return &Fizzle{rank: rank}
}

// Covers reports whether the pixel has dissolved at the given progress in
// [0, 1]. At progress 1 every pixel is covered.
func (f *Fizzle) Covers(pixel int, progress float64) bool {
	return float64(f.rank[pixel]) < progress*float64(len(f.rank))
}
