package geom

import (
	"math"
	"testing"
)

func TestBillboardHitTest(t *testing.T) {
	// vertical segment at x=2 spanning y in [1, 2]
	board := Billboard{Start: V(2, 1), Direction: V(0, 1), Length: 1, Texture: "wall"}

	tests := []struct {
		name string
		ray  Ray
		want *Vector
	}{
		{
			name: "Straight on",
			ray:  Ray{Origin: V(0, 1.5), Direction: V(1, 0)},
			want: &Vector{X: 2, Y: 1.5},
		},
		{
			name: "Oblique",
			ray:  Ray{Origin: V(0, 0), Direction: V(2, 1.5).Normalized()},
			want: &Vector{X: 2, Y: 1.5},
		},
		{
			name: "Misses past the end",
			ray:  Ray{Origin: V(0, 3), Direction: V(1, 0)},
			want: nil,
		},
		{
			name: "Behind the origin",
			ray:  Ray{Origin: V(3, 1.5), Direction: V(1, 0)},
			want: nil,
		},
		{
			name: "Parallel",
			ray:  Ray{Origin: V(0, 0), Direction: V(0, 1)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := board.HitTest(tt.ray)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Expected a miss, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected hit at %+v, got nil", tt.want)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Expected hit at %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBillboardIsFacing(t *testing.T) {
	board := Billboard{Start: V(2, 1), Direction: V(0, 1), Length: 1}
	// direction (0,1) has orthogonal (-1,0): the front faces negative x
	if !board.IsFacing(V(0, 1.5)) {
		t.Error("Expected front side to face the viewer at x=0")
	}
	if board.IsFacing(V(4, 1.5)) {
		t.Error("Expected back side toward the viewer at x=4")
	}

	flipped := Billboard{Start: board.End(), Direction: V(0, -1), Length: 1}
	if !flipped.IsFacing(V(4, 1.5)) {
		t.Error("Expected flipped billboard to face the viewer at x=4")
	}
}
