package geom

import (
	"math"
	"testing"
)

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want *Vector
	}{
		{
			name: "Overlap from the left pushes left",
			a:    NewRect(0, 0, 1.2, 1),
			b:    NewRect(1, 0, 2, 1),
			want: &Vector{X: 0.2},
		},
		{
			name: "Overlap from the right pushes right",
			a:    NewRect(1.8, 0, 3, 1),
			b:    NewRect(1, 0, 2, 1),
			want: &Vector{X: -0.2},
		},
		{
			name: "Overlap from above pushes up",
			a:    NewRect(0, 0, 1, 1.1),
			b:    NewRect(0, 1, 1, 2),
			want: &Vector{Y: 0.1},
		},
		{
			name: "Overlap from below pushes down",
			a:    NewRect(0, 1.9, 1, 3),
			b:    NewRect(0, 1, 1, 2),
			want: &Vector{Y: -0.1},
		},
		{
			name: "Smaller axis wins",
			a:    NewRect(0, 0, 1.5, 1.1),
			b:    NewRect(1, 1, 2, 2),
			want: &Vector{Y: 0.1},
		},
		{
			name: "Disjoint returns nil",
			a:    NewRect(0, 0, 1, 1),
			b:    NewRect(2, 2, 3, 3),
			want: nil,
		},
		{
			name: "Touching edges is not an overlap",
			a:    NewRect(0, 0, 1, 1),
			b:    NewRect(1, 0, 2, 1),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Expected no intersection, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %+v, got nil", tt.want)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRectIntersectionMagnitude(t *testing.T) {
	a := NewRect(0, 0, 1.3, 1.2)
	b := NewRect(1, 1, 2, 2)

	mtv := a.Intersection(b)
	if mtv == nil {
		t.Fatal("Expected an intersection")
	}

	overlapX := a.Max.X - b.Min.X
	overlapY := a.Max.Y - b.Min.Y
	want := math.Min(overlapX, overlapY)
	if math.Abs(mtv.Length()-want) > 1e-9 {
		t.Errorf("Expected magnitude %v, got %v", want, mtv.Length())
	}
}

func TestRectIntersectionResolves(t *testing.T) {
	// subtracting the mtv must leave exactly zero overlap, not negative
	tests := []struct {
		name string
		a    Rect
	}{
		{"From the left", NewRect(0.5, 1.2, 1.5, 2.2)},
		{"From the right", NewRect(2.6, 1.1, 3.6, 2.1)},
		{"Diagonal", NewRect(1.4, 1.6, 2.4, 2.6)},
	}
	b := NewRect(1, 1, 3, 2)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mtv := tt.a.Intersection(b)
			if mtv == nil {
				t.Fatal("Expected an intersection")
			}
			moved := Rect{Min: tt.a.Min.Sub(*mtv), Max: tt.a.Max.Sub(*mtv)}
			if again := moved.Intersection(b); again != nil {
				t.Errorf("Still overlapping after applying mtv: %+v", again)
			}
			// the move must be exact: nudging back in by any amount overlaps again
			const epsilon = 1e-6
			nudge := mtv.Normalized().Mul(epsilon)
			back := Rect{Min: moved.Min.Add(nudge), Max: moved.Max.Add(nudge)}
			if back.Intersection(b) == nil {
				t.Error("Expected resolution to be exact, found slack")
			}
		})
	}
}

func TestVectorOrthogonal(t *testing.T) {
	v := V(3, 4)
	o := v.Orthogonal()
	if o.Dot(v) != 0 {
		t.Errorf("Expected orthogonal vector, dot product %v", o.Dot(v))
	}
	if o.Length() != v.Length() {
		t.Errorf("Expected length preserved, got %v want %v", o.Length(), v.Length())
	}
}
