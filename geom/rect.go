// rect.go
package geom

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Vector
}

func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: Vector{X: minX, Y: minY}, Max: Vector{X: maxX, Y: maxY}}
}

// Intersection returns the minimum translation vector between two overlapping
// rectangles: subtracting it from r's position eliminates the overlap along
// the cheapest axis. Returns nil when the rectangles do not overlap (zero
// overlap on either axis counts as no overlap).
func (r Rect) Intersection(o Rect) *Vector {
	left := r.Max.X - o.Min.X
	if left <= 0 {
		return nil
	}
	right := o.Max.X - r.Min.X
	if right <= 0 {
		return nil
	}
	up := r.Max.Y - o.Min.Y
	if up <= 0 {
		return nil
	}
	down := o.Max.Y - r.Min.Y
	if down <= 0 {
		return nil
	}

	// smallest push on each axis, then the smaller of the two
	mtv := Vector{X: left}
	if right < left {
		mtv = Vector{X: -right}
	}
	if up < down {
		if up < mtv.Length() {
			mtv = Vector{Y: up}
		}
	} else {
		if down < mtv.Length() {
			mtv = Vector{Y: -down}
		}
	}
	return &mtv
}

// Contains reports whether the point lies inside r (inclusive of Min,
// exclusive of Max).
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}
