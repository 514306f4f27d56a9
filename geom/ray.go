// ray.go
package geom

// Ray is a half-line from Origin along a unit Direction.
type Ray struct {
	Origin    Vector
	Direction Vector
}

// Billboard is a textured line segment in world space: the uniform drawable
// for sprites, door faces and push-wall faces. Direction scaled by Length
// spans the segment from Start to End.
type Billboard struct {
	Start     Vector
	Direction Vector
	Length    float64
	Texture   Texture
}

// Texture is a semantic texture identifier resolved by an external lookup.
type Texture string

func (b Billboard) End() Vector {
	return b.Start.Add(b.Direction.Mul(b.Length))
}

// IsFacing reports whether the billboard's front face is visible from the
// viewpoint. The front is the side the orthogonal of Direction points toward;
// back faces are culled by the renderer.
func (b Billboard) IsFacing(viewpoint Vector) bool {
	normal := b.Direction.Orthogonal()
	return normal.Dot(viewpoint.Sub(b.Start)) > 0
}

// HitTest returns the point where the ray crosses the billboard's segment,
// or nil if it misses. Solved as a ray/segment intersection: the segment is
// Start + u*Direction*Length for u in [0,1], the ray Origin + t*Direction for
// t >= 0.
func (b Billboard) HitTest(ray Ray) *Vector {
	edge := b.Direction.Mul(b.Length)
	denom := ray.Direction.X*edge.Y - ray.Direction.Y*edge.X
	if denom == 0 {
		// parallel
		return nil
	}
	delta := b.Start.Sub(ray.Origin)
	t := (delta.X*edge.Y - delta.Y*edge.X) / denom
	u := (delta.X*ray.Direction.Y - delta.Y*ray.Direction.X) / denom
	if t < 0 || u < 0 || u > 1 {
		return nil
	}
	hit := ray.Origin.Add(ray.Direction.Mul(t))
	return &hit
}
