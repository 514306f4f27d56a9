// vector.go
package geom

import "math"

// Vector is a 2D point or direction in world units (1 unit = 1 tile).
type Vector struct {
	X, Y float64
}

func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Orthogonal returns v rotated 90 degrees counterclockwise.
func (v Vector) Orthogonal() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Normalized returns a unit-length copy of v. The zero vector is returned
// unchanged.
func (v Vector) Normalized() Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Div(length)
}

// Rotated rotates v by the given angle in radians.
func (v Vector) Rotated(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
