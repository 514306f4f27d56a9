// tilemap.go
package world

import (
	"encoding/json"
	"fmt"
	"math"

	"retrograde/geom"
)

// Tilemap is the static level grid: a dense row-major tile array plus a
// parallel sparse list of spawn markers consumed at load/reset time. The grid
// dimensions never change for the lifetime of a level; the tiles themselves
// may (a push-wall claiming a wall cell rewrites it to floor).
type Tilemap struct {
	Width  int
	Tiles  []Tile
	Things []Thing
}

type mapData struct {
	Width  int   `json:"width"`
	Tiles  []int `json:"tiles"`
	Things []int `json:"things"`
}

// LoadTilemap decodes and validates level data. Malformed levels are content
// bugs, so every inconsistency is an error here rather than a guess later.
func LoadTilemap(data []byte) (*Tilemap, error) {
	var raw mapData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if raw.Width < 3 {
		return nil, fmt.Errorf("level width %d too small", raw.Width)
	}
	if len(raw.Tiles)%raw.Width != 0 {
		return nil, fmt.Errorf("tile count %d not a multiple of width %d", len(raw.Tiles), raw.Width)
	}
	if len(raw.Things) != len(raw.Tiles) {
		return nil, fmt.Errorf("things count %d does not match tile count %d", len(raw.Things), len(raw.Tiles))
	}

	m := &Tilemap{
		Width:  raw.Width,
		Tiles:  make([]Tile, len(raw.Tiles)),
		Things: make([]Thing, len(raw.Things)),
	}
	for i, t := range raw.Tiles {
		if t < int(TileFloor) || t > int(TileWallPanel) {
			return nil, fmt.Errorf("unknown tile kind %d at index %d", t, i)
		}
		m.Tiles[i] = Tile(t)
	}
	for i, t := range raw.Things {
		if t < int(ThingNone) || t > int(ThingPushwall) {
			return nil, fmt.Errorf("unknown thing kind %d at index %d", t, i)
		}
		m.Things[i] = Thing(t)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Tilemap) validate() error {
	playerCount := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width; x++ {
			switch m.Thing(x, y) {
			case ThingPlayer:
				playerCount++
				if m.Tile(x, y).IsSolid() {
					return fmt.Errorf("player spawn inside solid tile at %d,%d", x, y)
				}
			case ThingMonster:
				if m.Tile(x, y).IsSolid() {
					return fmt.Errorf("monster spawn inside solid tile at %d,%d", x, y)
				}
			case ThingDoor:
				if m.Tile(x, y).IsSolid() {
					return fmt.Errorf("door spawn inside solid tile at %d,%d", x, y)
				}
				if _, err := m.doorAxis(x, y); err != nil {
					return err
				}
			case ThingPushwall:
				// allowed on wall (captures texture) or floor (default texture)
			}
		}
	}
	if playerCount != 1 {
		return fmt.Errorf("level must contain exactly one player spawn, found %d", playerCount)
	}
	return nil
}

// doorAxis infers the sliding axis of a door marker from its neighbors: solid
// tiles strictly left and right mean the panel spans (and slides along) X,
// solid above and below mean Y. Anything else is malformed level data.
func (m *Tilemap) doorAxis(x, y int) (geom.Vector, error) {
	if x <= 0 || x >= m.Width-1 || y <= 0 || y >= m.Height()-1 {
		return geom.Vector{}, fmt.Errorf("door at %d,%d touches the map edge", x, y)
	}
	if m.Tile(x-1, y).IsSolid() && m.Tile(x+1, y).IsSolid() {
		return geom.V(1, 0), nil
	}
	if m.Tile(x, y-1).IsSolid() && m.Tile(x, y+1).IsSolid() {
		return geom.V(0, 1), nil
	}
	return geom.Vector{}, fmt.Errorf("door at %d,%d has no adjacent solid pair to infer its axis", x, y)
}

func (m *Tilemap) Height() int {
	return len(m.Tiles) / m.Width
}

// Tile returns the tile at x,y. Out-of-range coordinates read as plain wall
// so that rays and collision checks terminate at the map boundary.
func (m *Tilemap) Tile(x, y int) Tile {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height() {
		return TileWall
	}
	return m.Tiles[y*m.Width+x]
}

func (m *Tilemap) SetTile(x, y int, t Tile) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height() {
		return
	}
	m.Tiles[y*m.Width+x] = t
}

func (m *Tilemap) Thing(x, y int) Thing {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height() {
		return ThingNone
	}
	return m.Things[y*m.Width+x]
}

// Axis identifies which face of a tile a ray hit: AxisX for a vertical face
// (the ray crossed an x grid line), AxisY for a horizontal one. It selects
// the lit/dark texture variant and which coordinate supplies the texture U.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Hit describes the first solid tile along a ray.
type Hit struct {
	Point        geom.Vector
	Distance     float64 // euclidean distance from the ray origin
	Axis         Axis
	TileX, TileY int
}

// Cast steps the ray across grid lines (DDA) until it reaches a solid tile.
// The ray direction need not be unit length.
func (m *Tilemap) Cast(ray geom.Ray) Hit {
	tileX, tileY := int(math.Floor(ray.Origin.X)), int(math.Floor(ray.Origin.Y))

	deltaDistX := math.Abs(1 / ray.Direction.X)
	deltaDistY := math.Abs(1 / ray.Direction.Y)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if ray.Direction.X < 0 {
		stepX = -1
		sideDistX = (ray.Origin.X - float64(tileX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(tileX) + 1 - ray.Origin.X) * deltaDistX
	}
	if ray.Direction.Y < 0 {
		stepY = -1
		sideDistY = (ray.Origin.Y - float64(tileY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(tileY) + 1 - ray.Origin.Y) * deltaDistY
	}

	axis := AxisX
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			tileX += stepX
			axis = AxisX
		} else {
			sideDistY += deltaDistY
			tileY += stepY
			axis = AxisY
		}
		if m.Tile(tileX, tileY).IsSolid() {
			break
		}
	}

	// distance along the (possibly non-unit) direction to the hit grid line
	var along float64
	if axis == AxisX {
		along = (float64(tileX) - ray.Origin.X + (1-float64(stepX))/2) / ray.Direction.X
	} else {
		along = (float64(tileY) - ray.Origin.Y + (1-float64(stepY))/2) / ray.Direction.Y
	}
	point := ray.Origin.Add(ray.Direction.Mul(along))

	// floating point error at a tile boundary can land the fractional part a
	// hair below the tile, which would read texture rows below zero
	if point.X < 0 {
		point.X = 0
	}
	if point.Y < 0 {
		point.Y = 0
	}

	return Hit{
		Point:    point,
		Distance: point.Sub(ray.Origin).Length(),
		Axis:     axis,
		TileX:    tileX,
		TileY:    tileY,
	}
}
