// tile.go
package world

import "retrograde/geom"

// Tile classifies one grid cell. Wall kinds are solid; floor kinds are
// walkable and carry a floor/ceiling texture pair instead of a lit/dark one.
type Tile int

const (
	TileFloor Tile = iota
	TileFloorScuffed
	TileFloorElevator
	TileWall
	TileWallCracked
	TileWallPanel
)

func (t Tile) IsSolid() bool {
	switch t {
	case TileWall, TileWallCracked, TileWallPanel:
		return true
	default:
		return false
	}
}

// Textures returns the pair of texture ids for the tile. For walls these are
// the lit and dark face variants picked by hit axis; for floors they are the
// floor and ceiling textures.
func (t Tile) Textures() (geom.Texture, geom.Texture) {
	switch t {
	case TileWall:
		return "wall", "wall-dark"
	case TileWallCracked:
		return "crack-wall", "crack-wall-dark"
	case TileWallPanel:
		return "panel-wall", "panel-wall-dark"
	case TileFloorScuffed:
		return "scuffed-floor", "ceiling"
	case TileFloorElevator:
		return "elevator-floor", "elevator-ceiling"
	default:
		return "floor", "ceiling"
	}
}

// Thing is a spawn marker from level data, resolved once at load/reset time.
type Thing int

const (
	ThingNone Thing = iota
	ThingPlayer
	ThingMonster
	ThingDoor
	ThingPushwall
)
