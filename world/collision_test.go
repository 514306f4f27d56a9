package world

import (
	"math"
	"testing"

	"retrograde/geom"
)

func TestIntersectionWithGrid(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P..#",
		"#...#",
		"#####",
	})

	if mtv := w.Intersection(&w.Player); mtv != nil {
		t.Errorf("Expected the player to spawn clear, got mtv %v", mtv)
	}

	w.Player.Position = geom.V(1.1, 1.5)
	mtv := w.Intersection(&w.Player)
	if mtv == nil {
		t.Fatal("Expected an overlap with the west wall")
	}
	if mtv.Y != 0 || mtv.X >= 0 {
		t.Errorf("Expected a negative-x translation away from the wall, got %v", mtv)
	}
}

func TestIntersectionExcludesSelfByIdentity(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P.M#",
		"#..M#",
		"#####",
	})

	// a copied-out actor shares its spawn id with the stored one
	monster := w.Monsters[0]
	if mtv := w.Intersection(&monster); mtv != nil {
		t.Errorf("Expected no self-collision for a copied-out monster, got %v", mtv)
	}

	// two distinct actors with identical state still collide
	w.Monsters[1].Position = w.Monsters[0].Position
	if mtv := w.Intersection(&w.Monsters[0]); mtv == nil {
		t.Error("Expected coincident monsters to collide")
	}
}

func TestIntersectionSkipsOpenDoorsAndDeadActors(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P.D#",
		"#####",
	})

	w.Player.Position = w.Doors[0].Position
	if mtv := w.Intersection(&w.Player); mtv == nil {
		t.Error("Expected the closed door panel to collide")
	}
	w.Doors[0].State = DoorOpen
	if mtv := w.Intersection(&w.Player); mtv != nil {
		t.Errorf("Expected the open door to be passable, got %v", mtv)
	}

	w = testWorld(t, []string{
		"#####",
		"#P.M#",
		"#####",
	})
	w.Player.Position = w.Monsters[0].Position
	if mtv := w.Intersection(&w.Player); mtv == nil {
		t.Error("Expected a living monster to collide")
	}
	w.Monsters[0].Health = 0
	if mtv := w.Intersection(&w.Player); mtv != nil {
		t.Errorf("Expected a dead monster to be passable, got %v", mtv)
	}
}

func TestResolveFreesOverlappingActor(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P..#",
		"#...#",
		"#####",
	})

	w.Player.Position = geom.V(1.1, 1.1)
	player := w.Player
	w.Resolve(&player)
	if mtv := w.Intersection(&player); mtv != nil {
		t.Errorf("Expected the player to be clear after resolution, got %v", mtv)
	}
	if player.Position.X < 1.2 || player.Position.Y < 1.2 {
		t.Errorf("Expected the player pushed into the open corner, got %v", player.Position)
	}
}

func TestResolveGivesUpWhenEnclosed(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P#.#",
		"#####",
	})

	// wall the player in, then ask for a resolution that cannot succeed
	w.Map.SetTile(1, 1, TileWall)
	player := w.Player
	w.Resolve(&player)
	if !w.IsStuck(&player) {
		t.Error("Expected an enclosed actor to remain stuck")
	}
}

func TestIsStuck(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P.W#",
		"#...#",
		"#####",
	})

	tests := []struct {
		name string
		pos  geom.Vector
		want bool
	}{
		{"open floor", geom.V(1.5, 2.5), false},
		{"inside a wall tile", geom.V(0.5, 0.5), true},
		{"outside the map", geom.V(-1, 1.5), true},
		{"inside a push-wall", w.Pushwalls[0].Position, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w.Player.Position = test.pos
			if got := w.IsStuck(&w.Player); got != test.want {
				t.Errorf("Expected stuck=%v at %v, got %v", test.want, test.pos, got)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#P.D#",
		"#####",
	})
	ray := geom.Ray{Origin: geom.V(1.5, 1.5), Direction: geom.V(1, 0)}

	// the closed panel sits across the door cell at x=3.5, the wall at x=4
	if d := w.HitTest(ray); math.Abs(d-2.0) > 1e-9 {
		t.Errorf("Expected the closed door to obstruct at distance 2, got %v", d)
	}
	w.Doors[0].State = DoorOpen
	if d := w.HitTest(ray); math.Abs(d-2.5) > 1e-9 {
		t.Errorf("Expected the open door to clear the ray to the wall, got %v", d)
	}
}
