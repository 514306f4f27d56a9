package world

import (
	"testing"

	"retrograde/geom"
)

const pushwallTestStep = 1.0 / 120

func stepPushwall(w *World, steps int) {
	for i := 0; i < steps; i++ {
		pushwall := w.Pushwalls[0]
		pushwall.Update(pushwallTestStep, w)
		w.Pushwalls[0] = pushwall
	}
}

func TestPushwallSpawnClaimsWallCell(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.P.#",
		"#.W.#",
		"#...#",
		"#####",
	})

	if len(w.Pushwalls) != 1 {
		t.Fatalf("Expected one push-wall, got %d", len(w.Pushwalls))
	}
	p := &w.Pushwalls[0]
	if p.Tile != TileWall {
		t.Errorf("Expected the captured tile to be the claimed wall, got %v", p.Tile)
	}
	if w.Map.Tile(2, 2) != TileFloor {
		t.Errorf("Expected the claimed cell opened to floor, got %v", w.Map.Tile(2, 2))
	}
	if p.Position != geom.V(2.5, 2.5) {
		t.Errorf("Expected the block centered on its cell, got %v", p.Position)
	}
}

func TestPushwallSlidesAlongDominantPushAxis(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.P.#",
		"#.W.#",
		"#...#",
		"#####",
	})

	// lean into the block from the north: the overlap is thin in y, so the
	// block slides south
	w.Player.Position = geom.V(2.5, 1.9)
	stepPushwall(w, 1)

	p := &w.Pushwalls[0]
	if p.State != PushwallMoving {
		t.Fatalf("Expected the block to start moving, got state %v", p.State)
	}
	if p.Velocity.X != 0 || p.Velocity.Y <= 0 {
		t.Errorf("Expected a southward velocity, got %v", p.Velocity)
	}
}

func TestPushwallStopsOnGeometryAndSnaps(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.P.#",
		"#.W.#",
		"#...#",
		"#####",
	})

	w.Player.Position = geom.V(2.5, 1.9)
	stepPushwall(w, 1)
	w.Player.Position = geom.V(1.5, 1.5)

	// one cell of travel plus the overrun into the far wall
	stepPushwall(w, 200)
	p := &w.Pushwalls[0]
	if p.State != PushwallIdle {
		t.Fatalf("Expected the block at rest against the far wall, got state %v", p.State)
	}
	if p.Position != geom.V(2.5, 3.5) {
		t.Errorf("Expected the block snapped to the next cell center, got %v", p.Position)
	}
	if p.Velocity != (geom.Vector{}) {
		t.Errorf("Expected zero velocity at rest, got %v", p.Velocity)
	}
}

func TestPushwallIgnoresPushIntoBlockedCell(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.P.#",
		"#.W.#",
		"#####",
	})

	w.Player.Position = geom.V(2.5, 1.9)
	stepPushwall(w, 10)
	if got := w.Pushwalls[0].State; got != PushwallIdle {
		t.Errorf("Expected a blocked block to stay idle, got state %v", got)
	}
	if got := w.Pushwalls[0].Position; got != geom.V(2.5, 2.5) {
		t.Errorf("Expected the blocked block unmoved, got %v", got)
	}
}

func TestPushwallIgnoresDeadActors(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.P.#",
		"#.W.#",
		"#...#",
		"#####",
	})

	w.Player.Position = geom.V(2.5, 1.9)
	w.Player.Health = 0
	stepPushwall(w, 10)
	if got := w.Pushwalls[0].State; got != PushwallIdle {
		t.Errorf("Expected a dead actor's overlap ignored, got state %v", got)
	}
}

func TestPushwallBillboardsFaceOutward(t *testing.T) {
	p := NewPushwall(7, 2, 2, TileWall)

	boards := p.Billboards()
	if len(boards) != 4 {
		t.Fatalf("Expected four faces, got %d", len(boards))
	}
	for i, b := range boards {
		if b.Length != 1 {
			t.Errorf("Face %d: expected unit length, got %v", i, b.Length)
		}
		// every face must show its front to a viewpoint beyond that side
		outside := b.Start.Add(b.Direction.Mul(0.5)).Sub(p.Position).Mul(3).Add(p.Position)
		if !b.IsFacing(outside) {
			t.Errorf("Face %d: expected the face visible from outside its side", i)
		}
		if b.IsFacing(p.Position) {
			t.Errorf("Face %d: expected the face culled from inside the block", i)
		}
	}
}
