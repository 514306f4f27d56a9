// world.go
package world

import (
	"fmt"
	"image/color"

	"github.com/jinzhu/copier"

	"retrograde/geom"
)

const stuckDamagePerSecond = 20.0

// World is the one piece of mutable simulation state: the grid plus every
// dynamic entity spawned from it. The simulation step owns it exclusively;
// the renderer only ever sees a Snapshot.
type World struct {
	Map        *Tilemap
	Player     Player
	Monsters   []Monster
	Doors      []Door
	Pushwalls  []Pushwall
	Effects    []Effect
	LevelIndex int

	actions    []Action
	nextID     int
	levelEnded bool
}

// NewWorld spawns a world from a loaded tilemap. Spawn inconsistencies the
// tilemap validation could not see on its own surface here as errors.
func NewWorld(m *Tilemap, levelIndex int) (*World, error) {
	w := &World{Map: m, LevelIndex: levelIndex}
	if err := w.reset(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) newID() int {
	id := w.nextID
	w.nextID++
	return id
}

// reset re-scans the things array and re-instantiates every dynamic entity.
// Door axes and push-wall captured tiles are carried over from the previous
// instances, keyed by originating cell: the grid cell a push-wall claimed
// stays floor forever, so its identity cannot be re-derived from the grid.
func (w *World) reset() error {
	prevDoors := w.Doors
	prevPushwalls := w.Pushwalls

	// door axes: reuse, or infer from the grid while its flanking walls are
	// still intact (push-wall spawns below may rewrite them)
	axes := make(map[[2]int]geom.Vector)
	for i := range prevDoors {
		x, y := prevDoors[i].TileCoords()
		axes[[2]int{x, y}] = prevDoors[i].Direction
	}
	for y := 0; y < w.Map.Height(); y++ {
		for x := 0; x < w.Map.Width; x++ {
			if w.Map.Thing(x, y) != ThingDoor {
				continue
			}
			if _, ok := axes[[2]int{x, y}]; ok {
				continue
			}
			axis, err := w.Map.doorAxis(x, y)
			if err != nil {
				return fmt.Errorf("spawn door: %w", err)
			}
			axes[[2]int{x, y}] = axis
		}
	}

	captured := make(map[[2]int]Tile)
	for i := range prevPushwalls {
		p := &prevPushwalls[i]
		captured[[2]int{p.OriginX, p.OriginY}] = p.Tile
	}

	w.Monsters = nil
	w.Doors = nil
	w.Pushwalls = nil
	w.Effects = nil
	w.levelEnded = false
	w.nextID = 0

	for y := 0; y < w.Map.Height(); y++ {
		for x := 0; x < w.Map.Width; x++ {
			switch w.Map.Thing(x, y) {
			case ThingPlayer:
				w.Player = NewPlayer(w.newID(), x, y)
			case ThingMonster:
				w.Monsters = append(w.Monsters, NewMonster(w.newID(), x, y))
			case ThingDoor:
				w.Doors = append(w.Doors, NewDoor(x, y, axes[[2]int{x, y}]))
			case ThingPushwall:
				tile, ok := captured[[2]int{x, y}]
				if !ok {
					if cell := w.Map.Tile(x, y); cell.IsSolid() {
						// claim the wall cell: capture its identity and open
						// the grid underneath
						tile = cell
						w.Map.SetTile(x, y, TileFloor)
					} else {
						tile = TileWall
					}
				}
				w.Pushwalls = append(w.Pushwalls, NewPushwall(w.newID(), x, y, tile))
			}
		}
	}
	return nil
}

// Update advances the simulation by one fixed sub-step and returns the
// side-effect requests it produced. Each actor is updated through an explicit
// copy-out/mutate/commit-back so a routine mutating the world never also
// holds a live mutable view of itself inside it.
func (w *World) Update(timeStep float64, input Input) []Action {
	w.actions = w.actions[:0]

	live := w.Effects[:0]
	for i := range w.Effects {
		e := w.Effects[i]
		e.Time += timeStep
		if !e.IsComplete() {
			live = append(live, e)
		}
	}
	w.Effects = live

	// a reset is deferred to the start of a sub-step (after the death effect
	// has run out) so no in-flight step ever sees it
	if w.Player.IsDead() {
		if len(w.Effects) == 0 {
			// cannot fail: axes and captured tiles carry over from the
			// instances being replaced
			_ = w.reset()
			w.Effects = append(w.Effects, NewEffect(EffectFadeIn, color.RGBA{R: 255, A: 255}, 0.5))
		}
		return w.actions
	}

	player := w.Player
	player.Update(timeStep, input, w)
	player.Position = player.Position.Add(player.Velocity.Mul(timeStep))
	w.Player = player

	for i := range w.Monsters {
		monster := w.Monsters[i]
		monster.Update(timeStep, w)
		monster.Position = monster.Position.Add(monster.Velocity.Mul(timeStep))
		w.Monsters[i] = monster
	}

	player = w.Player
	if !player.IsDead() {
		w.Resolve(&player)
		w.Player = player
		if w.IsStuck(&w.Player) {
			w.hurtPlayer(stuckDamagePerSecond * timeStep)
		}
	}
	for i := range w.Monsters {
		if w.Monsters[i].IsDead() {
			continue
		}
		monster := w.Monsters[i]
		w.Resolve(&monster)
		w.Monsters[i] = monster
		if w.IsStuck(&w.Monsters[i]) {
			w.hurtMonster(i, stuckDamagePerSecond*timeStep)
		}
	}

	for i := range w.Doors {
		door := w.Doors[i]
		door.Update(timeStep, w)
		w.Doors[i] = door
	}
	for i := range w.Pushwalls {
		pushwall := w.Pushwalls[i]
		pushwall.Update(timeStep, w)
		w.Pushwalls[i] = pushwall
	}

	if !w.levelEnded {
		x, y := w.Player.TileCoords()
		if w.Map.Tile(x, y) == TileFloorElevator {
			w.levelEnded = true
			w.Effects = append(w.Effects, NewEffect(EffectFadeOut, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.5))
			w.actions = append(w.actions, LoadLevel{Index: w.LevelIndex + 1})
		}
	}

	return w.actions
}

func (w *World) playSound(s Sound, at geom.Vector) {
	w.actions = append(w.actions, PlaySound{Sound: s, Position: at})
}

func (w *World) hurtPlayer(damage float64) {
	if w.Player.IsDead() {
		return
	}
	w.Player.Health -= damage
	w.Effects = append(w.Effects, NewEffect(EffectFadeIn, color.RGBA{R: 255, A: 191}, 0.2))
	if w.Player.IsDead() {
		w.Player.Velocity = geom.Vector{}
		w.playSound(SoundPlayerDeath, w.Player.Position)
		w.Effects = append(w.Effects, NewEffect(EffectFizzleOut, color.RGBA{R: 255, A: 255}, 2))
	}
}

func (w *World) hurtMonster(index int, damage float64) {
	m := &w.Monsters[index]
	if m.IsDead() {
		return
	}
	m.Health -= damage
	m.reactToDamage()
	if m.IsDead() {
		w.playSound(SoundMonsterDeath, m.Position)
	} else {
		w.playSound(SoundMonsterHit, m.Position)
	}
}

// Sprites collects every visible dynamic billboard for a frame: door panels
// (flipped toward the viewer, they are two-sided), push-wall faces (outward
// normals, back faces left for the renderer to cull) and monster sprites
// aligned to the camera plane.
func (w *World) Sprites(viewpoint, plane geom.Vector) []geom.Billboard {
	sprites := make([]geom.Billboard, 0, len(w.Doors)+len(w.Pushwalls)*4+len(w.Monsters))
	for i := range w.Doors {
		sprites = append(sprites, faceToward(w.Doors[i].Billboard(), viewpoint))
	}
	for i := range w.Pushwalls {
		sprites = append(sprites, w.Pushwalls[i].Billboards()...)
	}
	for i := range w.Monsters {
		sprites = append(sprites, faceToward(w.Monsters[i].Billboard(plane), viewpoint))
	}
	return sprites
}

func faceToward(b geom.Billboard, viewpoint geom.Vector) geom.Billboard {
	if b.IsFacing(viewpoint) {
		return b
	}
	return geom.Billboard{
		Start:     b.End(),
		Direction: b.Direction.Mul(-1),
		Length:    b.Length,
		Texture:   b.Texture,
	}
}

// IsDoorCell reports whether a door is anchored at the given cell; the
// renderer swaps in the doorjamb texture for walls seen past one.
func (w *World) IsDoorCell(x, y int) bool {
	return w.doorAt(x, y) != nil
}

// Snapshot deep-copies the world for the renderer, which must stay a pure
// function of an immutable view while later sub-steps mutate the original.
func (w *World) Snapshot() (*World, error) {
	snap := &World{}
	if err := copier.CopyWithOption(snap, w, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("snapshot world: %w", err)
	}
	return snap, nil
}

// RequiredTextures is every semantic texture id the renderer can ask for.
// The texture source is validated against it once at startup: a missing
// texture is a content bug, not a per-frame condition.
func RequiredTextures() []geom.Texture {
	return []geom.Texture{
		"wall", "wall-dark",
		"crack-wall", "crack-wall-dark",
		"panel-wall", "panel-wall-dark",
		"floor", "scuffed-floor", "ceiling",
		"elevator-floor", "elevator-ceiling",
		"door", "door-dark", "doorjamb", "doorjamb-dark",
		"monster-idle", "monster-walk1", "monster-walk2",
		"monster-scratch1", "monster-scratch2", "monster-hurt", "monster-dead",
		"pistol", "pistol-fire",
	}
}
