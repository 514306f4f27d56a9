// collision.go
package world

import (
	"math"

	"retrograde/geom"
)

// resolveAttempts bounds how many times Resolve may push an actor per
// sub-step. Looping until clear risks never terminating when geometry is
// actively closing in on the actor (a door or push-wall crushing it); brief
// interpenetration is preferable to a frozen simulation.
const resolveAttempts = 10

// gridIntersection returns the largest minimum translation vector between the
// rectangle and any overlapping solid tile, or nil when clear.
func (w *World) gridIntersection(rect geom.Rect) *geom.Vector {
	minX, maxX := int(math.Floor(rect.Min.X)), int(math.Floor(rect.Max.X))
	minY, maxY := int(math.Floor(rect.Min.Y)), int(math.Floor(rect.Max.Y))

	var largest *geom.Vector
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !w.Map.Tile(x, y).IsSolid() {
				continue
			}
			tileRect := geom.NewRect(float64(x), float64(y), float64(x)+1, float64(y)+1)
			mtv := rect.Intersection(tileRect)
			if mtv == nil {
				continue
			}
			if largest == nil || mtv.LengthSquared() > largest.LengthSquared() {
				largest = mtv
			}
		}
	}
	return largest
}

// Intersection finds the minimum translation vector between the actor and the
// nearest overlapping obstacle, checking the static grid first, then doors,
// push-walls and other actors. Self-matches are excluded by spawn identity,
// not by value, so a push-wall scanning the push-wall list never collides
// with itself. Returns nil when the actor is clear.
func (w *World) Intersection(a Actor) *geom.Vector {
	rect := a.Rect()

	if mtv := w.gridIntersection(rect); mtv != nil {
		return mtv
	}
	for i := range w.Doors {
		if w.Doors[i].State == DoorOpen {
			continue
		}
		if mtv := rect.Intersection(w.Doors[i].Rect()); mtv != nil {
			return mtv
		}
	}
	for i := range w.Pushwalls {
		if w.Pushwalls[i].Id == a.ID() {
			continue
		}
		if mtv := rect.Intersection(w.Pushwalls[i].Rect()); mtv != nil {
			return mtv
		}
	}
	if w.Player.Id != a.ID() && !w.Player.IsDead() {
		if mtv := rect.Intersection(w.Player.Rect()); mtv != nil {
			return mtv
		}
	}
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if m.Id == a.ID() || m.IsDead() {
			continue
		}
		if mtv := rect.Intersection(m.Rect()); mtv != nil {
			return mtv
		}
	}
	return nil
}

// geometryIntersection is Intersection restricted to level geometry (tiles,
// doors, other push-walls). A sliding push-wall stops on geometry but plows
// through actors, which free themselves with their own Resolve.
func (w *World) geometryIntersection(a Actor) *geom.Vector {
	rect := a.Rect()
	if mtv := w.gridIntersection(rect); mtv != nil {
		return mtv
	}
	for i := range w.Doors {
		if w.Doors[i].State == DoorOpen {
			continue
		}
		if mtv := rect.Intersection(w.Doors[i].Rect()); mtv != nil {
			return mtv
		}
	}
	for i := range w.Pushwalls {
		if w.Pushwalls[i].Id == a.ID() {
			continue
		}
		if mtv := rect.Intersection(w.Pushwalls[i].Rect()); mtv != nil {
			return mtv
		}
	}
	return nil
}

// Resolve drives the actor out of overlap by repeatedly subtracting the
// minimum translation vector, giving up after a fixed number of attempts.
func (w *World) Resolve(a Actor) {
	for i := 0; i < resolveAttempts; i++ {
		mtv := w.Intersection(a)
		if mtv == nil {
			return
		}
		a.SetPos(a.Pos().Sub(*mtv))
	}
}

// IsStuck reports whether the actor's center has ended up somewhere no amount
// of resolution can legally free it from: outside the map, inside a solid
// tile, or inside a push-wall's footprint. Geometry can legitimately trap an
// actor, so this is an expected gameplay condition handled with incremental
// damage, not a failure.
func (w *World) IsStuck(a Actor) bool {
	pos := a.Pos()
	if pos.X < 0 || pos.X >= float64(w.Map.Width) || pos.Y < 0 || pos.Y >= float64(w.Map.Height()) {
		return true
	}
	if w.Map.Tile(int(math.Floor(pos.X)), int(math.Floor(pos.Y))).IsSolid() {
		return true
	}
	for i := range w.Pushwalls {
		if w.Pushwalls[i].Id == a.ID() {
			continue
		}
		if w.Pushwalls[i].Rect().Contains(pos) {
			return true
		}
	}
	return false
}

// touchesLivingActor reports whether any living actor's rectangle overlaps
// the given rectangle. Doors use it as their opening trigger.
func (w *World) touchesLivingActor(rect geom.Rect) bool {
	if !w.Player.IsDead() && rect.Intersection(w.Player.Rect()) != nil {
		return true
	}
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if m.IsDead() {
			continue
		}
		if rect.Intersection(m.Rect()) != nil {
			return true
		}
	}
	return false
}

// livingActorIntersection returns the first living actor's minimum
// translation vector against the rectangle, excluding the given identity.
// Push-walls use it to detect a push and read its direction.
func (w *World) livingActorIntersection(rect geom.Rect, excludeID int) *geom.Vector {
	if w.Player.Id != excludeID && !w.Player.IsDead() {
		if mtv := w.Player.Rect().Intersection(rect); mtv != nil {
			return mtv
		}
	}
	for i := range w.Monsters {
		m := &w.Monsters[i]
		if m.Id == excludeID || m.IsDead() {
			continue
		}
		if mtv := m.Rect().Intersection(rect); mtv != nil {
			return mtv
		}
	}
	return nil
}

// pushwallAt reports whether a push-wall other than the excluded one
// currently occupies the given cell.
func (w *World) pushwallAt(x, y, excludeID int) bool {
	cell := geom.NewRect(float64(x), float64(y), float64(x)+1, float64(y)+1)
	for i := range w.Pushwalls {
		p := &w.Pushwalls[i]
		if p.Id == excludeID {
			continue
		}
		if cell.Contains(p.Position) {
			return true
		}
	}
	return false
}

// HitTest returns the distance from the ray origin to the nearest obstruction
// along the ray: the static grid, door panels and push-wall faces all count.
// Weapon fire and monster line of sight share it.
func (w *World) HitTest(ray geom.Ray) float64 {
	distance := w.Map.Cast(ray).Distance

	test := func(b geom.Billboard) {
		hit := b.HitTest(ray)
		if hit == nil {
			return
		}
		if d := hit.Sub(ray.Origin).Length(); d < distance {
			distance = d
		}
	}
	for i := range w.Doors {
		test(w.Doors[i].Billboard())
	}
	for i := range w.Pushwalls {
		for _, b := range w.Pushwalls[i].Billboards() {
			test(b)
		}
	}
	return distance
}
