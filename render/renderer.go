// renderer.go
package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"retrograde/geom"
	"retrograde/world"
)

// Renderer paints a world snapshot into a pixel buffer, one screen column at
// a time. It never mutates the world; given the same snapshot and textures it
// produces the same frame.
type Renderer struct {
	width, height int
	planeLength   float64 // tan(fov/2), the view plane half-width per unit focal length
	buf           *Buffer
	fizzle        *Fizzle
	hits          []columnHit // scratch, reused across columns
}

type columnHit struct {
	billboard geom.Billboard
	point     geom.Vector
	perp      float64
}

// NewRenderer sizes the output buffer and derives the view plane from the
// horizontal field of view in radians. The fizzle seed fixes the dissolve
// order for the renderer's lifetime.
func NewRenderer(width, height int, fov float64, fizzleSeed int64) *Renderer {
	return &Renderer{
		width:       width,
		height:      height,
		planeLength: math.Tan(fov / 2),
		buf:         NewBuffer(width, height),
		fizzle:      NewFizzle(width*height, fizzleSeed),
	}
}

// Draw renders one frame. The returned buffer is owned by the renderer and
// valid until the next Draw call.
func (r *Renderer) Draw(w *world.World, textures Source) *Buffer {
	pos := w.Player.Position
	dir := w.Player.Direction
	plane := dir.Orthogonal().Mul(r.planeLength)

	sprites := w.Sprites(pos, dir.Orthogonal())

	for x := 0; x < r.width; x++ {
		cameraX := 2*float64(x)/float64(r.width) - 1
		rayDir := dir.Add(plane.Mul(cameraX))
		ray := geom.Ray{Origin: pos, Direction: rayDir}

		hit := w.Map.Cast(ray)
		// perpendicular distance, not euclidean, to avoid fisheye
		perp := hit.Point.Sub(pos).Dot(dir)
		r.drawWall(w, textures, x, ray, hit, perp)
		r.drawFloorAndCeiling(w, textures, x, rayDir, pos, perp)
		r.drawSprites(textures, sprites, x, ray, pos, dir, perp)
	}

	r.drawWeapon(w, textures)
	r.drawEffects(w)
	return r.buf
}

func (r *Renderer) sliceBounds(perp float64) (lineHeight, drawStart, drawEnd int) {
	lineHeight = int(float64(r.height) / perp)
	// rounding down here keeps ceiling, wall and floor spans tiling the
	// column without a gap
	drawStart = (r.height - lineHeight) / 2
	drawEnd = drawStart + lineHeight
	return
}

func (r *Renderer) drawWall(w *world.World, textures Source, x int, ray geom.Ray, hit world.Hit, perp float64) {
	tile := w.Map.Tile(hit.TileX, hit.TileY)
	lit, dark := tile.Textures()

	// a wall face seen past a door cell gets the jamb texture
	jambX, jambY := hit.TileX, hit.TileY
	if hit.Axis == world.AxisX {
		if ray.Direction.X > 0 {
			jambX--
		} else {
			jambX++
		}
	} else {
		if ray.Direction.Y > 0 {
			jambY--
		} else {
			jambY++
		}
	}
	if w.IsDoorCell(jambX, jambY) {
		lit, dark = "doorjamb", "doorjamb-dark"
	}

	id := lit
	var u float64
	if hit.Axis == world.AxisX {
		u = hit.Point.Y - math.Floor(hit.Point.Y)
	} else {
		id = dark
		u = hit.Point.X - math.Floor(hit.Point.X)
	}
	if u < 0 {
		u = 0
	}

	img := textures.Texture(id)
	tw := img.Bounds().Dx()
	th := img.Bounds().Dy()
	texX := int(u * float64(tw))
	if texX >= tw {
		texX = tw - 1
	}

	lineHeight, drawStart, drawEnd := r.sliceBounds(perp)
	y0 := clampInt(drawStart, 0, r.height)
	y1 := clampInt(drawEnd, 0, r.height)
	for y := y0; y < y1; y++ {
		v := float64(y-drawStart) / float64(lineHeight)
		texY := clampInt(int(v*float64(th)), 0, th-1)
		r.buf.Set(x, y, img.RGBAAt(texX, texY))
	}
}

func (r *Renderer) drawFloorAndCeiling(w *world.World, textures Source, x int, rayDir, pos geom.Vector, perp float64) {
	_, drawStart, drawEnd := r.sliceBounds(perp)

	// texture lookups are cached per tile across consecutive rows; a lookup
	// per pixel dominates the frame cost otherwise
	cacheX, cacheY := math.MinInt32, math.MinInt32
	var floorImg, ceilingImg *imageRGBA

	for y := maxInt(drawEnd, r.height/2+1); y < r.height; y++ {
		// inverse-project the row back to a world distance along the ray
		rowDistance := float64(r.height) / 2 / (float64(y) - float64(r.height)/2)
		sample := pos.Add(rayDir.Mul(rowDistance))

		tileX, tileY := int(math.Floor(sample.X)), int(math.Floor(sample.Y))
		if tileX != cacheX || tileY != cacheY {
			floorTex, ceilingTex := w.Map.Tile(tileX, tileY).Textures()
			floorImg = wrapRGBA(textures.Texture(floorTex))
			ceilingImg = wrapRGBA(textures.Texture(ceilingTex))
			cacheX, cacheY = tileX, tileY
		}

		fu := sample.X - float64(tileX)
		fv := sample.Y - float64(tileY)
		r.buf.Set(x, y, floorImg.sample(fu, fv))
		// the mirrored ceiling row can land on the wall slice's top pixel
		// when height minus line height is odd; the wall keeps it
		if cy := r.height - 1 - y; cy < drawStart {
			r.buf.Set(x, cy, ceilingImg.sample(fu, fv))
		}
	}
}

func (r *Renderer) drawSprites(textures Source, sprites []geom.Billboard, x int, ray geom.Ray, pos, dir geom.Vector, wallPerp float64) {
	const nearLimit = 0.05

	r.hits = r.hits[:0]
	for _, b := range sprites {
		if !b.IsFacing(pos) {
			continue
		}
		point := b.HitTest(ray)
		if point == nil {
			continue
		}
		perp := point.Sub(pos).Dot(dir)
		if perp <= nearLimit || perp >= wallPerp {
			continue
		}
		r.hits = append(r.hits, columnHit{billboard: b, point: *point, perp: perp})
	}

	// farthest first so nearer billboards overwrite
	sort.Slice(r.hits, func(i, j int) bool { return r.hits[i].perp > r.hits[j].perp })

	for _, h := range r.hits {
		img := textures.Texture(h.billboard.Texture)
		tw := img.Bounds().Dx()
		th := img.Bounds().Dy()

		u := h.point.Sub(h.billboard.Start).Length() / h.billboard.Length
		texX := clampInt(int(u*float64(tw)), 0, tw-1)

		lineHeight, drawStart, drawEnd := r.sliceBounds(h.perp)
		y0 := clampInt(drawStart, 0, r.height)
		y1 := clampInt(drawEnd, 0, r.height)
		for y := y0; y < y1; y++ {
			v := float64(y-drawStart) / float64(lineHeight)
			texY := clampInt(int(v*float64(th)), 0, th-1)
			c := img.RGBAAt(texX, texY)
			if c.A == 0 {
				continue
			}
			r.buf.Set(x, y, c)
		}
	}
}

// drawWeapon overlays the player's weapon sprite, scaled to the screen and
// bottom-centered.
func (r *Renderer) drawWeapon(w *world.World, textures Source) {
	img := textures.Texture(w.Player.WeaponTexture())
	tw := img.Bounds().Dx()
	th := img.Bounds().Dy()

	size := r.height * 3 / 4
	x0 := (r.width - size) / 2
	y0 := r.height - size
	for sy := 0; sy < size; sy++ {
		texY := clampInt(sy*th/size, 0, th-1)
		for sx := 0; sx < size; sx++ {
			texX := clampInt(sx*tw/size, 0, tw-1)
			c := img.RGBAAt(texX, texY)
			if c.A == 0 {
				continue
			}
			r.buf.Set(x0+sx, y0+sy, c)
		}
	}
}

func (r *Renderer) drawEffects(w *world.World) {
	for i := range w.Effects {
		e := &w.Effects[i]
		switch e.Type {
		case world.EffectFadeIn:
			r.tint(e.Color, (1-e.Progress())*float64(e.Color.A)/255)
		case world.EffectFadeOut:
			r.tint(e.Color, e.Progress()*float64(e.Color.A)/255)
		case world.EffectFizzleOut:
			progress := e.Progress()
			c := color.RGBA{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: 255}
			for p := 0; p < r.width*r.height; p++ {
				if r.fizzle.Covers(p, progress) {
					r.buf.Set(p%r.width, p/r.width, c)
				}
			}
		}
	}
}

func (r *Renderer) tint(c color.RGBA, opacity float64) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.buf.Blend(x, y, c, opacity)
		}
	}
}

// imageRGBA wraps a texture with cached bounds for fractional sampling.
type imageRGBA struct {
	img  *image.RGBA
	w, h int
}

func wrapRGBA(img *image.RGBA) *imageRGBA {
	return &imageRGBA{img: img, w: img.Bounds().Dx(), h: img.Bounds().Dy()}
}

func (s *imageRGBA) sample(u, v float64) color.RGBA {
	x := clampInt(int(u*float64(s.w)), 0, s.w-1)
	y := clampInt(int(v*float64(s.h)), 0, s.h-1)
	return s.img.RGBAAt(x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
