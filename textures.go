// textures.go
package main

import (
	"image"
	"image/color"

	"retrograde/geom"
	"retrograde/render"
	"retrograde/world"
)

// Placeholder art: every semantic texture the world names is generated
// procedurally, so the repo runs without binary assets. The texture source
// contract stays the same if real art is dropped in later.

const texSize = 64

type textureMap map[geom.Texture]*image.RGBA

func (t textureMap) Texture(id geom.Texture) *image.RGBA {
	return t[id]
}

func buildTextures() (render.Source, error) {
	t := textureMap{}

	wall := color.RGBA{R: 96, G: 96, B: 112, A: 255}
	t["wall"] = brickTexture(wall, 1)
	t["wall-dark"] = brickTexture(wall, 0.6)

	crack := color.RGBA{R: 112, G: 96, B: 80, A: 255}
	t["crack-wall"] = crackedTexture(crack, 1)
	t["crack-wall-dark"] = crackedTexture(crack, 0.6)

	panel := color.RGBA{R: 80, G: 112, B: 96, A: 255}
	t["panel-wall"] = panelTexture(panel, 1)
	t["panel-wall-dark"] = panelTexture(panel, 0.6)

	t["floor"] = checkerTexture(color.RGBA{R: 70, G: 70, B: 70, A: 255}, color.RGBA{R: 60, G: 60, B: 60, A: 255})
	t["scuffed-floor"] = checkerTexture(color.RGBA{R: 74, G: 66, B: 58, A: 255}, color.RGBA{R: 58, G: 52, B: 46, A: 255})
	t["ceiling"] = checkerTexture(color.RGBA{R: 40, G: 40, B: 48, A: 255}, color.RGBA{R: 34, G: 34, B: 40, A: 255})
	t["elevator-floor"] = checkerTexture(color.RGBA{R: 110, G: 110, B: 120, A: 255}, color.RGBA{R: 90, G: 90, B: 100, A: 255})
	t["elevator-ceiling"] = checkerTexture(color.RGBA{R: 90, G: 90, B: 100, A: 255}, color.RGBA{R: 70, G: 70, B: 80, A: 255})

	door := color.RGBA{R: 60, G: 100, B: 140, A: 255}
	t["door"] = panelTexture(door, 1)
	t["door-dark"] = panelTexture(door, 0.6)
	t["doorjamb"] = stripeTexture(door, 1)
	t["doorjamb-dark"] = stripeTexture(door, 0.6)

	monster := color.RGBA{R: 160, G: 60, B: 60, A: 255}
	t["monster-idle"] = blobTexture(monster, 0.32)
	t["monster-walk1"] = blobTexture(monster, 0.3)
	t["monster-walk2"] = blobTexture(monster, 0.34)
	t["monster-scratch1"] = blobTexture(color.RGBA{R: 190, G: 70, B: 50, A: 255}, 0.36)
	t["monster-scratch2"] = blobTexture(color.RGBA{R: 190, G: 70, B: 50, A: 255}, 0.4)
	t["monster-hurt"] = blobTexture(color.RGBA{R: 220, G: 120, B: 120, A: 255}, 0.32)
	t["monster-dead"] = corpseTexture(color.RGBA{R: 110, G: 40, B: 40, A: 255})

	t["pistol"] = pistolTexture(false)
	t["pistol-fire"] = pistolTexture(true)

	if err := render.ValidateSource(t, world.RequiredTextures()); err != nil {
		return nil, err
	}
	return t, nil
}

func newTexture() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, texSize, texSize))
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func brickTexture(base color.RGBA, brightness float64) *image.RGBA {
	img := newTexture()
	brick := shade(base, brightness)
	mortar := shade(base, brightness*0.55)
	for y := 0; y < texSize; y++ {
		row := y / 16
		for x := 0; x < texSize; x++ {
			offset := 0
			if row%2 == 1 {
				offset = 16
			}
			c := brick
			if y%16 == 0 || (x+offset)%32 == 0 {
				c = mortar
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func crackedTexture(base color.RGBA, brightness float64) *image.RGBA {
	img := brickTexture(base, brightness)
	dark := shade(base, brightness*0.3)
	x := texSize / 2
	for y := 0; y < texSize; y++ {
		// jagged vertical crack
		if y%8 < 4 {
			x++
		} else {
			x--
		}
		img.SetRGBA(clampTex(x), y, dark)
		img.SetRGBA(clampTex(x+1), y, dark)
	}
	return img
}

func panelTexture(base color.RGBA, brightness float64) *image.RGBA {
	img := newTexture()
	face := shade(base, brightness)
	edge := shade(base, brightness*0.5)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			c := face
			if x < 4 || x >= texSize-4 || y < 4 || y >= texSize-4 {
				c = edge
			} else if (x == 20 || x == texSize-21) && y >= 12 && y < texSize-12 {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func stripeTexture(base color.RGBA, brightness float64) *image.RGBA {
	img := newTexture()
	a := shade(base, brightness*0.8)
	b := shade(base, brightness*0.5)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			if x/8%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

func checkerTexture(a, b color.RGBA) *image.RGBA {
	img := newTexture()
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// blobTexture draws a filled circle on a transparent background; radius is a
// fraction of the texture size.
func blobTexture(c color.RGBA, radius float64) *image.RGBA {
	img := newTexture()
	cx, cy := float64(texSize)/2, float64(texSize)*0.55
	r := radius * texSize
	outline := shade(c, 0.5)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := dx*dx + dy*dy
			switch {
			case d < (r-2)*(r-2):
				img.SetRGBA(x, y, c)
			case d < r*r:
				img.SetRGBA(x, y, outline)
			}
		}
	}
	return img
}

// corpseTexture is a flattened blob near the floor line.
func corpseTexture(c color.RGBA) *image.RGBA {
	img := newTexture()
	outline := shade(c, 0.5)
	cy := float64(texSize) * 0.85
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := (float64(x) - float64(texSize)/2) / 1.8
			dy := (float64(y) - cy) * 3
			d := dx*dx + dy*dy
			switch {
			case d < 100:
				img.SetRGBA(x, y, c)
			case d < 144:
				img.SetRGBA(x, y, outline)
			}
		}
	}
	return img
}

func pistolTexture(firing bool) *image.RGBA {
	img := newTexture()
	metal := color.RGBA{R: 70, G: 70, B: 78, A: 255}
	grip := color.RGBA{R: 90, G: 60, B: 40, A: 255}
	// barrel
	for y := 24; y < 34; y++ {
		for x := 26; x < 38; x++ {
			img.SetRGBA(x, y, metal)
		}
	}
	// grip below and to the right
	for y := 34; y < 56; y++ {
		for x := 30; x < 40; x++ {
			img.SetRGBA(x, y, grip)
		}
	}
	if firing {
		flash := color.RGBA{R: 255, G: 220, B: 80, A: 255}
		for y := 10; y < 24; y++ {
			for x := 28; x < 36; x++ {
				if (x+y)%2 == 0 {
					img.SetRGBA(x, y, flash)
				}
			}
		}
	}
	return img
}

func clampTex(v int) int {
	if v < 0 {
		return 0
	}
	if v >= texSize {
		return texSize - 1
	}
	return v
}
