// buffer.go
package render

import "image/color"

// Buffer is a dense row-major RGBA pixel buffer, the renderer's only output.
// Pix is laid out exactly like image.RGBA's, so callers can hand it straight
// to a display surface.
type Buffer struct {
	Pix    []uint8
	Width  int
	Height int
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

func (b *Buffer) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 4
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Blend composites c over the existing pixel with the given opacity in
// [0, 1]. Simple alpha blending, no premultiplication.
func (b *Buffer) Blend(x, y int, c color.RGBA, opacity float64) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	i := (y*b.Width + x) * 4
	b.Pix[i] = mix(b.Pix[i], c.R, opacity)
	b.Pix[i+1] = mix(b.Pix[i+1], c.G, opacity)
	b.Pix[i+2] = mix(b.Pix[i+2], c.B, opacity)
	b.Pix[i+3] = 255
}

func (b *Buffer) Fill(c color.RGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
}

func mix(dst, src uint8, t float64) uint8 {
	return uint8(float64(dst)*(1-t) + float64(src)*t)
}
