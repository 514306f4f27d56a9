// texture.go
package render

import (
	"fmt"
	"image"

	"retrograde/geom"
)

// Source maps a semantic texture id to its image. How images are decoded or
// stored is the provider's business; the renderer only samples them.
type Source interface {
	Texture(id geom.Texture) *image.RGBA
}

// ValidateSource checks every required texture up front. A missing texture is
// a content bug: failing at startup beats failing mid-frame, and silently
// substituting something would hide it.
func ValidateSource(src Source, required []geom.Texture) error {
	for _, id := range required {
		img := src.Texture(id)
		if img == nil {
			return fmt.Errorf("missing texture %q", id)
		}
		if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
			return fmt.Errorf("empty texture %q", id)
		}
	}
	return nil
}
