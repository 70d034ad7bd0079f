// Package imaging stretches wide images onto a square canvas.
package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"shotfix/internal/domain"
)

// Squish stretches src onto an H×H canvas, where H is the height of src.
// The canvas keeps the pixel type of src where that type can be drawn to.
func Squish(src image.Image, scaler domain.Scaler) image.Image {
	b := src.Bounds()
	side := b.Dy()
	dst := newCanvasLike(src, image.Rect(0, 0, side, side))
	interpolator(scaler).Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func interpolator(scaler domain.Scaler) draw.Interpolator {
	switch scaler {
	case domain.ScalerNearest:
		return draw.NearestNeighbor
	case domain.ScalerCatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// newCanvasLike allocates an empty image of the same concrete type as src.
// Decoders return types like *image.YCbCr that cannot be drawn into; those get RGBA.
func newCanvasLike(src image.Image, r image.Rectangle) draw.Image {
	switch s := src.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Paletted:
		return image.NewPaletted(r, append(color.Palette(nil), s.Palette...))
	default:
		return image.NewRGBA(r)
	}
}
