// Package postprocess works on finished frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces img to w×h with CatmullRom filtering. Filtering runs on
// premultiplied colour so transparent texels do not bleed black into edges.
// img is returned unchanged when it is already no larger than the target.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	src := premultiply(img)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for i := 0; i < b.Dx()*4; i += 4 {
			a := float64(row[i+3]) / 255
			for c := range 3 {
				dst[i+c] = uint8(float64(row[i+c])*a + 0.5)
			}
			dst[i+3] = row[i+3]
		}
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		out.Pix[i+3] = a
		if a <= 1 {
			continue // nothing worth recovering
		}
		inv := 255 / float64(a)
		for c := range 3 {
			out.Pix[i+c] = clamp8(float64(img.Pix[i+c]) * inv)
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	return uint8(min(max(v, 0), 255) + 0.5)
}
