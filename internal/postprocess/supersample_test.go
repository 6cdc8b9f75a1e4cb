package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	img := fill(8, 6, color.NRGBA{R: 10, A: 255})
	assert.Same(t, img, Downsample(img, 8, 6))
	assert.Same(t, img, Downsample(img, 16, 16))
}

func TestDownsampleUniform(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Downsample(fill(16, 12, c), 8, 6)

	assert.Equal(t, image.Rect(0, 0, 8, 6), out.Bounds())
	for y := range 6 {
		for x := range 8 {
			got := out.NRGBAAt(x, y)
			assert.InDelta(t, c.R, got.R, 1)
			assert.InDelta(t, c.G, got.G, 1)
			assert.InDelta(t, c.B, got.B, 1)
			assert.Equal(t, uint8(255), got.A)
		}
	}
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	out := Downsample(img, 4, 4)

	edge := out.NRGBAAt(1, 2)
	assert.Greater(t, edge.A, uint8(128))
	if edge.A > 128 {
		assert.GreaterOrEqual(t, edge.R, uint8(250), "transparent black must not bleed in")
	}
}
