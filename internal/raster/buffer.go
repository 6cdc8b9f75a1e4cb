package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"softraster/internal/mathutil"
)

// ErrInvalidSize is returned for buffers with a non-positive dimension.
var ErrInvalidSize = errors.New("raster: invalid buffer size")

// FrameBuffer holds the colour target as a flat slice for cache locality.
// Channels are stored as 8-bit and exchanged as 0..1 floats.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, row-major, len = W*H*4
}

// NewFrameBuffer allocates a transparent black W×H buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}, nil
}

// FromImage copies img into a new FrameBuffer.
func FromImage(img image.Image) (*FrameBuffer, error) {
	b := img.Bounds()
	fb, err := NewFrameBuffer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{Pix: fb.Pix, Stride: fb.Width * 4, Rect: image.Rect(0, 0, fb.Width, fb.Height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return fb, nil
}

// Image returns a copy of the buffer as an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// PutPixel writes c at (x, y). Out-of-range coordinates are ignored.
func (fb *FrameBuffer) PutPixel(x, y int, c mathutil.Vec4) {
	if !fb.InBounds(x, y) {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = clamp255(c[0] * 255)
	fb.Pix[i+1] = clamp255(c[1] * 255)
	fb.Pix[i+2] = clamp255(c[2] * 255)
	fb.Pix[i+3] = clamp255(c[3] * 255)
}

// GetPixel reads (x, y) back as 0..1 floats; zero outside the buffer.
func (fb *FrameBuffer) GetPixel(x, y int) mathutil.Vec4 {
	if !fb.InBounds(x, y) {
		return mathutil.Vec4{}
	}
	i := (y*fb.Width + x) * 4
	return mathutil.Vec4{
		float64(fb.Pix[i]) / 255,
		float64(fb.Pix[i+1]) / 255,
		float64(fb.Pix[i+2]) / 255,
		float64(fb.Pix[i+3]) / 255,
	}
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c mathutil.Vec4) {
	r, g, b, a := clamp255(c[0]*255), clamp255(c[1]*255), clamp255(c[2]*255), clamp255(c[3]*255)
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
		fb.Pix[i+3] = a
	}
}

// DepthBuffer stores one depth value per pixel. Larger values are closer to
// the camera; the caller fills it with 0 once per frame.
type DepthBuffer struct {
	Width  int
	Height int
	Data   []float64 // row-major, len = W*H
}

// NewDepthBuffer allocates a W×H buffer filled with 0.
func NewDepthBuffer(w, h int) (*DepthBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &DepthBuffer{Width: w, Height: h, Data: make([]float64, w*h)}, nil
}

// Fill sets every entry to v.
func (d *DepthBuffer) Fill(v float64) {
	for i := range d.Data {
		d.Data[i] = v
	}
}

// At returns the depth at (x, y). Coordinates must be in range.
func (d *DepthBuffer) At(x, y int) float64 {
	return d.Data[y*d.Width+x]
}

// Set stores v at (x, y). Coordinates must be in range.
func (d *DepthBuffer) Set(x, y int, v float64) {
	d.Data[y*d.Width+x] = v
}

func clamp255(v float64) uint8 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
