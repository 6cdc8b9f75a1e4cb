// Package texture decodes image files into raster FrameBuffers and caches
// them by name.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"softraster/internal/raster"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("texture: empty image")

// ErrUnsupported is returned for file extensions with no registered decoder.
var ErrUnsupported = errors.New("texture: unsupported format")

// extensions lists the accepted file types. Formats that carry alpha rank
// above those that do not.
var extensions = map[string]int{
	".png":  2,
	".tga":  2,
	".webp": 2,
	".jpg":  1,
	".jpeg": 1,
	".bmp":  1,
}

// Supported reports whether path has an extension Load accepts.
func Supported(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads and decodes an image file. A failure never yields a partial
// buffer.
func Load(path string) (*raster.FrameBuffer, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	fb, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return fb, nil
}

// Decode reads any registered image format from r.
func Decode(r io.Reader) (*raster.FrameBuffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return raster.FromImage(img)
}
