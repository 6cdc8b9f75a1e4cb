package texture

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths. When two files
// share a stem, the format with alpha wins.
type Index struct {
	entries map[string]string // stem → full path
}

// BuildIndex walks dir and its subdirectories for supported images.
func BuildIndex(dir string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("texture: index %s: not a directory", dir)
	}

	idx := &Index{entries: make(map[string]string)}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !Supported(path) {
			return nil
		}
		idx.add(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", dir, err)
	}
	return idx, nil
}

func (idx *Index) add(path string) {
	stem := stemOf(path)
	existing, ok := idx.entries[stem]
	if !ok || rank(path) > rank(existing) {
		idx.entries[stem] = path
	}
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes and extensions in name are ignored, so "models/Spot.JPG"
// finds spot.png.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	path, ok := idx.entries[stemOf(name)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func rank(path string) int {
	return extensions[strings.ToLower(filepath.Ext(path))]
}
