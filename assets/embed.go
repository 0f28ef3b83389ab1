package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var AssetsFS embed.FS

// Sheet names shipped with the game.
const (
	PlayerSheet     = "player.png"
	TerrainSheet    = "terrain.png"
	DecorationSheet = "decorations.png"
)

// FS returns the embedded assets. When dir is set, files found there take
// precedence over the embedded copies.
func FS(dir string) fs.FS {
	if dir == "" {
		return AssetsFS
	}
	return overlayFS{disk: os.DirFS(dir), base: AssetsFS}
}

type overlayFS struct {
	disk fs.FS
	base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.disk.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.Open(name)
}

// DecodeImage reads and decodes the image at an assets-relative path.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	return img, nil
}

// LoadImage loads an asset as an *ebiten.Image.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, err := DecodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := strings.TrimPrefix(filepath.ToSlash(path), "./")
	return strings.TrimPrefix(s, "assets/")
}
