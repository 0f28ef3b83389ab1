package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"time"
)

// PrefabsFS holds the tuning files the game ships with.
//
//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is searched for edited copies of the tuning files before falling back
// to PrefabsFS. It is relative to the working directory and is also what the
// watcher observes.
var Dir = "prefabs"

// Load reads a tuning file by name. Directories in name are ignored.
func Load(name string) ([]byte, error) {
	base := specBase(name)
	if path, _, ok := Override(base); ok {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(base)
}

// Override reports the on-disk copy of name in Dir and when it last changed.
// ok is false when the embedded copy is in use.
func Override(name string) (path string, modified time.Time, ok bool) {
	path = filepath.Join(Dir, specBase(name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", time.Time{}, false
	}
	return path, info.ModTime(), true
}

func specBase(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Base(filepath.FromSlash(name))
}
