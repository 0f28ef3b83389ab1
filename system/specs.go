package system

import (
	"fmt"

	"github.com/milk9111/tilewalk/prefabs"
)

// Specs bundles the tuning files a world is built from.
type Specs struct {
	Player *prefabs.PlayerSpec
	Camera *prefabs.CameraSpec
	World  *prefabs.WorldSpec
}

// LoadSpecs reads every spec file.
func LoadSpecs() (Specs, error) {
	var s Specs
	var err error
	if s.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return Specs{}, err
	}
	if s.Camera, err = prefabs.LoadCameraSpec(); err != nil {
		return Specs{}, err
	}
	if s.World, err = prefabs.LoadWorldSpec(); err != nil {
		return Specs{}, err
	}
	return s, nil
}

// Reload re-reads the named spec files and returns the updated set. Names
// that are not spec files are ignored. On error the receiver is returned
// unchanged.
func (s Specs) Reload(names ...string) (Specs, error) {
	next := s
	for _, name := range names {
		var err error
		switch name {
		case prefabs.PlayerSpecFile:
			next.Player, err = prefabs.LoadPlayerSpec()
		case prefabs.CameraSpecFile:
			dpr := 0.0
			if s.Camera != nil {
				dpr = s.Camera.DevicePixelRatio
			}
			next.Camera, err = prefabs.LoadCameraSpec()
			if err == nil && next.Camera.DevicePixelRatio <= 0 {
				next.Camera.DevicePixelRatio = dpr
			}
		case prefabs.WorldSpecFile:
			next.World, err = prefabs.LoadWorldSpec()
		default:
			continue
		}
		if err != nil {
			return s, fmt.Errorf("system: reload %s: %w", name, err)
		}
	}
	return next, nil
}

func (s Specs) withDefaults() Specs {
	if s.Player == nil {
		s.Player = &prefabs.PlayerSpec{}
	}
	if s.Camera == nil {
		s.Camera = &prefabs.CameraSpec{}
	}
	if s.World == nil {
		s.World = &prefabs.WorldSpec{}
	}
	return s
}
