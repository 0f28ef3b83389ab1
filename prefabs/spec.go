package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilewalk/common"
	"github.com/milk9111/tilewalk/component"
)

// Spec file names.
const (
	PlayerSpecFile = "player.yaml"
	CameraSpecFile = "camera.yaml"
	WorldSpecFile  = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec[T](filename, data)
}

// ParseSpec decodes YAML data; filename only labels errors.
func ParseSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	Size       float64       `yaml:"size"`
	MoveSpeed  float64       `yaml:"move_speed"`
	Invincible bool          `yaml:"invincible"`
	Sprite     SpriteSpec    `yaml:"sprite"`
	Animation  AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CameraSpec sizes the canvas and the view into the world.
type CameraSpec struct {
	Name             string  `yaml:"name"`
	CanvasWidth      float64 `yaml:"canvas_width"`
	CanvasHeight     float64 `yaml:"canvas_height"`
	BaseScale        float64 `yaml:"base_scale"`
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
	OffsetX          float64 `yaml:"offset_x"`
	OffsetY          float64 `yaml:"offset_y"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DPR returns the device pixel ratio, at least 1.
func (c *CameraSpec) DPR() float64 {
	if c.DevicePixelRatio < 1 {
		return 1
	}
	return c.DevicePixelRatio
}

// CanvasSize returns the canvas in device pixels.
func (c *CameraSpec) CanvasSize() (float64, float64) {
	w, h := c.CanvasWidth, c.CanvasHeight
	if w <= 0 {
		w = common.BaseWidth
	}
	if h <= 0 {
		h = common.BaseHeight
	}
	return w * c.DPR(), h * c.DPR()
}

// SceneScale is the world-to-canvas zoom: the base scale plus the device
// pixel ratio, so sharper screens zoom in further.
func (c *CameraSpec) SceneScale() float64 {
	base := c.BaseScale
	if base <= 0 {
		base = common.BaseScale
	}
	return base + c.DPR()
}

// ViewSize returns how much of the world fits on the canvas.
func (c *CameraSpec) ViewSize() (float64, float64) {
	w, h := c.CanvasSize()
	scale := c.SceneScale()
	return w / scale, h / scale
}

type WorldSpec struct {
	Name  string        `yaml:"name"`
	Level string        `yaml:"level"`
	Debug DebugDrawSpec `yaml:"debug"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DebugDrawSpec styles the collision overlay.
type DebugDrawSpec struct {
	ObstacleColor *YAMLColor `yaml:"obstacle_color"`
}

type SpriteSpec struct {
	Image      string  `yaml:"image"`
	CropOffset float64 `yaml:"crop_offset"`
}

type AnimationSpec struct {
	FrameInterval float64                     `yaml:"frame_interval"`
	Defs          map[string]AnimationDefSpec `yaml:"defs"`
}

// AnimationDefSpec places one clip on the sheet. Frames run downwards from
// (X, Y).
type AnimationDefSpec struct {
	X          int `yaml:"x"`
	Y          int `yaml:"y"`
	FrameW     int `yaml:"frame_w"`
	FrameH     int `yaml:"frame_h"`
	FrameCount int `yaml:"frame_count"`
}

// ClipSet overlays the defs on the default clip table. Clips not named keep
// their defaults.
func (a AnimationSpec) ClipSet() (component.ClipSet, error) {
	clips := component.DefaultClips
	for name, def := range a.Defs {
		clip, err := component.ParseClip(name)
		if err != nil {
			return component.ClipSet{}, fmt.Errorf("prefabs: animation defs: %w", err)
		}
		if def.FrameW <= 0 || def.FrameH <= 0 || def.FrameCount <= 0 {
			return component.ClipSet{}, fmt.Errorf("prefabs: animation %s: frame size and count must be positive", name)
		}
		clips[clip] = component.ClipDef{
			X:      def.X,
			Y:      def.Y,
			Width:  def.FrameW,
			Height: def.FrameH,
			Frames: def.FrameCount,
		}
	}
	return clips, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
