package component

import (
	"errors"
	"fmt"
)

// ErrUnknownClip is returned by ParseClip for names outside the clip set.
var ErrUnknownClip = errors.New("component: unknown clip")

// Clip identifies one of the player's animations.
type Clip uint8

const (
	ClipIdle Clip = iota
	ClipWalkDown
	ClipWalkUp
	ClipWalkLeft
	ClipWalkRight

	clipCount
)

var clipNames = [clipCount]string{
	ClipIdle:      "idle",
	ClipWalkDown:  "walk_down",
	ClipWalkUp:    "walk_up",
	ClipWalkLeft:  "walk_left",
	ClipWalkRight: "walk_right",
}

func (c Clip) String() string {
	if c >= clipCount {
		return fmt.Sprintf("clip(%d)", uint8(c))
	}
	return clipNames[c]
}

// Next returns the following clip, wrapping back to idle.
func (c Clip) Next() Clip {
	return (c + 1) % clipCount
}

// ParseClip maps a clip name as written in prefab specs to a Clip.
func ParseClip(name string) (Clip, error) {
	for i, n := range clipNames {
		if n == name {
			return Clip(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClip, name)
}

// ClipDef describes where an animation lives on the sprite sheet. Frames are
// stacked vertically starting at (X, Y).
type ClipDef struct {
	X, Y          int
	Width, Height int
	Frames        int
}

// ClipSet is an immutable table of clip definitions. It is passed by value so
// no two players can share and mutate the same definitions.
type ClipSet [clipCount]ClipDef

// DefaultClips matches the 16x16 player sheet: one column per walk direction
// with four frames each, idle reusing the first walk-down frame.
var DefaultClips = ClipSet{
	ClipIdle:      {X: 0, Y: 0, Width: 16, Height: 16, Frames: 1},
	ClipWalkDown:  {X: 0, Y: 0, Width: 16, Height: 16, Frames: 4},
	ClipWalkUp:    {X: 16, Y: 0, Width: 16, Height: 16, Frames: 4},
	ClipWalkLeft:  {X: 32, Y: 0, Width: 16, Height: 16, Frames: 4},
	ClipWalkRight: {X: 48, Y: 0, Width: 16, Height: 16, Frames: 4},
}

// Def returns the definition for c.
func (s ClipSet) Def(c Clip) ClipDef {
	if c >= clipCount {
		return ClipDef{}
	}
	return s[c]
}

// Animator is the live playback state of a ClipSet: which clip is active,
// the current frame and the time spent on it.
type Animator struct {
	Clips    ClipSet
	Interval float64

	clip    Clip
	frame   int
	elapsed float64
}

// NewAnimator starts on the idle clip.
func NewAnimator(clips ClipSet, interval float64) Animator {
	return Animator{Clips: clips, Interval: interval, clip: ClipIdle}
}

func (a *Animator) Clip() Clip { return a.clip }
func (a *Animator) Frame() int { return a.frame }
func (a *Animator) Elapsed() float64 { return a.elapsed }
func (a *Animator) Current() ClipDef { return a.Clips.Def(a.clip) }

// Update accumulates dt and steps at most one frame once the interval is
// exceeded. The interval is subtracted rather than the timer zeroed, so a
// long frame is paid back over the following ticks.
func (a *Animator) Update(dt float64) {
	a.elapsed += dt
	if a.elapsed > a.Interval {
		if n := a.Current().Frames; n > 0 {
			a.frame = (a.frame + 1) % n
		}
		a.elapsed -= a.Interval
	}
}

// SetClips swaps the clip table and interval in place. The active clip is
// kept and its frame wrapped into the new frame count.
func (a *Animator) SetClips(clips ClipSet, interval float64) {
	a.Clips = clips
	a.Interval = interval
	if n := a.Current().Frames; n > 0 {
		a.frame %= n
	} else {
		a.frame = 0
	}
}

// Play switches to c and rewinds to frame 0. The elapsed timer carries over.
func (a *Animator) Play(c Clip) {
	a.clip = c
	a.frame = 0
}

// Reset rewinds the current clip.
func (a *Animator) Reset() {
	a.frame = 0
}
