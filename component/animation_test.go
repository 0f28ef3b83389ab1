package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClip(t *testing.T) {
	for c := ClipIdle; c < clipCount; c++ {
		got, err := ParseClip(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseClip("run")
	assert.True(t, errors.Is(err, ErrUnknownClip))
	assert.Equal(t, "clip(9)", Clip(9).String())
}

func TestClipNext(t *testing.T) {
	assert.Equal(t, ClipWalkDown, ClipIdle.Next())
	assert.Equal(t, ClipIdle, ClipWalkRight.Next())
}

func TestAnimatorUpdate(t *testing.T) {
	a := NewAnimator(DefaultClips, 0.1)
	a.Play(ClipWalkDown)

	a.Update(0.1)
	assert.Equal(t, 0, a.Frame(), "exactly the interval does not advance")

	a.Update(0.05)
	assert.Equal(t, 1, a.Frame())
	assert.InDelta(t, 0.05, a.Elapsed(), 1e-9)

	a.Update(1)
	assert.Equal(t, 2, a.Frame(), "one frame per update")
	assert.InDelta(t, 0.95, a.Elapsed(), 1e-9)
}

func TestAnimatorPlay(t *testing.T) {
	a := NewAnimator(DefaultClips, 0.1)
	require.Equal(t, ClipIdle, a.Clip())

	a.Play(ClipWalkUp)
	a.Update(0.15)
	require.Equal(t, 1, a.Frame())

	a.Play(ClipWalkLeft)
	assert.Equal(t, ClipWalkLeft, a.Clip())
	assert.Equal(t, 0, a.Frame())
	assert.InDelta(t, 0.05, a.Elapsed(), 1e-9)
	assert.Equal(t, DefaultClips[ClipWalkLeft], a.Current())

	a.Update(0.1)
	a.Reset()
	assert.Equal(t, 0, a.Frame())
}

func TestAnimatorSetClipsWrapsFrame(t *testing.T) {
	a := NewAnimator(DefaultClips, 0.1)
	a.Play(ClipWalkUp)
	for i := 0; i < 3; i++ {
		a.Update(0.11)
	}
	require.Equal(t, 3, a.Frame())

	shorter := DefaultClips
	shorter[ClipWalkUp].Frames = 2
	a.SetClips(shorter, 0.2)
	assert.Equal(t, ClipWalkUp, a.Clip())
	assert.Equal(t, 1, a.Frame())
	assert.Equal(t, 0.2, a.Interval)

	empty := DefaultClips
	empty[ClipWalkUp].Frames = 0
	a.SetClips(empty, 0.2)
	assert.Equal(t, 0, a.Frame())
}

func TestAnimatorZeroFrameClip(t *testing.T) {
	clips := DefaultClips
	clips[ClipIdle].Frames = 0

	a := NewAnimator(clips, 0.1)
	a.Update(0.5)
	assert.Equal(t, 0, a.Frame())
}

func TestClipSetDef(t *testing.T) {
	assert.Equal(t, ClipDef{X: 48, Width: 16, Height: 16, Frames: 4}, DefaultClips.Def(ClipWalkRight))
	assert.Equal(t, ClipDef{}, DefaultClips.Def(clipCount))
}
