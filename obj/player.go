package obj

import (
	"github.com/milk9111/tilewalk/component"
	"github.com/milk9111/tilewalk/render"
)

const (
	// DefaultMoveSpeed is the walking speed in world pixels per second.
	DefaultMoveSpeed = 100
	// DefaultFrameInterval is how long each animation frame is shown.
	DefaultFrameInterval = 0.1
	// DefaultSize is the edge length of the player's square hitbox.
	DefaultSize = 15
	// DefaultCropOffset nudges the source rect down to avoid bleeding from
	// the frame above on the sheet.
	DefaultCropOffset = 0.5

	// collisionBuffer keeps a resolved player from touching the obstacle
	// again, since touching edges count as overlap.
	collisionBuffer = 0.0001
)

// Player is the single controllable actor. X and Y are the top-left of its
// hitbox.
type Player struct {
	X, Y          float64
	Width, Height float64

	VelocityX float64
	VelocityY float64

	Facing     Direction
	Invincible bool

	// Texture is the sprite sheet. Drawing is skipped while it is nil.
	Texture render.Texture

	MoveSpeed  float64
	CropOffset float64

	anim component.Animator
}

// NewPlayer creates an idle player facing down with default tuning.
func NewPlayer(x, y, size float64) *Player {
	return &Player{
		X:          x,
		Y:          y,
		Width:      size,
		Height:     size,
		Facing:     DirectionDown,
		MoveSpeed:  DefaultMoveSpeed,
		CropOffset: DefaultCropOffset,
		anim:       component.NewAnimator(component.DefaultClips, DefaultFrameInterval),
	}
}

// SetClips replaces the clip table and frame interval. The active clip is
// kept; a frame past the new clip's end wraps.
func (p *Player) SetClips(clips component.ClipSet, interval float64) {
	p.anim.SetClips(clips, interval)
}

// Animation exposes the playback state for drawing and debugging.
func (p *Player) Animation() *component.Animator {
	return &p.anim
}

// Center returns the middle of the hitbox.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// HandleInput sets the velocity from the held directions. Only one axis can
// move at a time; when several directions are held the first of right, left,
// up, down wins. It returns the chosen direction, or false when nothing is
// held and the player stops.
func (p *Player) HandleInput(in *Input) (Direction, bool) {
	p.VelocityX = 0
	p.VelocityY = 0

	switch {
	case in.Held(DirectionRight):
		p.VelocityX = p.MoveSpeed
		return DirectionRight, true
	case in.Held(DirectionLeft):
		p.VelocityX = -p.MoveSpeed
		return DirectionLeft, true
	case in.Held(DirectionUp):
		p.VelocityY = -p.MoveSpeed
		return DirectionUp, true
	case in.Held(DirectionDown):
		p.VelocityY = p.MoveSpeed
		return DirectionDown, true
	}
	return 0, false
}

// Update advances the player by dt seconds against the world's obstacles.
// Each axis is moved and resolved on its own, horizontal first.
func (p *Player) Update(dt float64, world *CollisionWorld) {
	if dt <= 0 {
		return
	}

	p.X += p.VelocityX * dt
	p.resolveHorizontal(world)

	p.Y += p.VelocityY * dt
	p.resolveVertical(world)

	p.anim.Update(dt)
	p.switchClip()
}

// resolveHorizontal pushes the player out of the first overlapping obstacle.
// VelocityX is left alone so walking into a wall keeps the walk animation.
func (p *Player) resolveHorizontal(world *CollisionWorld) {
	if p.VelocityX == 0 {
		return
	}
	i := world.First(p.X, p.Y, p.Width, p.Height)
	if i < 0 {
		return
	}
	o := world.obstacles[i]
	if p.VelocityX < 0 {
		p.X = o.X + o.Width + collisionBuffer
	} else {
		p.X = o.X - p.Width - collisionBuffer
	}
}

// resolveVertical pushes the player out of the first overlapping obstacle and
// stops vertical motion.
func (p *Player) resolveVertical(world *CollisionWorld) {
	if p.VelocityY == 0 {
		return
	}
	i := world.First(p.X, p.Y, p.Width, p.Height)
	if i < 0 {
		return
	}
	o := world.obstacles[i]
	if p.VelocityY < 0 {
		p.Y = o.Y + o.Height + collisionBuffer
	} else {
		p.Y = o.Y - p.Height - collisionBuffer
	}
	p.VelocityY = 0
}

// switchClip picks the animation for the current velocity. At most one
// switch happens per tick, checked in the same priority as HandleInput.
func (p *Player) switchClip() {
	cur := p.anim.Clip()
	switch {
	case p.VelocityX == 0 && p.VelocityY == 0:
		p.anim.Play(component.ClipIdle)
	case p.VelocityX > 0 && cur != component.ClipWalkRight:
		p.anim.Play(component.ClipWalkRight)
		p.Facing = DirectionRight
	case p.VelocityX < 0 && cur != component.ClipWalkLeft:
		p.anim.Play(component.ClipWalkLeft)
		p.Facing = DirectionLeft
	case p.VelocityY > 0 && cur != component.ClipWalkDown:
		p.anim.Play(component.ClipWalkDown)
		p.Facing = DirectionDown
	case p.VelocityY < 0 && cur != component.ClipWalkUp:
		p.anim.Play(component.ClipWalkUp)
		p.Facing = DirectionUp
	}
}

// Draw blits the current frame. A left-facing player is drawn through a
// mirrored x axis, so its destination x is negated.
func (p *Player) Draw(s render.Surface) {
	if p.Texture == nil {
		return
	}

	xScale := 1.0
	x := p.X
	if p.Facing == DirectionLeft {
		xScale = -1
		x = -p.X - p.Width
	}

	alpha := 1.0
	if p.Invincible {
		alpha = 0.5
	}

	def := p.anim.Current()
	src := render.Rect{
		X:      float64(def.X),
		Y:      float64(def.Y+def.Height*p.anim.Frame()) + p.CropOffset,
		Width:  float64(def.Width),
		Height: float64(def.Height),
	}

	s.Save()
	s.SetGlobalAlpha(alpha)
	s.Scale(xScale, 1)
	s.DrawImage(p.Texture, src, render.Rect{X: x, Y: p.Y, Width: p.Width, Height: p.Height})
	s.Restore()
}
