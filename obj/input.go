package obj

import "fmt"

// Direction is one of the four movement directions.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight

	directionCount
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Input holds which movement directions are currently held. Only the host's
// key event handlers write to it; the simulation only reads.
type Input struct {
	held [directionCount]bool
}

func NewInput() *Input {
	return &Input{}
}

// Press marks d as held (key-down).
func (i *Input) Press(d Direction) {
	if d < directionCount {
		i.held[d] = true
	}
}

// Release marks d as not held (key-up).
func (i *Input) Release(d Direction) {
	if d < directionCount {
		i.held[d] = false
	}
}

// ReleaseAll clears every direction. Hosts call it when the window loses
// focus, otherwise a key released while unfocused stays held forever.
func (i *Input) ReleaseAll() {
	i.held = [directionCount]bool{}
}

// Held reports whether d is held.
func (i *Input) Held(d Direction) bool {
	if i == nil || d >= directionCount {
		return false
	}
	return i.held[d]
}
