package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilewalk/obj"
)

type binding struct {
	dir     obj.Direction
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = []binding{
	{obj.DirectionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	{obj.DirectionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	{obj.DirectionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	{obj.DirectionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
}

// Keyboard turns key and d-pad transitions into Input presses and releases.
type Keyboard struct {
	gamepads []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Update forwards this frame's transitions to in. A direction is only
// released once none of its keys or buttons are held.
func (k *Keyboard) Update(in *obj.Input) {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, b := range bindings {
		switch {
		case k.justPressed(b):
			in.Press(b.dir)
		case k.justReleased(b) && !k.held(b):
			in.Release(b.dir)
		}
	}
}

// Sync rebuilds in from what is physically held right now. Edges missed
// while paused or unfocused are otherwise lost until the key is pressed again.
func (k *Keyboard) Sync(in *obj.Input) {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	syncInput(in, k.held)
}

func syncInput(in *obj.Input, held func(binding) bool) {
	in.ReleaseAll()
	for _, b := range bindings {
		if held(b) {
			in.Press(b.dir)
		}
	}
}

func (k *Keyboard) justPressed(b binding) bool {
	for _, key := range b.keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) justReleased(b binding) bool {
	for _, key := range b.keys {
		if inpututil.IsKeyJustReleased(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustReleased(id, btn) {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) held(b binding) bool {
	for _, key := range b.keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
