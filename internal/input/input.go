// Package input maps raw keys to game actions.
package input

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/deepdelve/internal/render"
)

// Action is a logical player command.
type Action int

const (
	TurnLeft Action = iota
	TurnRight
	MoveForward
	MoveBack
	StrafeLeft
	StrafeRight
	Interact
	Attack
	Defend
	Heal
	Weapon1
	Weapon2
	Weapon3
	Weapon4
	Weapon5
	Quit
	Restart
	// ToggleQuality switches the 3D view between full and half resolution.
	ToggleQuality
)

// WeaponActions lists the slot selectors in slot order.
var WeaponActions = []Action{Weapon1, Weapon2, Weapon3, Weapon4, Weapon5}

var actionNames = map[Action]string{
	TurnLeft:    "turn_left",
	TurnRight:   "turn_right",
	MoveForward: "move_forward",
	MoveBack:    "move_back",
	StrafeLeft:  "strafe_left",
	StrafeRight: "strafe_right",
	Interact:    "interact",
	Attack:      "attack",
	Defend:      "defend",
	Heal:        "heal",
	Weapon1:     "weapon_1",
	Weapon2:     "weapon_2",
	Weapon3:     "weapon_3",
	Weapon4:     "weapon_4",
	Weapon5:     "weapon_5",
	Quit:        "quit",
	Restart:     "restart",

	ToggleQuality: "toggle_quality",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// Oracle answers whether an action is active this tick.
//
// Held is true for every tick the action's key is down. Pressed is true only
// on the tick it went down.
type Oracle interface {
	Held(a Action) bool
	Pressed(a Action) bool
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]render.Key

// DefaultBindings returns WASD plus arrows for movement, Q/E to strafe.
func DefaultBindings() Bindings {
	return Bindings{
		MoveForward: {render.KeyW, render.KeyUp},
		MoveBack:    {render.KeyS, render.KeyDown},
		TurnLeft:    {render.KeyA, render.KeyLeft},
		TurnRight:   {render.KeyD, render.KeyRight},
		StrafeLeft:  {render.KeyQ},
		StrafeRight: {render.KeyE},
		Interact:    {render.KeyF},
		Attack:      {render.KeySpace},
		Defend:      {render.KeyR},
		Heal:        {render.KeyH},
		Weapon1:     {render.Key1},
		Weapon2:     {render.Key2},
		Weapon3:     {render.Key3},
		Weapon4:     {render.Key4},
		Weapon5:     {render.Key5},
		Quit:        {render.KeyEscape},
		Restart:     {render.KeyEnter},

		ToggleQuality: {render.KeyTab},
	}
}

// Keyboard is an Oracle over a render.InputManager.
type Keyboard struct {
	in       render.InputManager
	bindings Bindings
}

// NewKeyboard binds in with the given bindings, or the defaults when nil.
func NewKeyboard(in render.InputManager, bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{in: in, bindings: bindings}
}

// Held reports whether any key bound to a is down.
func (k *Keyboard) Held(a Action) bool {
	for _, key := range k.bindings[a] {
		if k.in.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Pressed reports whether any key bound to a went down this tick.
func (k *Keyboard) Pressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if k.in.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// State is a scripted Oracle. Pressing an action also holds it.
type State struct {
	held    mapset.Set[Action]
	pressed mapset.Set[Action]
}

// NewState returns an Oracle with nothing active.
func NewState() *State {
	return &State{held: mapset.New[Action](), pressed: mapset.New[Action]()}
}

// Hold keeps actions down until Release.
func (s *State) Hold(actions ...Action) *State {
	for _, a := range actions {
		s.held.Put(a)
	}
	return s
}

// Press marks actions as pressed for the next tick.
func (s *State) Press(actions ...Action) *State {
	for _, a := range actions {
		s.pressed.Put(a)
		s.held.Put(a)
	}
	return s
}

// Release clears every held and pressed action.
func (s *State) Release() {
	s.held = mapset.New[Action]()
	s.pressed = mapset.New[Action]()
}

// EndTick clears presses so they only fire once, leaving held keys down.
func (s *State) EndTick() {
	s.pressed = mapset.New[Action]()
}

func (s *State) Held(a Action) bool    { return s.held.Has(a) }
func (s *State) Pressed(a Action) bool { return s.pressed.Has(a) }
