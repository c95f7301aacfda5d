package input

import (
	"testing"

	"chosenoffset.com/deepdelve/internal/render"
)

type fakeKeys struct {
	down map[render.Key]bool
	just map[render.Key]bool
}

func (f fakeKeys) IsKeyPressed(k render.Key) bool     { return f.down[k] }
func (f fakeKeys) IsKeyJustPressed(k render.Key) bool { return f.just[k] }

func TestKeyboardDefaultBindings(t *testing.T) {
	keys := fakeKeys{
		down: map[render.Key]bool{render.KeyUp: true, render.KeyE: true},
		just: map[render.Key]bool{render.KeyF: true, render.Key3: true},
	}
	kb := NewKeyboard(keys, nil)

	tests := []struct {
		action  Action
		held    bool
		pressed bool
	}{
		{MoveForward, true, false},
		{StrafeRight, true, false},
		{MoveBack, false, false},
		{Interact, false, true},
		{Weapon3, false, true},
		{Quit, false, false},
	}
	for _, tt := range tests {
		if got := kb.Held(tt.action); got != tt.held {
			t.Errorf("Held(%s) expected %v, got %v", tt.action, tt.held, got)
		}
		if got := kb.Pressed(tt.action); got != tt.pressed {
			t.Errorf("Pressed(%s) expected %v, got %v", tt.action, tt.pressed, got)
		}
	}
}

func TestKeyboardCustomBindings(t *testing.T) {
	keys := fakeKeys{down: map[render.Key]bool{render.KeyH: true}}
	kb := NewKeyboard(keys, Bindings{Attack: {render.KeyH}})
	if !kb.Held(Attack) {
		t.Error("custom binding should trigger attack")
	}
	if kb.Held(Heal) {
		t.Error("unbound actions should never trigger")
	}
}

func TestStatePressFiresOnce(t *testing.T) {
	s := NewState().Press(Attack).Hold(MoveForward)
	if !s.Pressed(Attack) || !s.Held(Attack) {
		t.Fatal("pressed action should be both pressed and held")
	}
	s.EndTick()
	if s.Pressed(Attack) {
		t.Error("press should clear after the tick")
	}
	if !s.Held(MoveForward) {
		t.Error("held action should survive EndTick")
	}
	s.Release()
	if s.Held(MoveForward) || s.Held(Attack) {
		t.Error("Release should clear everything")
	}
}
