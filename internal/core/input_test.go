package core

import (
	"reflect"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	want := []Action{ActionLeft, ActionLeft, ActionUp}
	if got := f.Moves(); !reflect.DeepEqual(got, want) {
		t.Errorf("Moves() = %v, expected %v", got, want)
	}
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}
	if len(f.Actions) != 4 {
		t.Errorf("ActionNone should not be recorded, got %v", f.Actions)
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear() left %v", f.Actions)
	}
	if !clone.Has(ActionRight) {
		t.Error("Clear() should not affect a clone")
	}
}

func TestActionIsMove(t *testing.T) {
	tests := map[Action]bool{
		ActionNone:    false,
		ActionUp:      true,
		ActionDown:    true,
		ActionLeft:    true,
		ActionRight:   true,
		ActionConfirm: false,
		ActionRestart: false,
		ActionPause:   false,
	}
	for a, expected := range tests {
		if a.IsMove() != expected {
			t.Errorf("%v.IsMove() = %v, expected %v", a, a.IsMove(), expected)
		}
	}
}
