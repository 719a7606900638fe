package state

import "testing"

func TestActiveTileLatch(t *testing.T) {
	a := NewActiveTile(150)
	if _, ok := a.Index(); ok {
		t.Fatal("new tracker should be empty")
	}

	a.Set(7)
	if a.Accumulate(149) {
		t.Error("cleared below threshold")
	}
	if i, ok := a.Index(); !ok || i != 7 {
		t.Fatalf("Index() = %d, %v; want 7, true", i, ok)
	}

	if !a.Accumulate(1) {
		t.Error("should clear at the threshold")
	}
	if _, ok := a.Index(); ok {
		t.Error("tile still active")
	}
	if a.Accumulate(1000) {
		t.Error("empty tracker reported a clear")
	}
}

func TestActiveTileSetResetsDistance(t *testing.T) {
	a := NewActiveTile(100)
	a.Set(1)
	a.Accumulate(90)
	a.Set(2)
	a.Accumulate(90)
	if !a.Is(2) {
		t.Error("Set should restart the distance counter")
	}
	if a.Is(1) {
		t.Error("previous tile still reported active")
	}

	a.Clear()
	if a.Is(2) {
		t.Error("Clear left the tile active")
	}
}
