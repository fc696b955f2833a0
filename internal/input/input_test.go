package input

import (
	"testing"

	"langton-ant/internal/view"
)

func TestApplyOneShotCommands(t *testing.T) {
	c := NewController()
	s := c.Apply([]Event{
		{Kind: KeyDown, Key: KeyZoomIn},
		{Kind: KeyDown, Key: KeyZoomIn},
		{Kind: KeyDown, Key: KeyZoomOut},
		{Kind: KeyDown, Key: KeyFollow},
	})
	if s.ZoomIn != 2 || s.ZoomOut != 1 || !s.ToggleFollow || s.Quit {
		t.Fatalf("unexpected snapshot %+v", s)
	}

	s = c.Apply(nil)
	if s.ZoomIn != 0 || s.ZoomOut != 0 || s.ToggleFollow {
		t.Fatalf("one-shot commands must not persist: %+v", s)
	}
}

func TestFollowTogglePairCancels(t *testing.T) {
	c := NewController()
	s := c.Apply([]Event{{Kind: KeyDown, Key: KeyFollow}, {Kind: KeyDown, Key: KeyFollow}})
	if s.ToggleFollow {
		t.Fatal("two presses in one iteration should cancel out")
	}
}

func TestApplyQuit(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
	}{
		{"window close", Event{Kind: Quit}},
		{"escape", Event{Kind: KeyDown, Key: KeyEscape}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if s := NewController().Apply([]Event{tc.ev}); !s.Quit {
				t.Fatal("expected quit")
			}
		})
	}
}

func TestHeldKeysPersistUntilReleased(t *testing.T) {
	c := NewController()
	s := c.Apply([]Event{{Kind: KeyDown, Key: KeyArrowLeft}, {Kind: KeyDown, Key: KeyArrowUp}})
	if !s.Held[view.PanLeft] || !s.Held[view.PanUp] || s.Held[view.PanRight] || s.Held[view.PanDown] {
		t.Fatalf("unexpected held state %v", s.Held)
	}

	s = c.Apply(nil)
	if !s.Held[view.PanLeft] || !s.Held[view.PanUp] {
		t.Fatal("held keys must persist across iterations")
	}

	s = c.Apply([]Event{{Kind: KeyUp, Key: KeyArrowLeft}})
	if s.Held[view.PanLeft] || !s.Held[view.PanUp] {
		t.Fatalf("unexpected held state after release %v", s.Held)
	}

	c.Release()
	if s = c.Apply(nil); s.Held != [4]bool{} {
		t.Fatal("Release should clear all held keys")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewController()
	s := c.Apply([]Event{{Kind: KeyDown, Key: KeyArrowRight}})
	c.Apply([]Event{{Kind: KeyUp, Key: KeyArrowRight}})
	if !s.Held[view.PanRight] {
		t.Fatal("earlier snapshot must not change after later events")
	}
}

func TestArrowKeysMapToPanDirections(t *testing.T) {
	cases := []struct {
		key Key
		dir view.Direction
	}{
		{KeyArrowUp, view.PanUp},
		{KeyArrowRight, view.PanRight},
		{KeyArrowDown, view.PanDown},
		{KeyArrowLeft, view.PanLeft},
	}
	for _, tc := range cases {
		c := NewController()
		s := c.Apply([]Event{{Kind: KeyDown, Key: tc.key}})
		for d := view.PanUp; d <= view.PanLeft; d++ {
			if s.Held[d] != (d == tc.dir) {
				t.Fatalf("key %d: held %v, want only direction %d", tc.key, s.Held, tc.dir)
			}
		}
		if s = c.Apply([]Event{{Kind: KeyUp, Key: tc.key}}); s.Held[tc.dir] {
			t.Fatalf("key %d still held after release", tc.key)
		}
	}
}
