package systems

import (
	"testing"

	"github.com/automoto/masklight/bitmap"
	"github.com/automoto/masklight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newMaskWorld(t *testing.T) (*ecs.ECS, *components.MaskData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.Mask))
	return e, components.Mask.Get(entry)
}

func TestSetWornMaskSwitchesActiveImmediately(t *testing.T) {
	_, mask := newMaskWorld(t)

	SetWornMask(mask, 1)
	if mask.Active != bitmap.Red {
		t.Fatalf("Active = %#x, want %#x", mask.Active, bitmap.Red)
	}
	if mask.WornIndex != 1 {
		t.Fatalf("WornIndex = %d", mask.WornIndex)
	}

	SetWornMask(mask, 0)
	if mask.Active != bitmap.Black {
		t.Fatalf("Active = %#x, want %#x", mask.Active, bitmap.Black)
	}
}

func TestUpdateMaskFadesTowardActive(t *testing.T) {
	e, mask := newMaskWorld(t)

	SetWornMask(mask, 3)
	UpdateMask(e)

	// One tick in: the blue channel is rising but not there yet.
	blue := mask.Lerped & 0xff
	if blue == 0 || blue == 0xff {
		t.Fatalf("blue channel after one tick = %#x", blue)
	}
	if mask.Lerped>>24 != 0xff {
		t.Fatalf("lerped alpha = %#x, want 0xff", mask.Lerped>>24)
	}

	// Enough ticks drains the tweens and converges exactly on Active.
	for i := 0; i < 120; i++ {
		UpdateMask(e)
	}
	if mask.Lerped != mask.Active|0xff000000 {
		t.Fatalf("Lerped = %#x, want %#x", mask.Lerped, mask.Active|0xff000000)
	}
	for c, tw := range mask.Tweens {
		if tw != nil {
			t.Fatalf("tween %d still live after convergence", c)
		}
	}
}

func TestUpdateMaskCrossFade(t *testing.T) {
	e, mask := newMaskWorld(t)

	SetWornMask(mask, 1)
	for i := 0; i < 120; i++ {
		UpdateMask(e)
	}
	if mask.Lerped != bitmap.Red {
		t.Fatalf("Lerped = %#x, want %#x", mask.Lerped, bitmap.Red)
	}

	// Switching to green mid-state fades red down and green up together.
	SetWornMask(mask, 2)
	UpdateMask(e)
	red := (mask.Lerped >> 16) & 0xff
	green := (mask.Lerped >> 8) & 0xff
	if red == 0xff || red == 0 {
		t.Fatalf("red channel not fading: %#x", red)
	}
	if green == 0 || green == 0xff {
		t.Fatalf("green channel not fading: %#x", green)
	}
}
