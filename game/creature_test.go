package game

import (
	"math"
	"testing"

	"centipede/game/entity"
	"centipede/game/input"
	"centipede/game/manager"
	"centipede/game/types"
)

// newTestCreature places the head at start with an empty food pool of the
// given target size.
func newTestCreature(t *testing.T, cfg types.Config, start types.Point, pointer input.Source) (*Creature, *manager.FoodManager) {
	t.Helper()
	cm := manager.NewCollisionManager(types.Bounds{Width: 2000, Height: 2000}, cfg.FoodMargin)
	fm := manager.NewFoodManager(cfg, cm, types.NewRand(9))
	return NewCreature(cfg, start, pointer, fm), fm
}

func TestSteerFirstTick(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	c, _ := newTestCreature(t, cfg, types.Point{}, input.Fixed{X: 100, Y: 100})

	c.Update(1.0 / 60)

	v := c.Velocity()
	want := 0.16 / math.Sqrt2
	if math.Abs(v.X-want) > 1e-9 || math.Abs(v.Y-want) > 1e-9 {
		t.Errorf("velocity = %v, want (%v, %v)", v, want, want)
	}
	if math.Abs(v.Norm()-0.16) > 1e-9 {
		t.Errorf("speed = %v, want 0.16", v.Norm())
	}
	if head := c.Head(); head.Pos != v {
		t.Errorf("head = %v, want moved by velocity %v", head.Pos, v)
	}
	if math.Abs(c.Head().Angle-math.Pi/4) > 1e-9 {
		t.Errorf("head angle = %v, want π/4", c.Head().Angle)
	}
}

type orbit struct{ tick *int }

func (o orbit) CurrentPosition() types.Point {
	a := float64(*o.tick) * 0.05
	return types.Point{X: 1000 + 600*math.Cos(a), Y: 1000 + 400*math.Sin(3*a)}
}

func TestSpeedNeverExceedsMax(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	tick := 0
	c, _ := newTestCreature(t, cfg, types.Point{X: 1000, Y: 1000}, orbit{&tick})

	for ; tick < 2000; tick++ {
		c.Update(1.0 / 60)
		if s := c.Velocity().Norm(); s > cfg.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v > %v", tick, s, cfg.MaxSpeed)
		}
		segs := c.Segments()
		for i := 1; i < len(segs); i++ {
			d := types.Distance(segs[i].Pos, segs[i-1].Pos)
			if math.Abs(d-cfg.SegmentLength) > 1e-6 {
				t.Fatalf("tick %d segment %d: link %v", tick, i, d)
			}
		}
	}
}

func TestSpeedClampedExactly(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	c, _ := newTestCreature(t, cfg, types.Point{}, input.Fixed{X: 1e6, Y: 0})

	for i := 0; i < 200; i++ {
		c.Update(0)
	}
	if s := c.Velocity().Norm(); math.Abs(s-cfg.MaxSpeed) > 1e-9 {
		t.Errorf("speed = %v, want exactly %v", s, cfg.MaxSpeed)
	}
}

func TestPointerOnHeadKeepsVelocity(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	c, _ := newTestCreature(t, cfg, types.Point{X: 50, Y: 50}, input.Fixed{X: 50, Y: 50})

	c.Update(0.016)
	if v := c.Velocity(); v != (types.Point{}) {
		t.Errorf("velocity = %v, want zero", v)
	}
	if h := c.Head(); h.Pos != (types.Point{X: 50, Y: 50}) || h.Angle != 0 || math.IsNaN(h.Angle) {
		t.Errorf("head = %+v, want unchanged", h)
	}
}

func TestEatScenario(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	c, fm := newTestCreature(t, cfg, types.Point{}, input.Fixed{})
	fm.AddFood(entity.Food{ID: "f", Pos: types.Point{X: 5, Y: 0}, Radius: 8})

	before := c.Len()
	tail := c.Segments()[before-1]

	var hooked []int
	c.onEat = func(f entity.Food, length int) { hooked = append(hooked, length) }

	food, ok := c.Update(0.016)
	if !ok || food.ID != "f" {
		t.Fatalf("Update() = %+v, %v; want food f eaten", food, ok)
	}
	if c.Len() != before+1 {
		t.Errorf("Len() = %d, want %d", c.Len(), before+1)
	}
	if fm.Count() != 0 {
		t.Errorf("food count = %d, want 0", fm.Count())
	}
	added := c.Segments()[c.Len()-1]
	if added.Pos != tail.Pos {
		t.Errorf("new tail at %v, want old tail %v", added.Pos, tail.Pos)
	}
	if len(hooked) != 1 || hooked[0] != before+1 {
		t.Errorf("hook calls = %v", hooked)
	}
}

func TestEatAtMostOnePerTick(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	c, fm := newTestCreature(t, cfg, types.Point{}, input.Fixed{})
	fm.AddFood(entity.Food{ID: "a", Pos: types.Point{X: 1}, Radius: 6})
	fm.AddFood(entity.Food{ID: "b", Pos: types.Point{X: 2}, Radius: 6})

	food, ok := c.EatAndGrow()
	if !ok || food.ID != "a" {
		t.Fatalf("ate %q, want a", food.ID)
	}
	if fm.Count() != 1 {
		t.Errorf("food count = %d, want 1", fm.Count())
	}
	if c.Len() != cfg.Segments+1 {
		t.Errorf("Len() = %d, want %d", c.Len(), cfg.Segments+1)
	}
}

func TestEatReplenishes(t *testing.T) {
	cfg := types.DefaultConfig()
	c, fm := newTestCreature(t, cfg, types.Point{X: 1000, Y: 1000}, input.Fixed{X: 1000, Y: 1000})
	fm.AddFood(entity.Food{ID: "x", Pos: types.Point{X: 1000, Y: 1000}, Radius: 6})

	if _, ok := c.EatAndGrow(); !ok {
		t.Fatal("expected to eat")
	}
	if fm.Count() != cfg.FoodCount {
		t.Errorf("food count = %d, want %d", fm.Count(), cfg.FoodCount)
	}
}

func TestAntennaLeanSettles(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.FoodCount = 0
	tick := 0
	c, _ := newTestCreature(t, cfg, types.Point{X: 1000, Y: 1000}, orbit{&tick})

	moved := false
	for ; tick < 600; tick++ {
		c.Update(1.0 / 60)
		if l := c.AntennaLean(); math.Abs(l) > 1 || math.IsNaN(l) {
			t.Fatalf("tick %d: lean %v", tick, l)
		} else if l != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("antennas never leaned while turning")
	}
	if got := c.Time(); math.Abs(got-600.0/60) > 1e-9 {
		t.Errorf("Time() = %v, want 10", got)
	}
}
