package game

import (
	"centipede/game/entity"
	"centipede/game/input"
	"centipede/game/manager"
	"centipede/game/types"

	"github.com/charmbracelet/harmonica"
)

// Antenna lean: the antennas swing against the direction of a turn and
// settle back on a damped spring.
const (
	antennaFPS       = 60
	antennaFrequency = 6.0
	antennaDamping   = 0.5
	antennaLeanGain  = 4.0
	antennaMaxLean   = 0.4
)

// Creature steers the head toward the pointer, drags the body behind it
// and grows when the head reaches food.
type Creature struct {
	cfg      types.Config
	chain    *entity.Chain
	velocity types.Point
	time     float64 // seconds, drives the leg phase

	lean    float64
	leanVel float64
	spring  harmonica.Spring

	pointer input.Source
	food    *manager.FoodManager
	onEat   func(food entity.Food, length int)
}

// NewCreature builds the body with its head at start.
func NewCreature(cfg types.Config, start types.Point, pointer input.Source, food *manager.FoodManager) *Creature {
	return &Creature{
		cfg:     cfg,
		chain:   entity.NewChain(start, cfg.Segments, cfg.SegmentLength, cfg.HeadRadius(), cfg.TailRadius()),
		spring:  harmonica.NewSpring(harmonica.FPS(antennaFPS), antennaFrequency, antennaDamping),
		pointer: pointer,
		food:    food,
	}
}

// Update advances one tick: steer, move the head by the velocity, follow,
// then try to eat. dt only feeds the animation clock; motion is per tick.
func (c *Creature) Update(dt float64) (entity.Food, bool) {
	c.time += dt

	c.Steer(c.pointer.CurrentPosition())

	head := c.chain.Head()
	heading := types.Heading(c.velocity, head.Angle)
	c.chain.MoveHead(head.Pos.Add(c.velocity), heading)
	c.chain.Follow()

	c.updateLean(types.WrapAngle(heading - head.Angle))

	return c.EatAndGrow()
}

// Steer accelerates toward target by SteerGain and caps the speed.
func (c *Creature) Steer(target types.Point) {
	dir := target.Sub(c.chain.Head().Pos).Normalize()
	c.velocity = c.velocity.Add(dir.Mul(c.cfg.SteerGain))

	if speed := c.velocity.Norm(); speed > c.cfg.MaxSpeed {
		c.velocity = c.velocity.Mul(c.cfg.MaxSpeed / speed)
	}
}

// EatAndGrow consumes at most one overlapping food item, appends a tail
// segment for it and refills the pool.
func (c *Creature) EatAndGrow() (entity.Food, bool) {
	food, ok := c.food.ConsumeOverlapping(c.chain.Head().Pos, c.cfg.HeadRadius())
	if !ok {
		return entity.Food{}, false
	}

	length := c.chain.Grow(c.cfg.TailRadius())
	c.food.EnsureReplenished()

	if c.onEat != nil {
		c.onEat(food, length)
	}
	return food, true
}

func (c *Creature) updateLean(turn float64) {
	target := types.Clamp(-turn*antennaLeanGain, -antennaMaxLean, antennaMaxLean)
	c.lean, c.leanVel = c.spring.Update(c.lean, c.leanVel, target)
}

func (c *Creature) Config() types.Config {
	return c.cfg
}

func (c *Creature) Head() entity.Segment {
	return c.chain.Head()
}

func (c *Creature) Len() int {
	return c.chain.Len()
}

// Segments returns a copy of the body, head first.
func (c *Creature) Segments() []entity.Segment {
	return c.chain.Segments()
}

func (c *Creature) Velocity() types.Point {
	return c.velocity
}

// Time is the accumulated animation time in seconds
func (c *Creature) Time() float64 {
	return c.time
}

// AntennaLean is the current spring-smoothed antenna offset in radians.
func (c *Creature) AntennaLean() float64 {
	return c.lean
}
