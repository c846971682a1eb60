package entity

import (
	"math"

	"centipede/game/types"
)

// Chain is the ordered body, head at index 0. Each segment's predecessor
// is the previous index.
type Chain struct {
	segments []Segment
	length   float64
}

// NewChain lays out count segments starting at head and extending to the
// right, radius shrinking linearly from headRadius to tailRadius.
func NewChain(head types.Point, count int, length, headRadius, tailRadius float64) *Chain {
	c := &Chain{
		segments: make([]Segment, count),
		length:   length,
	}
	for i := range c.segments {
		t := 0.0
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		c.segments[i] = Segment{
			Pos:    types.Point{X: head.X + float64(i)*length, Y: head.Y},
			Length: length,
			Radius: types.Lerp(headRadius, tailRadius, t),
		}
	}
	return c
}

func (c *Chain) Len() int {
	return len(c.segments)
}

// SegmentLength is the link length used for every segment
func (c *Chain) SegmentLength() float64 {
	return c.length
}

func (c *Chain) Head() Segment {
	return c.segments[0]
}

func (c *Chain) Tail() Segment {
	return c.segments[len(c.segments)-1]
}

// At returns the segment at index i (0 = head).
func (c *Chain) At(i int) Segment {
	return c.segments[i]
}

// Segments returns a copy of the body, head first.
func (c *Chain) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// MoveHead places the head. Followers are not touched until Follow.
func (c *Chain) MoveHead(pos types.Point, angle float64) {
	c.segments[0].Pos = pos
	c.segments[0].Angle = angle
}

// Follow runs one head-to-tail pass of FollowParent. Each segment follows
// the already-corrected position of its predecessor.
func (c *Chain) Follow() {
	for i := 1; i < len(c.segments); i++ {
		c.segments[i].FollowParent(c.segments[i-1])
	}
}

// Grow appends a segment coincident with the tail and returns the new length.
func (c *Chain) Grow(minRadius float64) int {
	tail := c.Tail()
	c.segments = append(c.segments, Segment{
		Pos:    tail.Pos,
		Angle:  tail.Angle,
		Length: c.length,
		Radius: math.Max(minRadius, tail.Radius*types.GrowRadiusRatio),
	})
	return len(c.segments)
}
