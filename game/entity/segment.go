package entity

import "centipede/game/types"

// Segment is one jointed body piece. Its predecessor is the segment one
// index closer to the head.
type Segment struct {
	Pos    types.Point
	Angle  float64 // radians, from predecessor toward this segment
	Length float64 // fixed distance to the predecessor
	Radius float64
}

// FollowParent snaps the segment to exactly Length from parent, along the
// line from parent to the segment's current position. When both points
// coincide the previous angle is kept.
func (s *Segment) FollowParent(parent Segment) {
	s.Angle = types.Heading(s.Pos.Sub(parent.Pos), s.Angle)
	s.Pos = parent.Pos.Add(types.FromAngle(s.Angle, s.Length))
}

// Direction returns the unit vector along Angle
func (s Segment) Direction() types.Point {
	return types.FromAngle(s.Angle, 1)
}
