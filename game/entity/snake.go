package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's body, head first, plus its heading.
//
// heading is the vector used by the last Move; pending is what the next Move
// will use. A turn that reverses either one is dropped, so the visible
// direction never flips and turns queued within one tick cannot fold the head
// back onto the neck.
type Snake struct {
	grid    types.Grid
	body    []types.Point
	heading types.Point
	pending types.Point
}

func NewSnake(grid types.Grid, body []types.Point, dir types.Point) *Snake {
	if len(body) == 0 {
		panic("entity: snake needs at least one segment")
	}
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		grid:    grid,
		body:    b,
		heading: dir,
		pending: dir,
	}
}

// ChangeDirection queues a new heading. Reversals and anything other than a
// unit vector are dropped silently.
func (s *Snake) ChangeDirection(dx, dy int) {
	if types.FromPoint(types.Point{X: dx, Y: dy}) == types.NONE {
		return
	}
	if reverses(s.pending, dx, dy) || reverses(s.heading, dx, dy) {
		return
	}
	s.pending = types.Point{X: dx, Y: dy}
}

// reverses reports whether (dx, dy) points back along a nonzero component of dir.
func reverses(dir types.Point, dx, dy int) bool {
	return (dir.X != 0 && dx == -dir.X) || (dir.Y != 0 && dy == -dir.Y)
}

// Move prepends a new head one step along the pending heading. The tail stays
// until Shrink is called.
func (s *Snake) Move() {
	s.heading = s.pending
	newHead := s.Head().Add(s.heading)
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

// Grow keeps the segment added by Move. Nothing to do: skipping Shrink is the growth.
func (s *Snake) Grow() {}

func (s *Snake) Shrink() {
	if len(s.body) <= 1 {
		return
	}
	s.body = s.body[:len(s.body)-1]
}

func (s *Snake) CollideWall() bool {
	return !s.grid.Contains(s.Head())
}

func (s *Snake) CollideSelf() bool {
	head := s.Head()
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Eat reports whether the head sits on the fruit.
func (s *Snake) Eat(f *Fruit) bool {
	if f == nil {
		return false
	}
	return s.Head() == f.Position()
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the heading the next Move will use.
func (s *Snake) Direction() types.Point {
	return s.pending
}

// Occupies reports whether any segment covers p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
