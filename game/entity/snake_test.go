package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-classic/game/types"
)

var testGrid = types.Grid{Width: 20, Height: 20}

func startingSnake() *Snake {
	return NewSnake(testGrid,
		[]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		types.Point{X: 1, Y: 0})
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := []types.Point{{X: 1, Y: 1}, {X: 0, Y: 1}}
	s := NewSnake(testGrid, body, types.Point{X: 1, Y: 0})
	body[0] = types.Point{X: 9, Y: 9}

	assert.Equal(t, types.Point{X: 1, Y: 1}, s.Head())
	assert.Panics(t, func() { NewSnake(testGrid, nil, types.Point{X: 1, Y: 0}) })
}

func TestMovePrependsHeadWithoutDroppingTail(t *testing.T) {
	s := startingSnake()
	s.Move()

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Head())
	assert.Equal(t, types.Point{X: 3, Y: 5}, s.Body()[3])

	s.Shrink()
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}, s.Body())
}

func TestShrinkKeepsHead(t *testing.T) {
	s := NewSnake(testGrid, []types.Point{{X: 2, Y: 2}}, types.Point{X: 1, Y: 0})
	s.Shrink()
	assert.Equal(t, 1, s.Len())
}

func TestChangeDirectionRejectsReversal(t *testing.T) {
	s := startingSnake()

	s.ChangeDirection(-1, 0)
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction())

	s.ChangeDirection(0, -1)
	assert.Equal(t, types.Point{X: 0, Y: -1}, s.Direction())
	s.Move()

	s.ChangeDirection(0, 1)
	assert.Equal(t, types.Point{X: 0, Y: -1}, s.Direction())
}

func TestChangeDirectionIgnoresNonUnitVectors(t *testing.T) {
	s := startingSnake()
	s.ChangeDirection(0, 0)
	s.ChangeDirection(1, 1)
	s.ChangeDirection(2, 0)
	assert.Equal(t, types.Point{X: 1, Y: 0}, s.Direction())
}

func TestQueuedTurnsCannotFoldBackWithinOneTick(t *testing.T) {
	s := startingSnake()

	// up then left before the next move: left is the reverse of the heading
	// actually travelled, so it is dropped
	s.ChangeDirection(0, -1)
	s.ChangeDirection(-1, 0)
	assert.Equal(t, types.Point{X: 0, Y: -1}, s.Direction())

	s.Move()
	s.Shrink()
	assert.False(t, s.CollideSelf())
}

func TestQueuedTurnCannotReverseVisibleDirection(t *testing.T) {
	s := startingSnake()

	s.ChangeDirection(0, -1)
	s.ChangeDirection(0, 1)
	assert.Equal(t, types.Point{X: 0, Y: -1}, s.Direction())

	s.Move()
	assert.Equal(t, types.Point{X: 5, Y: 4}, s.Head())
}

func TestCollideWall(t *testing.T) {
	s := NewSnake(testGrid,
		[]types.Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}},
		types.Point{X: 1, Y: 0})
	assert.False(t, s.CollideWall())

	s.Move()
	assert.True(t, s.CollideWall())

	up := NewSnake(testGrid, []types.Point{{X: 3, Y: 0}}, types.Point{X: 0, Y: -1})
	up.Move()
	assert.True(t, up.CollideWall())
}

func TestCollideSelf(t *testing.T) {
	// a hook shape: moving up from (2,3) puts the head on (2,2)
	s := NewSnake(testGrid, []types.Point{
		{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2},
	}, types.Point{X: -1, Y: 0})
	assert.False(t, s.CollideSelf())

	s.ChangeDirection(0, -1)
	s.Move()
	assert.True(t, s.CollideSelf())
}

func TestEat(t *testing.T) {
	s := startingSnake()
	assert.False(t, s.Eat(nil))

	f := NewFruit(testGrid, &scriptedSource{values: []int{6, 5}})
	f.Randomize(s.Occupies)
	require.Equal(t, types.Point{X: 6, Y: 5}, f.Position())

	assert.False(t, s.Eat(f))
	s.Move()
	assert.True(t, s.Eat(f))
}

func TestBodyStaysConnectedPath(t *testing.T) {
	s := startingSnake()
	turns := []types.Point{
		{X: 0, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: 0},
		{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	}
	for _, d := range turns {
		s.ChangeDirection(d.X, d.Y)
		s.Move()
		s.Shrink()

		body := s.Body()
		require.Len(t, body, 3)
		for i := 1; i < len(body); i++ {
			assert.True(t, types.Adjacent(body[i-1], body[i]), "segments %v and %v", body[i-1], body[i])
		}
		assert.False(t, s.CollideSelf())
	}
}
