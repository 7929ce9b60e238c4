package entity

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-classic/game/types"
)

// RandomSource yields integers in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a PCG backed source. A zero seed picks one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

type Fruit struct {
	pos  types.Point
	grid types.Grid
	rng  RandomSource
}

func NewFruit(grid types.Grid, rng RandomSource) *Fruit {
	return &Fruit{grid: grid, rng: rng}
}

// Randomize moves the fruit to a random cell for which occupied returns false.
// It keeps sampling until it finds one, so the board must not be full.
func (f *Fruit) Randomize(occupied func(types.Point) bool) {
	for {
		p := types.Point{
			X: f.rng.Intn(f.grid.Width),
			Y: f.rng.Intn(f.grid.Height),
		}
		if occupied == nil || !occupied(p) {
			f.pos = p
			return
		}
	}
}

func (f *Fruit) Position() types.Point {
	return f.pos
}
