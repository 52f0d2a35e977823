// Package opponent picks the computer's move.
package opponent

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator produces opponent moves, optionally biased by power level.
type Generator struct {
	src Source
}

// New creates a Generator drawing from src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeeded creates a Generator backed by a PCG source. A zero seed draws a
// fresh seed from crypto/rand.
func NewSeeded(seed int64) (*Generator, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return New(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NextMove returns the opponent's move for a round played at level.
//
// At normal level this is a single uniform draw. Above normal, a favored
// move is drawn first and level.ExtraWeight() extra copies of it join the
// three moves in the pool for a second uniform draw.
func (g *Generator) NextMove(level progression.PowerLevel) game.Move {
	moves := game.AllMoves()

	extra := level.ExtraWeight()
	if extra == 0 {
		return moves[g.src.IntN(len(moves))]
	}

	favored := moves[g.src.IntN(len(moves))]
	pool := Pool(favored, extra)
	return pool[g.src.IntN(len(pool))]
}

// Pool returns the three moves followed by extra copies of favored.
func Pool(favored game.Move, extra int) []game.Move {
	pool := make([]game.Move, 0, 3+extra)
	pool = append(pool, game.AllMoves()...)
	for i := 0; i < extra; i++ {
		pool = append(pool, favored)
	}
	return pool
}
