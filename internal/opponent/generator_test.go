package opponent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
)

// scriptedSource replays fixed draws and records the bounds it was asked for.
type scriptedSource struct {
	draws []int
	calls []int
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func TestNextMove_NormalIsSingleDraw(t *testing.T) {
	for i, want := range game.AllMoves() {
		src := &scriptedSource{draws: []int{i}}
		got := New(src).NextMove(progression.PowerNormal)

		assert.Equal(t, want, got)
		assert.Equal(t, []int{3}, src.calls)
	}
}

func TestNextMove_BiasedUsesTwoDraws(t *testing.T) {
	tests := []struct {
		level    progression.PowerLevel
		poolSize int
	}{
		{progression.PowerSuper, 4},
		{progression.PowerUltra, 5},
		{progression.PowerLegendary, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			// Favor Stump, then draw the last pool slot (a favored copy).
			src := &scriptedSource{draws: []int{2, tt.poolSize - 1}}
			got := New(src).NextMove(tt.level)

			assert.Equal(t, game.MoveStump, got)
			assert.Equal(t, []int{3, tt.poolSize}, src.calls)
		})
	}
}

func TestNextMove_BiasedCanReturnAnyMove(t *testing.T) {
	src := &scriptedSource{draws: []int{2, 0}}
	got := New(src).NextMove(progression.PowerLegendary)
	assert.Equal(t, game.MoveBat, got)
}

func TestPool(t *testing.T) {
	pool := Pool(game.MoveBall, 3)
	require.Len(t, pool, 6)

	counts := make(map[game.Move]int)
	for _, m := range pool {
		counts[m]++
	}
	assert.Equal(t, 1, counts[game.MoveBat])
	assert.Equal(t, 4, counts[game.MoveBall])
	assert.Equal(t, 1, counts[game.MoveStump])
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a, err := NewSeeded(42)
	require.NoError(t, err)
	b, err := NewSeeded(42)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextMove(progression.PowerUltra), b.NextMove(progression.PowerUltra))
	}
}

func TestNextMove_Distribution(t *testing.T) {
	g, err := NewSeeded(1)
	require.NoError(t, err)

	const n = 30000
	counts := make(map[game.Move]int)
	for i := 0; i < n; i++ {
		m := g.NextMove(progression.PowerNormal)
		require.True(t, m.Valid())
		counts[m]++
	}
	for _, m := range game.AllMoves() {
		share := float64(counts[m]) / n
		assert.InDelta(t, 1.0/3, share, 0.02, "share of %s", m)
	}
}
