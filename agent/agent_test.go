package agent

import (
	"hex/game"
	"hex/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	_ MetricsPlayer = (*MCTSPlayer)(nil)
	_ Player        = (*RandomPlayer)(nil)
)

func TestMCTSPlayer(t *testing.T) {
	t.Run("plays a legal move and keeps the board", func(t *testing.T) {
		p, err := NewMCTSPlayer(game.Second, searcher.WithDuration(50*time.Millisecond), searcher.WithSeed(1))
		require.NoError(t, err)
		board := game.NewBoard(3)
		board.PlacePiece(game.Move{Row: 1, Col: 1}, game.First)
		before := board.Clone()

		move, err := p.Play(board)

		require.NoError(t, err)
		require.Equal(t, game.Second, p.ID())
		require.Equal(t, game.Empty, board.Cell(move), "Move should be on an empty cell")
		require.Equal(t, before, board, "Play should not mutate the board")
	})

	t.Run("reports search metrics", func(t *testing.T) {
		p, err := NewMCTSPlayer(game.First, searcher.WithEpisodes(25), searcher.WithMetrics(), searcher.WithSeed(2))
		require.NoError(t, err)

		_, metrics, err := p.PlayWithMetrics(game.NewBoard(3))

		require.NoError(t, err)
		require.Equal(t, 25, metrics.Episodes, "Every episode should be counted")
	})

	t.Run("fails on a full board", func(t *testing.T) {
		p, err := NewMCTSPlayer(game.First, searcher.WithEpisodes(5))
		require.NoError(t, err)
		board := game.NewBoard(1)
		board.PlacePiece(game.Move{}, game.Second)

		_, err = p.Play(board)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("rejects an invalid id", func(t *testing.T) {
		_, err := NewMCTSPlayer(game.Empty)

		require.ErrorIs(t, err, game.ErrInvalidOwner)
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		p, err := NewRandomPlayer(game.First, rand.New(rand.NewSource(8)))
		require.NoError(t, err)
		board := game.NewBoard(4)

		for !board.Full() {
			move, err := p.Play(board)
			require.NoError(t, err)
			require.True(t, board.PlacePiece(move, p.ID()), "Random move %v should be legal", move)
		}
	})

	t.Run("fails on a full board", func(t *testing.T) {
		p, err := NewRandomPlayer(game.Second, nil)
		require.NoError(t, err)
		board := game.NewBoard(1)
		board.PlacePiece(game.Move{}, game.First)

		_, err = p.Play(board)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("rejects an invalid id", func(t *testing.T) {
		_, err := NewRandomPlayer(game.Owner(5), nil)

		require.ErrorIs(t, err, game.ErrInvalidOwner)
	})
}
