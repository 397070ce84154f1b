package engine

import (
	"fmt"
	"hex/agent"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine alternates two in-process players on one board. First always opens.
type LocalEngine struct {
	Board   *game.Board
	Players [2]agent.Player // Indexed by owner - 1
}

func NewLocalEngine(size int, players ...agent.Player) *LocalEngine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	if players[0].ID() != game.First || players[1].ID() != game.Second {
		panic("players must be given as player 1 then player 2")
	}

	return &LocalEngine{
		Board:   game.NewBoard(size),
		Players: [2]agent.Player{players[0], players[1]},
	}
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (game.Owner, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	current := game.First
	log.Info().Msgf("%v is starting on a %dx%d board", current, e.Board.Size(), e.Board.Size())

	for step := 1; e.Board.Winner() == game.Empty && !e.Board.Full(); step++ {
		player := e.Players[current-1]
		before := e.Board.Clone()

		start := time.Now()
		move, search, err := play(player, e.Board)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%v at step %d: %w", current, step, err)
		}
		if !e.Board.Equal(before) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%v at step %d: %w", current, step, ErrBoardMutated)
		}
		if !e.Board.InBounds(move) || !e.Board.PlacePiece(move, current) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%v played %v at step %d: %w", current, move, step, ErrIllegalMove)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          step,
			Player:        current,
			Move:          move,
			Duration:      time.Since(start),
			SearchMetrics: search,
		})
		log.Debug().Msgf("step %d: %v plays %v", step, current, move)

		current = current.Opponent()
	}

	winner := e.Board.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves, winner: %v", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics, nil
}

func play(player agent.Player, board *game.Board) (game.Move, searcher.SearchMetrics, error) {
	if p, ok := player.(agent.MetricsPlayer); ok {
		return p.PlayWithMetrics(board)
	}
	move, err := player.Play(board)
	return move, searcher.SearchMetrics{}, err
}
