package engine

import (
	"errors"
	"hex/experiments/metrics"
	"hex/game"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrBoardMutated = errors.New("player left the board modified")
)

type Engine interface {
	// Run plays a game till one player connects their sides
	Run() (winner game.Owner, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
