package agent

import (
	"hex/game"
	"hex/searcher"
)

// Player is anything that can take a turn on a Hex board. Play may use the board as scratch
// space but must hand it back unchanged; the driver applies the returned move itself.
type Player interface {
	ID() game.Owner
	Play(board *game.Board) (game.Move, error)
}

// MetricsPlayer is a Player that also reports the statistics of the search behind a move.
type MetricsPlayer interface {
	Player
	PlayWithMetrics(board *game.Board) (game.Move, searcher.SearchMetrics, error)
}
