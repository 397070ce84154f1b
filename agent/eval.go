package agent

import (
	"fmt"
	"hex/game"
	"hex/searcher"
)

// MCTSPlayer searches with MCTS for every move.
type MCTSPlayer struct {
	id   game.Owner
	mcts *searcher.MCTS
}

// NewMCTSPlayer returns an MCTS player for id. The time limit defaults to
// searcher.DefaultDuration and is set with searcher.WithDuration.
func NewMCTSPlayer(id game.Owner, options ...searcher.Option) (*MCTSPlayer, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("mcts player %d: %w", id, game.ErrInvalidOwner)
	}
	return &MCTSPlayer{id: id, mcts: searcher.NewMCTS(options...)}, nil
}

func (p *MCTSPlayer) ID() game.Owner {
	return p.id
}

func (p *MCTSPlayer) Play(board *game.Board) (game.Move, error) {
	move, _, err := p.mcts.FindMove(board, p.id)
	return move, err
}

// PlayWithMetrics is Play for drivers that record search statistics.
func (p *MCTSPlayer) PlayWithMetrics(board *game.Board) (game.Move, searcher.SearchMetrics, error) {
	return p.mcts.FindMove(board, p.id)
}
