package game

import (
	"errors"

	"golang.org/x/exp/rand"
)

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrInvalidOwner = errors.New("owner must be player 1 or player 2")
)

// RandomMove picks a uniformly random empty cell. It fails with ErrNoLegalMoves on a full board
// rather than returning a default move.
func (b *Board) RandomMove(rng *rand.Rand) (Move, error) {
	moves := b.PossibleMoves()
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMoves
	}
	return moves[rng.Intn(len(moves))], nil
}
