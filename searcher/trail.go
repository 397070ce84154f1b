package searcher

import (
	"fmt"
	"hex/game"
)

// trail is the undo stack of one episode. Every placement made while searching goes through it,
// and unwind takes them back last-in first-out so the board returns to its pre-episode state.
type trail struct {
	board *game.Board
	moves []game.Move
}

func newTrail(board *game.Board) *trail {
	return &trail{
		board: board,
		moves: make([]game.Move, 0, board.EmptyCells()),
	}
}

// place puts a piece for owner and records it. The tree only ever holds legal moves for the
// position it is replayed on, so an occupied cell means the board and tree are out of sync.
func (t *trail) place(move game.Move, owner game.Owner) {
	if !t.board.PlacePiece(move, owner) {
		panic(fmt.Sprintf("cannot place %v for %v: cell is not empty", move, owner))
	}
	t.moves = append(t.moves, move)
}

func (t *trail) len() int {
	return len(t.moves)
}

// unwind removes every recorded piece in reverse order and empties the trail.
func (t *trail) unwind() {
	for i := len(t.moves) - 1; i >= 0; i-- {
		t.board.RemovePiece(t.moves[i])
	}
	t.moves = t.moves[:0]
}
