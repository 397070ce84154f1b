package agent

import (
	"fmt"
	"hex/game"
	"time"

	"golang.org/x/exp/rand"
)

// RandomPlayer chooses uniformly among the empty cells.
type RandomPlayer struct {
	id  game.Owner
	rng *rand.Rand
}

// NewRandomPlayer returns a random player. A nil rng is
// replaced by a time-seeded one.
func NewRandomPlayer(id game.Owner, rng *rand.Rand) (*RandomPlayer, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("random player %d: %w", id, game.ErrInvalidOwner)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &RandomPlayer{id: id, rng: rng}, nil
}

func (p *RandomPlayer) ID() game.Owner {
	return p.id
}

func (p *RandomPlayer) Play(board *game.Board) (game.Move, error) {
	return board.RandomMove(p.rng)
}
