package searcher

import (
	"fmt"
	"hex/game"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Policy maps each explored root move to its visit count.
type Policy map[game.Move]int

// MCTS searches a Hex position with UCT selection and uniform random rollouts.
// It plays every episode on the caller's board in place and takes the moves back afterwards,
// so a board must not be shared with anything else while a search runs.
type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

// WithDuration sets the wall-clock budget of one search. A zero budget runs no episodes and
// FindMove falls back to a random legal move.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration >= 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes additionally stops a search after a number of episodes.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if !math.IsNaN(c) && !math.IsInf(c, 0) {
			m.exploration = c
		}
	}
}

// WithRand sets the random source used for expansion, rollouts and the fallback move.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		duration:    DefaultDuration,
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Duration() time.Duration {
	return m.duration
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// FindMove searches the position for player and returns the most visited root move.
// The board is left exactly as it was passed in.
func (m *MCTS) FindMove(board *game.Board, player game.Owner) (game.Move, SearchMetrics, error) {
	t, metrics, err := m.search(board, player)
	if err != nil {
		return game.Move{}, metrics, err
	}

	move, err := m.decide(t, board)
	if err != nil {
		return game.Move{}, metrics, err
	}
	return move, metrics, nil
}

// decide returns the most visited root move, or a random legal move if the root was never
// expanded.
func (m *MCTS) decide(t *tree, board *game.Board) (game.Move, error) {
	root := t.root()
	if len(t.nodes[root].children) == 0 {
		move, err := board.RandomMove(m.rng)
		if err != nil {
			return game.Move{}, fmt.Errorf("fallback move: %w", err)
		}
		log.Debug().Msgf("no root children after search, playing random move %v", move)
		return move, nil
	}

	best := t.nodes[t.mostVisited(root)]
	log.Debug().Msgf("%v plays %v with %d of %d visits", t.nodes[root].toMove, best.move, best.visits, t.nodes[root].visits)
	return best.move, nil
}

// Simulate searches the position for player and returns the root visit counts.
func (m *MCTS) Simulate(board *game.Board, player game.Owner) (Policy, SearchMetrics, error) {
	t, metrics, err := m.search(board, player)
	if err != nil {
		return nil, metrics, err
	}
	return t.policy(), metrics, nil
}

func (m *MCTS) search(board *game.Board, player game.Owner) (*tree, SearchMetrics, error) {
	if !player.Valid() {
		return nil, SearchMetrics{}, fmt.Errorf("search for %v: %w", player, game.ErrInvalidOwner)
	}
	if board.Full() {
		return nil, SearchMetrics{}, fmt.Errorf("search for %v: %w", player, game.ErrNoLegalMoves)
	}

	t := newTree(board, player)
	undo := newTrail(board)

	m.metrics.Start()
	start := time.Now()
	episodes := 0
	for time.Since(start) < m.duration && (m.episodes == 0 || episodes < m.episodes) {
		m.episode(t, undo, player)
		episodes++
	}
	metrics := m.metrics.Complete()

	log.Debug().Msgf("searched %d episodes in %v, tree size %d", episodes, time.Since(start), t.size())
	return t, metrics, nil
}

// episode runs one selection, expansion, rollout and backup pass. All placements go through
// the trail and are undone when the episode returns, panics included.
func (m *MCTS) episode(t *tree, undo *trail, player game.Owner) {
	defer undo.unwind()

	// Selection
	current := t.root()
	depth := 0
	for len(t.nodes[current].untried) == 0 && len(t.nodes[current].children) > 0 {
		toMove := t.nodes[current].toMove
		current = t.bestChild(current, m.exploration)
		undo.place(t.nodes[current].move, toMove)
		depth++
	}

	// Expansion
	if len(t.nodes[current].untried) > 0 {
		toMove := t.nodes[current].toMove
		move := t.takeUntried(current, m.rng)
		undo.place(move, toMove)
		current = t.addChild(current, move, undo.board)
		m.metrics.AddNode()
		depth++
	}
	m.metrics.ObserveDepth(depth)

	// Rollout
	rollout(undo, t.nodes[current].toMove, m.rng)

	// Backpropagation
	result := Loss
	if undo.board.IsConnected(player) {
		result = Win
	}
	t.backup(current, result)
	m.metrics.AddEpisode(result == Win)
}

// rollout plays uniformly random moves, alternating from toMove, until a player connects
// or the board is full.
func rollout(undo *trail, toMove game.Owner, rng *rand.Rand) {
	board := undo.board
	for !board.IsConnected(game.First) && !board.IsConnected(game.Second) {
		move, err := board.RandomMove(rng)
		if err != nil { // Board is full
			return
		}
		undo.place(move, toMove)
		toMove = toMove.Opponent()
	}
}
