package metrics

import (
	"hex/game"
	"hex/searcher"
	"time"
)

type AgentKind string

const (
	MCTSAgent   AgentKind = "mcts"
	RandomAgent AgentKind = "random"
)

// AgentConfig describes one side of a match-up.
type AgentConfig struct {
	ID          int
	Kind        AgentKind
	Duration    time.Duration // Search budget per move, 0 plays a random move
	Episodes    int           // Optional episode cap per move, 0 for none
	Exploration float64
	Seed        uint64 // 0 seeds from the clock
}

type MoveMetric struct {
	Step     int
	Player   game.Owner
	Move     game.Move
	Duration time.Duration
	searcher.SearchMetrics
}

type GameMetric struct {
	Winner     game.Owner
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type GameRecord struct {
	ID     string
	Agent1 int // AgentConfig.ID playing First
	Agent2 int // AgentConfig.ID playing Second
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}
