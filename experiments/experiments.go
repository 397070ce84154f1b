package experiments

import (
	"fmt"
	"hex/agent"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary counts the games won by each agent config ID.
type Summary struct {
	Games int
	Wins  map[int]int
}

// Run plays a number of games between two agent configs on a board of the given size,
// swapping which config opens every game. Records are written when writer is not nil.
func Run(name string, size, games int, config1, config2 metrics.AgentConfig, writer *metrics.Writer) (Summary, error) {
	summary := Summary{Wins: map[int]int{config1.ID: 0, config2.ID: 0}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment between agent1=%+v and agent2=%+v...", name, config1, config2)

	for i := 0; i < games; i++ {
		first, second := config1, config2
		if i%2 == 1 {
			first, second = config2, config1
		}
		log.Info().Msgf("starting game %d of %d...", i+1, games)

		winner, gameMetric, moveMetrics, err := runGame(size, i, first, second)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := uuid.NewString()
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     first.ID,
			Agent2:     second.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		summary.Games++
		if winner == game.First {
			summary.Wins[first.ID]++
		} else if winner == game.Second {
			summary.Wins[second.ID]++
		}
		log.Info().Msgf("completed game %d with winner: %v", i+1, winner)
	}

	log.Info().Msgf("completed %s experiment", name)

	if writer == nil {
		return summary, nil
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{config1, config2}); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game and returns the winning owner
func runGame(size, index int, first, second metrics.AgentConfig) (game.Owner, metrics.GameMetric, []metrics.MoveMetric, error) {
	p1, err := createPlayer(first, game.First, index)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	p2, err := createPlayer(second, game.Second, index)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(size, p1, p2)
	return e.Run()
}

func createPlayer(config metrics.AgentConfig, id game.Owner, index int) (agent.Player, error) {
	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed + uint64(index)))
	}

	switch config.Kind {
	case metrics.MCTSAgent:
		return agent.NewMCTSPlayer(id, createOptions(config, rng)...)
	case metrics.RandomAgent:
		return agent.NewRandomPlayer(id, rng)
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createOptions(config metrics.AgentConfig, rng *rand.Rand) []searcher.Option {
	options := []searcher.Option{
		searcher.WithDuration(config.Duration),
		searcher.WithExploration(config.Exploration),
	}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if rng != nil {
		options = append(options, searcher.WithRand(rng))
	}

	options = append(options, searcher.WithMetrics())
	return options
}
