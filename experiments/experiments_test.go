package experiments

import (
	"hex/experiments/metrics"
	"hex/searcher"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("random against random", func(t *testing.T) {
		config1 := metrics.AgentConfig{ID: 1, Kind: metrics.RandomAgent, Seed: 10}
		config2 := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 20}

		summary, err := Run("random", 4, 6, config1, config2, nil)

		require.NoError(t, err)
		require.Equal(t, 6, summary.Games)
		require.Equal(t, 6, summary.Wins[1]+summary.Wins[2], "Every Hex game has a winner")
	})

	t.Run("mcts against random writes records", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir(), "mcts_vs_random")
		require.NoError(t, err)
		config1 := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent, Duration: time.Minute, Episodes: 100, Exploration: 1.4, Seed: 5}
		config2 := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: 6}

		summary, err := Run("mcts_vs_random", 3, 2, config1, config2, writer)

		require.NoError(t, err)
		require.Equal(t, 2, summary.Games)
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			info, err := os.Stat(filepath.Join(writer.Dir(), file))
			require.NoError(t, err, "%s should exist", file)
			require.Positive(t, info.Size(), "%s should not be empty", file)
		}
	})

	t.Run("unknown agent kind", func(t *testing.T) {
		config1 := metrics.AgentConfig{ID: 1, Kind: "minimax"}
		config2 := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent}

		_, err := Run("bad", 3, 1, config1, config2, nil)

		require.ErrorContains(t, err, "unknown agent kind")
	})
}

func TestCreateOptions(t *testing.T) {
	t.Run("zero values reach the searcher", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent}

		m := searcher.NewMCTS(createOptions(config, nil)...)

		require.Zero(t, m.Duration(), "A zero time limit should not become the default")
		require.Zero(t, m.Exploration(), "Zero exploration should not become the default")
	})

	t.Run("configured values reach the searcher", func(t *testing.T) {
		config := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent, Duration: 50 * time.Millisecond, Exploration: 0.7}

		m := searcher.NewMCTS(createOptions(config, nil)...)

		require.Equal(t, 50*time.Millisecond, m.Duration())
		require.Equal(t, 0.7, m.Exploration())
	})
}
