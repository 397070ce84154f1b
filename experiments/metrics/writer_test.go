package metrics

import (
	"encoding/csv"
	"hex/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	t.Run("creates the run directory", func(t *testing.T) {
		root := t.TempDir()

		w, err := NewWriter(root, "selfplay")

		require.NoError(t, err)
		require.DirExists(t, w.Dir())
		require.Equal(t, filepath.Join(root, "selfplay"), filepath.Dir(w.Dir()), "Run directory should sit under the experiment name")
	})

	t.Run("writes agent configs", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "configs")
		require.NoError(t, err)

		err = w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: MCTSAgent, Duration: time.Second, Exploration: 1.4, Seed: 9},
			{ID: 2, Kind: RandomAgent},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "duration", "episodes", "exploration", "seed"},
			{"1", "mcts", "1s", "0", "1.4", "9"},
			{"2", "random", "0s", "0", "0", "0"},
		}, rows)
	})

	t.Run("writes game and move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "records")
		require.NoError(t, err)
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		err = w.WriteGameRecords([]GameRecord{{
			ID: "g1", Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{Winner: game.Second, StartTime: start, EndTime: start.Add(time.Minute), Duration: time.Minute, TotalMoves: 9},
		}})
		require.NoError(t, err)
		err = w.WriteMoveRecords([]MoveRecord{{
			Game:       "g1",
			MoveMetric: MoveMetric{Step: 1, Player: game.First, Move: game.Move{Row: 2, Col: 0}, Duration: time.Millisecond},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2, "Header plus one game")
		require.Equal(t, []string{"g1", "1", "2", "2", "2024-05-01T12:00:00Z", "2024-05-01T12:01:00Z", "1m0s", "9"}, games[1])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2, "Header plus one move")
		require.Equal(t, []string{"g1", "1", "1", "2", "0", "1ms", "0", "0", "0", "0"}, moves[1])
	})
}
