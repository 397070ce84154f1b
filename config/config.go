package config

import (
	"fmt"
	"hex/experiments/metrics"
	"hex/searcher"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AgentConfig struct {
	Kind        string  `mapstructure:"kind"`
	TimeLimit   float64 `mapstructure:"time_limit"` // Seconds per move, 0 plays a random move
	Episodes    int     `mapstructure:"episodes"`
	Exploration float64 `mapstructure:"exploration"`
	Seed        uint64  `mapstructure:"seed"`
}

type Config struct {
	Name      string      `mapstructure:"name"`
	BoardSize int         `mapstructure:"board_size"`
	Games     int         `mapstructure:"games"`
	OutputDir string      `mapstructure:"output_dir"` // Empty disables CSV records
	LogLevel  string      `mapstructure:"log_level"`
	Player1   AgentConfig `mapstructure:"player1"`
	Player2   AgentConfig `mapstructure:"player2"`
}

// Load reads the configuration from defaults, an optional file and HEX_ prefixed environment
// variables, in increasing order of precedence.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("hex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "match")
	v.SetDefault("board_size", 7)
	v.SetDefault("games", 2)
	v.SetDefault("output_dir", "")
	v.SetDefault("log_level", "info")
	for _, player := range []string{"player1", "player2"} {
		v.SetDefault(player+".kind", string(metrics.MCTSAgent))
		v.SetDefault(player+".time_limit", searcher.DefaultDuration.Seconds())
		v.SetDefault(player+".episodes", 0)
		v.SetDefault(player+".exploration", searcher.DefaultExploration)
		v.SetDefault(player+".seed", 0)
	}
}

func (c *Config) Validate() error {
	if c.BoardSize <= 0 {
		return fmt.Errorf("board_size must be positive, got %d", c.BoardSize)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	for i, a := range []AgentConfig{c.Player1, c.Player2} {
		switch metrics.AgentKind(a.Kind) {
		case metrics.MCTSAgent, metrics.RandomAgent:
		default:
			return fmt.Errorf("player%d: unknown kind %q", i+1, a.Kind)
		}
		if a.TimeLimit < 0 || math.IsNaN(a.TimeLimit) || math.IsInf(a.TimeLimit, 0) {
			return fmt.Errorf("player%d: time_limit must be a non-negative number of seconds, got %v", i+1, a.TimeLimit)
		}
		if math.IsNaN(a.Exploration) || math.IsInf(a.Exploration, 0) {
			return fmt.Errorf("player%d: exploration must be finite, got %v", i+1, a.Exploration)
		}
		if a.Episodes < 0 {
			return fmt.Errorf("player%d: episodes must not be negative", i+1)
		}
	}
	return nil
}

// Agents converts both player sections into experiment agent configs with IDs 1 and 2.
func (c *Config) Agents() (metrics.AgentConfig, metrics.AgentConfig) {
	convert := func(id int, a AgentConfig) metrics.AgentConfig {
		return metrics.AgentConfig{
			ID:          id,
			Kind:        metrics.AgentKind(a.Kind),
			Duration:    time.Duration(a.TimeLimit * float64(time.Second)),
			Episodes:    a.Episodes,
			Exploration: a.Exploration,
			Seed:        a.Seed,
		}
	}
	return convert(1, c.Player1), convert(2, c.Player2)
}
