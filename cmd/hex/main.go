package main

import (
	"flag"
	"hex/config"
	"hex/experiments"
	"hex/experiments/metrics"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML match config (optional)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	var writer *metrics.Writer
	if cfg.OutputDir != "" {
		writer, err = metrics.NewWriter(cfg.OutputDir, cfg.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create experiment writer")
		}
	}

	agent1, agent2 := cfg.Agents()
	summary, err := experiments.Run(cfg.Name, cfg.BoardSize, cfg.Games, agent1, agent2, writer)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	log.Info().
		Int("games", summary.Games).
		Int("agent1_wins", summary.Wins[agent1.ID]).
		Int("agent2_wins", summary.Wins[agent2.ID]).
		Msgf("%s finished", cfg.Name)
}
