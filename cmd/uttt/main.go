package main

/*
Ultimate tic tac toe players: trains a value model by self play against a
random opponent, evaluates it, or lets a human play against it.

	uttt train --sets 50 --games 100 --epsilon 0.3 --model-path model.json
	uttt eval --games 500 --model-path model.json
	uttt play --model-path model.json
*/

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-uttt/internal/config"
)

var (
	v       = config.NewViper()
	cfgPath string
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "uttt",
	Short: "Ultimate tic tac toe learning players",
	Long: `Trains an epsilon-greedy player against a random one, then evaluates
the frozen model or plays it against a human in the terminal.

Settings come from flags, UTTT_* environment variables and the optional
config file, in that order of precedence.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "Config file (yaml, toml or json)")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.Int64("seed", 0, "Random seed, 0 for a time based one")
	flags.BoolVar(&logJSON, "log-json", false, "Write logs as JSON instead of the console format")
	must(v.BindPFlag("log_level", flags.Lookup("log-level")))
	must(v.BindPFlag("seed", flags.Lookup("seed")))

	rootCmd.AddCommand(newTrainCmd(), newEvalCmd(), newPlayCmd())
}

// Flags are bound in init, a failure is a programming error
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Bind the command's flags, load the configuration and build the logger.
// Flags are bound when the command runs, the subcommands share config keys.
func setup(cmd *cobra.Command, flags map[string]string) (*config.Config, zerolog.Logger, error) {
	for key, name := range flags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, zerolog.Nop(), err
		}
	}

	cfg, err := config.Load(v, cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if logJSON {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return cfg, logger, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
