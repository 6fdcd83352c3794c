package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-uttt/internal/config"
	"github.com/IlikeChooros/go-uttt/pkg/bench"
	"github.com/IlikeChooros/go-uttt/pkg/learning"
	"github.com/IlikeChooros/go-uttt/pkg/policy"
)

// Config keys set by the command flags
var trainFlags = map[string]string{
	"sets":         "sets",
	"games":        "games",
	"epsilon":      "epsilon",
	"model.kind":   "model",
	"model.path":   "model-path",
	"results_path": "results",
}

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the epsilon-greedy player (X) against a random player (O)",
		RunE:  runTrain,
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.Int("sets", def.Sets, "Number of sets of games")
	flags.Int("games", def.Games, "Games per set")
	flags.Float64("epsilon", def.Epsilon, "Initial exploration probability")
	flags.String("model", def.Model.Kind, "Value model (table, network)")
	flags.String("model-path", def.Model.Path, "Where the model is loaded from and saved to")
	flags.String("results", def.ResultsPath, "Parquet file for the per-set results")

	return cmd
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, trainFlags)
	if err != nil {
		return err
	}

	model, err := loadModel(cfg, logger, false)
	if err != nil {
		return err
	}

	rng := newRand(cfg.Seed)
	learner := policy.NewEpsilonGreedy(model, rng).
		SetLogger(logger).
		SetEpsilon(cfg.Epsilon)
	learner.Schedule().
		SetDecayStep(cfg.DecayStep).
		SetCheckpointInterval(cfg.CheckpointInterval)

	listeners := []bench.Listener{bench.NewLogListener(logger)}
	var results *bench.ResultsWriter
	if cfg.ResultsPath != "" {
		results = bench.NewResultsWriter(cfg.ResultsPath).SetEpsilonSource(learner.Epsilon)
		listeners = append(listeners, results)
	}

	logger.Info().
		Int("sets", cfg.Sets).
		Int("games", cfg.Games).
		Float64("epsilon", cfg.Epsilon).
		Str("model", cfg.Model.Kind).
		Msg("training started")

	seq := bench.NewSequence(cfg.Games, learner, policy.NewRandom(rng)).
		WithContext(cmd.Context()).
		WithListener(bench.NewMultiListener(listeners...))
	fractions, runErr := seq.RunSets(cfg.Sets)

	// Keep whatever was learned, even when interrupted
	if err := learner.SaveLearning(cfg.Model.Path); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.Model.Path).Msg("model saved")

	if results != nil {
		if err := results.Flush(); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.ResultsPath).Str("run_id", results.RunID()).Msg("results written")
	}

	if err := bench.WriteSummary(os.Stdout, fractions); err != nil {
		return err
	}
	return runErr
}

// Build the configured model, loading saved parameters when present
func loadModel(cfg *config.Config, logger zerolog.Logger, required bool) (policy.ValueModel, error) {
	model, err := learning.New(cfg.ModelOptions())
	if err != nil {
		return nil, err
	}
	if network, ok := model.(*learning.NetworkModel); ok {
		network.SetLogger(logger)
	}

	if _, err := os.Stat(cfg.Model.Path); err != nil {
		if required {
			return nil, errors.Wrapf(err, "no model found at %s", cfg.Model.Path)
		}
		logger.Info().Str("path", cfg.Model.Path).Msg("starting with a fresh model")
		return model, nil
	}

	if err := model.Load(cfg.Model.Path); err != nil {
		return nil, err
	}
	logger.Info().Str("path", cfg.Model.Path).Msg("model loaded")
	return model, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
