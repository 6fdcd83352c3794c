package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-uttt/internal/config"
	"github.com/IlikeChooros/go-uttt/pkg/bench"
	"github.com/IlikeChooros/go-uttt/pkg/policy"
)

// Config keys set by the command flags
var evalFlags = map[string]string{
	"games":      "games",
	"model.kind": "model",
	"model.path": "model-path",
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Play the frozen model (X) against a random player (O)",
		RunE:  runEval,
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.Int("games", def.Games, "Number of games")
	flags.String("model", def.Model.Kind, "Value model (table, network)")
	flags.String("model-path", def.Model.Path, "Saved model to evaluate")

	return cmd
}

func runEval(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, evalFlags)
	if err != nil {
		return err
	}

	model, err := loadModel(cfg, logger, true)
	if err != nil {
		return err
	}

	seq := bench.NewSequence(cfg.Games, policy.NewFrozenGreedy(model), policy.NewRandom(newRand(cfg.Seed))).
		WithContext(cmd.Context()).
		WithListener(bench.NewLogListener(logger))
	fractions, err := seq.Run()
	if err != nil {
		return err
	}
	return bench.WriteSummary(os.Stdout, []bench.Fractions{fractions})
}
