package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-uttt/internal/config"
	"github.com/IlikeChooros/go-uttt/pkg/bench"
	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Config keys set by the command flags
var playFlags = map[string]string{
	"model.kind": "model",
	"model.path": "model-path",
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the trained model, you are O",
		RunE:  runPlay,
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.String("model", def.Model.Kind, "Value model (table, network)")
	flags.String("model-path", def.Model.Path, "Saved model to play against")

	return cmd
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd, playFlags)
	if err != nil {
		return err
	}

	model, err := loadModel(cfg, logger, true)
	if err != nil {
		return err
	}

	board := uttt.NewBoard()
	agent := policy.NewFrozenGreedy(model)
	human := policy.NewInteractive(cmd.InOrStdin(), cmd.OutOrStdout())

	status, err := bench.PlayGame(board, agent, human)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := board.Render(out); err != nil {
		return err
	}
	switch status.Winner() {
	case uttt.PieceCircle:
		fmt.Fprintln(out, "you won")
	case uttt.PieceCross:
		fmt.Fprintln(out, "you lost")
	default:
		fmt.Fprintln(out, "draw")
	}
	return nil
}
