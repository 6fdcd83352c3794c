// Package learning holds the value models the greedy policies score moves with.
package learning

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

// Value of a state nobody has learned anything about yet
const DefaultInitialValue = 0.5

// Step size of the temporal difference update
const DefaultAlpha = 0.4

type Kind string

const (
	KindTable   Kind = "table"
	KindNetwork Kind = "network"
)

// Options configure the model built by New, zero values fall back to defaults
type Options struct {
	Kind         Kind
	Alpha        float64
	Hidden       []int
	LearningRate float64
	Momentum     float64
	Epochs       int
}

func DefaultOptions() Options {
	return Options{
		Kind:         KindTable,
		Alpha:        DefaultAlpha,
		Hidden:       []int{64, 32},
		LearningRate: 0.01,
		Momentum:     0.5,
		Epochs:       1,
	}
}

// New builds the value model described by the options
func New(opts Options) (policy.ValueModel, error) {
	def := DefaultOptions()
	if opts.Alpha <= 0 {
		opts.Alpha = def.Alpha
	}
	if len(opts.Hidden) == 0 {
		opts.Hidden = def.Hidden
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = def.LearningRate
	}
	if opts.Epochs <= 0 {
		opts.Epochs = def.Epochs
	}

	switch opts.Kind {
	case KindTable, "":
		return NewTableModel(opts.Alpha), nil
	case KindNetwork:
		return NewNetworkModel(opts.Hidden, opts.LearningRate, opts.Momentum, opts.Epochs), nil
	default:
		return nil, errors.Errorf("unknown value model %q", opts.Kind)
	}
}

// PersistenceError is returned when a model can't be saved or loaded
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Score of a finished game for the player: 1 won, 0 lost, 0.5 draw.
// ok is false while the game is still going or the state is malformed.
func terminalValue(player uttt.PieceType, state uttt.EncodedState) (float64, bool) {
	status, err := uttt.DecodeStatus(state)
	if err != nil || !status.IsTerminal() {
		return 0, false
	}

	switch status.Winner() {
	case player:
		return 1, true
	case uttt.PieceNone:
		return 0.5, true
	default:
		return 0, true
	}
}

// Write through a temporary file, so a failed save never leaves half a file behind
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Op: "save", Path: path, Err: err}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	return data, nil
}
