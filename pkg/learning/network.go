package learning

import (
	"encoding/json"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	deep "github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var _ policy.ValueModel = (*NetworkModel)(nil)

// NetworkModel approximates the state values with a small neural network,
// input is uttt.Features of the state, output a single value in (0, 1).
// The moves of a game are collected and trained on once the game is over.
type NetworkModel struct {
	network      *deep.Neural
	hidden       []int
	learningRate float64
	momentum     float64
	epochs       int
	examples     training.Examples
	logger       zerolog.Logger
}

type networkSnapshot struct {
	Hidden  []int         `json:"hidden"`
	Weights [][][]float64 `json:"weights"`
}

func NewNetworkModel(hidden []int, learningRate, momentum float64, epochs int) *NetworkModel {
	return &NetworkModel{
		network:      newNetwork(hidden),
		hidden:       append([]int(nil), hidden...),
		learningRate: learningRate,
		momentum:     momentum,
		epochs:       max(1, epochs),
		logger:       zerolog.Nop(),
	}
}

func newNetwork(hidden []int) *deep.Neural {
	layout := append(append([]int(nil), hidden...), 1)
	return deep.NewNeural(&deep.Config{
		Inputs:     uttt.EncodedLen,
		Layout:     layout,
		Activation: deep.ActivationSigmoid,
		Mode:       deep.ModeBinary,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
}

func (m *NetworkModel) SetLogger(logger zerolog.Logger) *NetworkModel {
	m.logger = logger
	return m
}

// Examples waiting for the end of the game
func (m *NetworkModel) Pending() int {
	return len(m.examples)
}

func (m *NetworkModel) Value(player uttt.PieceType, _ policy.BoardView, state uttt.EncodedState) float64 {
	if v, ok := terminalValue(player, state); ok {
		return v
	}
	return m.network.Predict(uttt.Features(state, player))[0]
}

func (m *NetworkModel) LearnFromMove(player uttt.PieceType, board policy.BoardView, prev uttt.EncodedState) {
	if board == nil || !player.IsPlayer() {
		return
	}
	target := m.Value(player, board, board.EncodedState())
	m.examples = append(m.examples, training.Example{
		Input:    uttt.Features(prev, player),
		Response: []float64{target},
	})
}

func (m *NetworkModel) ResetForNewGame() {
	m.examples = nil
}

// Train on the finished game's moves
func (m *NetworkModel) GameOver() {
	if len(m.examples) == 0 {
		return
	}

	trainer := training.NewTrainer(training.NewSGD(m.learningRate, m.momentum, 0.0, false), 0)
	trainer.Train(m.network, m.examples, nil, m.epochs)
	m.logger.Debug().Int("examples", len(m.examples)).Int("epochs", m.epochs).Msg("network trained")
	m.examples = nil
}

func (m *NetworkModel) Save(path string) error {
	data, err := json.Marshal(networkSnapshot{Hidden: m.hidden, Weights: m.network.Weights()})
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return writeFile(path, data)
}

// Load replaces the network, on error the model is left untouched
func (m *NetworkModel) Load(path string) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	snap := networkSnapshot{}
	if err := json.Unmarshal(data, &snap); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}
	if err := checkShape(snap); err != nil {
		return &PersistenceError{Op: "load", Path: path, Err: err}
	}

	network := newNetwork(snap.Hidden)
	network.ApplyWeights(snap.Weights)
	m.network = network
	m.hidden = snap.Hidden
	m.examples = nil
	return nil
}

// Weights must match the layout: per layer, per neuron, one weight per input plus bias
func checkShape(snap networkSnapshot) error {
	layout := append(append([]int(nil), snap.Hidden...), 1)
	if len(snap.Weights) != len(layout) {
		return errors.Errorf("expected %d layers, got %d", len(layout), len(snap.Weights))
	}

	inputs := uttt.EncodedLen
	for i, neurons := range layout {
		if len(snap.Weights[i]) != neurons {
			return errors.Errorf("layer %d: expected %d neurons, got %d", i, neurons, len(snap.Weights[i]))
		}
		for j, w := range snap.Weights[i] {
			if len(w) != inputs+1 {
				return errors.Errorf("layer %d neuron %d: expected %d weights, got %d", i, j, inputs+1, len(w))
			}
		}
		inputs = neurons
	}
	return nil
}
