package policy

import (
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// FrozenGreedy always plays the model's best move and never updates the model.
// Used to evaluate or deploy a trained model.
type FrozenGreedy struct {
	seat
	model ValueModel
}

func NewFrozenGreedy(model ValueModel) *FrozenGreedy {
	return &FrozenGreedy{model: model}
}

func (p *FrozenGreedy) Kind() Kind {
	return KindFrozenGreedy
}

func (p *FrozenGreedy) Model() ValueModel {
	return p.model
}

func (p *FrozenGreedy) StartNewGame() {
	p.model.ResetForNewGame()
}

func (p *FrozenGreedy) SelectNextMove() (uttt.EncodedState, error) {
	prev := p.currentState()
	if !p.IsActive() {
		return prev, nil
	}

	candidates, err := candidateSubBoards(p.board)
	if err != nil {
		return prev, err
	}
	m, _, err := greedyMove(p.board, p.model, p.player, prev, candidates)
	if err != nil {
		return prev, err
	}
	return prev, commit(&p.seat, p.Kind(), m)
}

// Frozen parameters are never written
func (p *FrozenGreedy) SaveLearning(string) error {
	return nil
}

func (p *FrozenGreedy) LoadLearning(path string) error {
	return p.model.Load(path)
}
