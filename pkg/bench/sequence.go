package bench

import (
	"context"
	"time"

	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/IlikeChooros/go-uttt/pkg/uttt"
	"github.com/pkg/errors"
)

// Sequence plays sets of games between the same two policies,
// X always moves first. The board is reused and reset before every game.
type Sequence struct {
	Games    int
	PlayerX  policy.Policy
	PlayerO  policy.Policy
	Listener Listener
	board    *uttt.Board
	sets     int
	ctx      context.Context
}

func NewSequence(games int, x, o policy.Policy) *Sequence {
	return &Sequence{
		Games:    games,
		PlayerX:  x,
		PlayerO:  o,
		Listener: DefaultListener{},
		board:    uttt.NewBoard(),
		ctx:      context.Background(),
	}
}

func (s *Sequence) WithContext(ctx context.Context) *Sequence {
	s.ctx = ctx
	return s
}

func (s *Sequence) WithListener(l Listener) *Sequence {
	if l == nil {
		l = DefaultListener{}
	}
	s.Listener = l
	return s
}

// Board the games are played on
func (s *Sequence) Board() *uttt.Board {
	return s.board
}

// Number of finished sets
func (s *Sequence) Sets() int {
	return s.sets
}

// Run plays one set of 'Games' games and returns the outcome fractions
func (s *Sequence) Run() (Fractions, error) {
	if s.Games <= 0 {
		return Fractions{}, errors.Errorf("invalid number of games %d", s.Games)
	}
	if s.PlayerX == nil || s.PlayerO == nil {
		return Fractions{}, errors.New("both players are required")
	}

	start := time.Now()
	set := s.sets
	stats := Stats{}
	for game := 0; game < s.Games; game++ {
		s.board.Reset()
		onMove := func(moveNum int) {
			s.Listener.OnMoveMade(GameInfo{Set: set, Game: game, NGames: s.Games, MoveNum: moveNum, Stats: stats})
		}

		status, err := playGame(s.ctx, s.board, s.PlayerX, s.PlayerO, onMove)
		if err != nil {
			return stats.Fractions(), errors.Wrapf(err, "set %d, game %d", set, game)
		}

		stats.Add(status)
		s.Listener.OnFinishedGame(GameInfo{
			Set:     set,
			Game:    game,
			NGames:  s.Games,
			MoveNum: len(s.board.History()),
			Status:  status,
			Stats:   stats,
		})
	}

	fractions := stats.Fractions()
	s.sets++
	s.Listener.OnFinishedSet(SetInfo{Set: set, Stats: stats, Fractions: fractions, Elapsed: time.Since(start)})
	return fractions, nil
}

// RunSets plays n sets one after another, stops at the first error
func (s *Sequence) RunSets(n int) ([]Fractions, error) {
	results := make([]Fractions, 0, n)
	for i := 0; i < n; i++ {
		f, err := s.Run()
		if err != nil {
			return results, err
		}
		results = append(results, f)
	}
	return results, nil
}
