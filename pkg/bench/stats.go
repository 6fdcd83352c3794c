package bench

import (
	"time"

	"github.com/IlikeChooros/go-uttt/pkg/uttt"
)

// Stats counts the outcomes of a set of games
type Stats struct {
	XWins int
	OWins int
	Draws int
}

func (s *Stats) Total() int {
	return s.XWins + s.OWins + s.Draws
}

func (s *Stats) Add(status uttt.GameStatus) {
	switch status {
	case uttt.StatusXWins:
		s.XWins++
	case uttt.StatusOWins:
		s.OWins++
	case uttt.StatusDraw:
		s.Draws++
	}
}

// Fractions of the games won by X, won by O and drawn, they sum up to 1
// as long as at least one game was played
func (s *Stats) Fractions() Fractions {
	total := s.Total()
	if total == 0 {
		return Fractions{}
	}
	return Fractions{
		XWins: float64(s.XWins) / float64(total),
		OWins: float64(s.OWins) / float64(total),
		Draws: float64(s.Draws) / float64(total),
		Games: total,
	}
}

type Fractions struct {
	XWins float64 `json:"x_wins"`
	OWins float64 `json:"o_wins"`
	Draws float64 `json:"draws"`
	Games int     `json:"games"`
}

// GameInfo describes a finished (or ongoing) game of a set
type GameInfo struct {
	Set     int
	Game    int
	NGames  int
	MoveNum int
	Status  uttt.GameStatus
	Stats   Stats
}

// SetInfo describes a finished set of games
type SetInfo struct {
	Set       int
	Stats     Stats
	Fractions Fractions
	Elapsed   time.Duration
}
