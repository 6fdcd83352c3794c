package bench

import (
	"github.com/rs/zerolog"
)

// Listener gets notified about the progress of a sequence
type Listener interface {
	OnMoveMade(info GameInfo)
	OnFinishedGame(info GameInfo)
	OnFinishedSet(info SetInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnMoveMade(GameInfo)     {}
func (DefaultListener) OnFinishedGame(GameInfo) {}
func (DefaultListener) OnFinishedSet(SetInfo)   {}

// LogListener writes the progress to a zerolog logger,
// sets at info level, games at debug, moves at trace
type LogListener struct {
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnMoveMade(info GameInfo) {
	l.logger.Trace().Int("set", info.Set).Int("game", info.Game).Int("move", info.MoveNum).Msg("move made")
}

func (l *LogListener) OnFinishedGame(info GameInfo) {
	l.logger.Debug().
		Int("set", info.Set).
		Int("game", info.Game).
		Int("games", info.NGames).
		Int("moves", info.MoveNum).
		Stringer("status", info.Status).
		Msg("game finished")
}

func (l *LogListener) OnFinishedSet(info SetInfo) {
	l.logger.Info().
		Int("set", info.Set).
		Int("games", info.Fractions.Games).
		Float64("x_wins", info.Fractions.XWins).
		Float64("o_wins", info.Fractions.OWins).
		Float64("draws", info.Fractions.Draws).
		Dur("elapsed", info.Elapsed).
		Msg("set finished")
}

// MultiListener distributes the events between listeners
type MultiListener struct {
	listeners []Listener
}

func NewMultiListener(listeners ...Listener) *MultiListener {
	ml := &MultiListener{listeners: make([]Listener, 0, len(listeners))}
	for _, l := range listeners {
		if l != nil {
			ml.listeners = append(ml.listeners, l)
		}
	}
	return ml
}

func (ml *MultiListener) OnMoveMade(info GameInfo) {
	for _, l := range ml.listeners {
		l.OnMoveMade(info)
	}
}

func (ml *MultiListener) OnFinishedGame(info GameInfo) {
	for _, l := range ml.listeners {
		l.OnFinishedGame(info)
	}
}

func (ml *MultiListener) OnFinishedSet(info SetInfo) {
	for _, l := range ml.listeners {
		l.OnFinishedSet(info)
	}
}
