package tui

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/progress"
)

// loggingSink forwards progress to the next sink and logs failures.
type loggingSink struct {
	next   progress.Sink
	logger *log.Logger
}

// newLoggingSink wraps next. A nil next yields progress.Discard.
func newLoggingSink(next progress.Sink, logger *log.Logger) progress.Sink {
	if next == nil {
		return progress.Discard{}
	}
	return &loggingSink{next: next, logger: logger}
}

func (s *loggingSink) RecordLevel(r progress.LevelResult) error {
	err := s.next.RecordLevel(r)
	if err != nil {
		s.logger.Warn("could not record level", "mode", r.Mode, "level", r.Level, "error", err)
	} else {
		s.logger.Debug("level recorded", "mode", r.Mode, "level", r.Level, "score", r.Score, "stars", r.Stars)
	}
	return err
}

func (s *loggingSink) RecordUnlock(u progress.Unlock) error {
	err := s.next.RecordUnlock(u)
	if err != nil {
		s.logger.Warn("could not record unlock", "id", u.ID, "error", err)
	} else {
		s.logger.Info("achievement unlocked", "id", u.ID, "level", u.Level)
	}
	return err
}

// modeOf maps a game ID to the progress mode it records under.
func modeOf(gameID string) string {
	if strings.HasSuffix(gameID, "_endless") {
		return "endless"
	}
	return "campaign"
}
