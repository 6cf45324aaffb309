package flappy

import (
	"github.com/charmbracelet/log"
)

// BestScoreStore persists the best score across process restarts.
// One value per installation, stored under a single fixed key.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(best int) error
}

// ScoreTracker holds the current run's score and the best score ever seen.
type ScoreTracker struct {
	current int
	best    int
	store   BestScoreStore // May be nil
	logger  *log.Logger
}

// NewScoreTracker loads the best score from store. A nil store keeps the
// best score in memory only; a failed load starts from zero.
func NewScoreTracker(store BestScoreStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.Default()
	}
	s := &ScoreTracker{store: store, logger: logger}

	if store != nil {
		best, err := store.LoadBestScore()
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		} else if best > 0 {
			s.best = best
		}
	}
	return s
}

// Increment adds one point and promotes the best score if it was beaten.
func (s *ScoreTracker) Increment() {
	s.current++
	s.maybePromoteBest()
}

// maybePromoteBest raises best to current and persists it right away.
// Persistence is best-effort: a failed save is logged and gameplay goes on.
func (s *ScoreTracker) maybePromoteBest() {
	if s.current <= s.best {
		return
	}
	s.best = s.current

	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(s.best); err != nil {
		s.logger.Warn("could not persist best score", "best", s.best, "error", err)
	}
}

// Reset starts a new run. The best score is never lowered.
func (s *ScoreTracker) Reset() {
	s.current = 0
}

// Current returns the score of the running game.
func (s *ScoreTracker) Current() int { return s.current }

// Best returns the best score seen so far.
func (s *ScoreTracker) Best() int { return s.best }
