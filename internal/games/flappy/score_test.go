package flappy

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
)

// memStore is an in-memory BestScoreStore.
type memStore struct {
	best    int
	saves   []int
	loadErr error
	saveErr error
}

func (m *memStore) LoadBestScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memStore) SaveBestScore(best int) error {
	m.saves = append(m.saves, best)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = best
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestScoreTrackerLoadsBest(t *testing.T) {
	s := NewScoreTracker(&memStore{best: 12}, quietLogger())

	if s.Best() != 12 {
		t.Errorf("Best = %d, expected 12", s.Best())
	}
	if s.Current() != 0 {
		t.Errorf("Current = %d, expected 0", s.Current())
	}
}

func TestScoreTrackerLoadError(t *testing.T) {
	s := NewScoreTracker(&memStore{best: 12, loadErr: errors.New("disk gone")}, quietLogger())

	if s.Best() != 0 {
		t.Errorf("A failed load should start from 0, got %d", s.Best())
	}
}

func TestScoreTrackerNilStore(t *testing.T) {
	s := NewScoreTracker(nil, nil)
	s.Increment()

	if s.Current() != 1 || s.Best() != 1 {
		t.Errorf("current=%d best=%d, expected 1/1", s.Current(), s.Best())
	}
}

func TestScoreTrackerPersistsOnlyNewBest(t *testing.T) {
	store := &memStore{best: 2}
	s := NewScoreTracker(store, quietLogger())

	for i := 0; i < 4; i++ {
		s.Increment()
	}

	if want := []int{3, 4}; !slices.Equal(store.saves, want) {
		t.Errorf("saves = %v, expected %v", store.saves, want)
	}
	if s.Best() != 4 {
		t.Errorf("Best = %d, expected 4", s.Best())
	}
}

func TestScoreTrackerSaveFailureKeepsPlaying(t *testing.T) {
	store := &memStore{saveErr: errors.New("read-only")}
	s := NewScoreTracker(store, quietLogger())

	s.Increment()
	s.Increment()

	if s.Current() != 2 || s.Best() != 2 {
		t.Errorf("current=%d best=%d, expected 2/2", s.Current(), s.Best())
	}
	if len(store.saves) != 2 {
		t.Errorf("Expected a save attempt per new best, got %v", store.saves)
	}
}

func TestScoreTrackerBestIsMonotonic(t *testing.T) {
	store := &memStore{}
	s := NewScoreTracker(store, quietLogger())

	runs := []struct {
		score    int
		wantBest int
	}{
		{3, 3},
		{1, 3},
		{5, 5},
		{2, 5},
		{0, 5},
	}

	for _, r := range runs {
		for i := 0; i < r.score; i++ {
			s.Increment()
		}
		if s.Best() != r.wantBest {
			t.Errorf("after a run of %d best = %d, expected %d", r.score, s.Best(), r.wantBest)
		}
		s.Reset()
		if s.Current() != 0 || s.Best() != r.wantBest {
			t.Errorf("Reset should clear current and keep best, got %d/%d", s.Current(), s.Best())
		}
	}

	// A fresh process reads the persisted best.
	restarted := NewScoreTracker(store, quietLogger())
	if restarted.Best() != 5 {
		t.Errorf("Best after restart = %d, expected 5", restarted.Best())
	}
}
