package vote

import (
	"sync"
	"time"

	"github.com/feral-file/ff-survey/internal/domain"
)

// tracker keeps the latest snapshot of every vote attempt
type tracker struct {
	mu       sync.RWMutex
	attempts map[string]*domain.VoteAttempt
}

func newTracker() *tracker {
	return &tracker{attempts: make(map[string]*domain.VoteAttempt)}
}

func (t *tracker) add(a *domain.VoteAttempt) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts[a.ID] = a
}

// update applies fn under the lock and returns the resulting snapshot
func (t *tracker) update(id string, fn func(a *domain.VoteAttempt)) (domain.VoteAttempt, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, ok := t.attempts[id]
	if !ok {
		return domain.VoteAttempt{}, false
	}
	fn(a)
	return snapshot(a), true
}

func (t *tracker) get(id string) (domain.VoteAttempt, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	a, ok := t.attempts[id]
	if !ok {
		return domain.VoteAttempt{}, false
	}
	return snapshot(a), true
}

func snapshot(a *domain.VoteAttempt) domain.VoteAttempt {
	c := *a
	c.AnswerIDs = append([]uint64(nil), a.AnswerIDs...)
	return c
}

// prune drops finished attempts last updated before cutoff
func (t *tracker) prune(cutoff time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, a := range t.attempts {
		if a.State.Terminal() && a.UpdatedAt.Before(cutoff) {
			delete(t.attempts, id)
		}
	}
}
