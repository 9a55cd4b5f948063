package aggregator

import (
	"strings"
	"sync"

	"github.com/feral-file/ff-survey/internal/domain"
)

// PollStore is the in-memory poll collection keyed by poll id.
// Merge is its only mutation of polls; reads return copies.
type PollStore struct {
	mu      sync.RWMutex
	order   []string
	polls   map[string]domain.Poll
	loading map[string]bool
}

func NewPollStore() *PollStore {
	return &PollStore{
		polls:   make(map[string]domain.Poll),
		loading: make(map[string]bool),
	}
}

// Merge replaces polls with the same id and appends new ones.
// Polls absent from the batch are kept.
func (s *PollStore) Merge(batch []domain.Poll) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range batch {
		if _, ok := s.polls[p.ID]; !ok {
			s.order = append(s.order, p.ID)
		}
		s.polls[p.ID] = p.Clone()
	}
}

// Get returns a copy of the poll with the given id
func (s *PollStore) Get(id string) (domain.Poll, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.polls[id]
	if !ok {
		return domain.Poll{}, false
	}
	return p.Clone(), true
}

// List returns the polls in first-seen order, filtered by a case-insensitive
// substring of the question when query is not empty
func (s *PollStore) List(query string) []domain.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	polls := make([]domain.Poll, 0, len(s.order))
	for _, id := range s.order {
		p := s.polls[id]
		if query != "" && !strings.Contains(strings.ToLower(p.Question), query) {
			continue
		}
		polls = append(polls, p.Clone())
	}
	return polls
}

// SetLoading sets the loading flag of a contract
func (s *PollStore) SetLoading(contract string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading[contract] = loading
}

// Loading returns a snapshot of the per-contract loading flags
func (s *PollStore) Loading() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	flags := make(map[string]bool, len(s.loading))
	for k, v := range s.loading {
		flags[k] = v
	}
	return flags
}

// Len returns the number of polls
func (s *PollStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.polls)
}
