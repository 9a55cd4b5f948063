package localpoll

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
)

// minOptions is the smallest number of non-empty options a local poll accepts
const minOptions = 2

// localQuestionID is the question id shared by every option of a local poll
const localQuestionID = 1

// CreateInput is the definition of a new local poll
type CreateInput struct {
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

//go:generate mockgen -source=registry.go -destination=../mocks/localpoll.go -package=mocks -mock_names=Registry=MockLocalPollRegistry
type Registry interface {
	// Create validates and prepends a new single question poll
	Create(input CreateInput) (domain.Poll, error)

	// Vote adds one vote to an option of a local poll
	Vote(pollID, optionID string) (domain.Poll, error)

	// Get returns a local poll by id
	Get(pollID string) (domain.Poll, error)

	// List returns the local polls, newest first, whose question contains the query
	List(query string) []domain.Poll
}

type registry struct {
	mu    sync.RWMutex
	polls []domain.Poll
	clock adapter.Clock
}

// NewRegistry creates an in-memory registry holding the given polls
func NewRegistry(clock adapter.Clock, seed ...domain.Poll) Registry {
	polls := make([]domain.Poll, 0, len(seed))
	for _, p := range seed {
		polls = append(polls, p.Clone())
	}
	return &registry{polls: polls, clock: clock}
}

// SamplePolls returns the demo polls a fresh deployment starts with
func SamplePolls(now time.Time) []domain.Poll {
	return []domain.Poll{
		newPoll("sample-frontend", "What is the best frontend framework?",
			"Let's settle this once and for all.", now,
			[]string{"React", "Vue", "Svelte", "Angular"}, []uint64{42, 28, 15, 10}),
		newPoll("sample-remote-work", "Preferred remote work schedule?",
			"How do you like to work?", now,
			[]string{"Fully Remote", "Hybrid (3/2)", "In Office"}, []uint64{120, 85, 12}),
	}
}

func newPoll(id, question, description string, createdAt time.Time, labels []string, votes []uint64) domain.Poll {
	options := make([]domain.PollOption, len(labels))
	for i, label := range labels {
		var count uint64
		if i < len(votes) {
			count = votes[i]
		}
		options[i] = domain.PollOption{
			ID:           fmt.Sprintf("%s-opt-%d", id, i+1),
			Text:         label,
			QuestionID:   localQuestionID,
			AnswerID:     uint64(i + 1),
			QuestionText: question,
			AnswerText:   label,
			Votes:        count,
		}
	}

	return domain.Poll{
		ID:          id,
		Question:    question,
		Description: description,
		Options:     options,
		State:       domain.OpenStateOpen,
		Source:      domain.PollSourceLocal,
		CreatedAt:   createdAt,
	}
}

func (r *registry) Create(input CreateInput) (domain.Poll, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return domain.Poll{}, fmt.Errorf("%w: question is required", domain.ErrInvalidPoll)
	}

	labels := make([]string, 0, len(input.Options))
	for _, o := range input.Options {
		if o = strings.TrimSpace(o); o != "" {
			labels = append(labels, o)
		}
	}
	if len(labels) < minOptions {
		return domain.Poll{}, fmt.Errorf("%w: at least %d options are required", domain.ErrInvalidPoll, minOptions)
	}

	poll := newPoll(uuid.NewString(), question, strings.TrimSpace(input.Description), r.clock.Now(), labels, nil)

	r.mu.Lock()
	r.polls = append([]domain.Poll{poll}, r.polls...)
	r.mu.Unlock()

	return poll.Clone(), nil
}

func (r *registry) Vote(pollID, optionID string) (domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(pollID)
	if i < 0 {
		return domain.Poll{}, domain.ErrPollNotFound
	}

	poll := &r.polls[i]
	for j := range poll.Options {
		if poll.Options[j].ID == optionID {
			poll.Options[j].Votes++
			return poll.Clone(), nil
		}
	}
	return domain.Poll{}, fmt.Errorf("%w: %s", domain.ErrOptionNotFound, optionID)
}

func (r *registry) Get(pollID string) (domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(pollID)
	if i < 0 {
		return domain.Poll{}, domain.ErrPollNotFound
	}
	return r.polls[i].Clone(), nil
}

func (r *registry) List(query string) []domain.Poll {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]domain.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		if q != "" && !strings.Contains(strings.ToLower(p.Question), q) {
			continue
		}
		result = append(result, p.Clone())
	}
	return result
}

// indexOf must be called with the lock held
func (r *registry) indexOf(pollID string) int {
	for i := range r.polls {
		if r.polls[i].ID == pollID {
			return i
		}
	}
	return -1
}
