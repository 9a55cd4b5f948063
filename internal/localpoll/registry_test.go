package localpoll_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/localpoll"
	"github.com/feral-file/ff-survey/internal/mocks"
	"github.com/feral-file/ff-survey/internal/pollview"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) localpoll.Registry {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()
	return localpoll.NewRegistry(clock, localpoll.SamplePolls(now)...)
}

func TestSamplePolls(t *testing.T) {
	r := newTestRegistry(t)

	polls := r.List("")
	require.Len(t, polls, 2)
	assert.Equal(t, "What is the best frontend framework?", polls[0].Question)
	assert.Equal(t, uint64(95), polls[0].TotalVotes())
	assert.Equal(t, "Preferred remote work schedule?", polls[1].Question)
	assert.Equal(t, uint64(217), polls[1].TotalVotes())
	assert.Equal(t, "Hybrid (3/2)", polls[1].Options[1].Text)

	view, err := pollview.Build(polls[0])
	require.NoError(t, err)
	require.Len(t, view.Questions, 1)
	assert.True(t, view.ShowResults)
	assert.Equal(t, "44.2", view.Questions[0].Answers[0].Percentage)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   localpoll.CreateInput
		options []string
		wantErr bool
	}{
		{
			name:    "trims and drops empty options",
			input:   localpoll.CreateInput{Question: "  Tabs or spaces? ", Options: []string{" Tabs ", "", "  ", "Spaces"}},
			options: []string{"Tabs", "Spaces"},
		},
		{
			name:    "empty question",
			input:   localpoll.CreateInput{Question: "   ", Options: []string{"A", "B"}},
			wantErr: true,
		},
		{
			name:    "single usable option",
			input:   localpoll.CreateInput{Question: "Q?", Options: []string{"A", " "}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t)
			poll, err := r.Create(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPoll)
				assert.Len(t, r.List(""), 2)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, poll.ID)
			assert.Equal(t, domain.PollSourceLocal, poll.Source)
			assert.Equal(t, now, poll.CreatedAt)

			texts := make([]string, 0, len(poll.Options))
			for _, o := range poll.Options {
				texts = append(texts, o.Text)
				assert.Zero(t, o.Votes)
			}
			assert.Equal(t, tt.options, texts)

			// newest first
			assert.Equal(t, poll.ID, r.List("")[0].ID)
		})
	}
}

func TestVote(t *testing.T) {
	r := newTestRegistry(t)
	poll := r.List("frontend")[0]

	updated, err := r.Vote(poll.ID, poll.Options[2].ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), updated.Options[2].Votes)

	got, err := r.Get(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), got.Options[2].Votes)

	_, err = r.Vote(poll.ID, "nope")
	assert.ErrorIs(t, err, domain.ErrOptionNotFound)

	_, err = r.Vote("nope", poll.Options[0].ID)
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

func TestList_Search(t *testing.T) {
	r := newTestRegistry(t)

	assert.Len(t, r.List("REMOTE"), 1)
	assert.Empty(t, r.List("blockchain"))

	// returned polls are copies
	polls := r.List("")
	polls[0].Options[0].Votes = 1000
	got, err := r.Get(polls[0].ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got.Options[0].Votes)
}
