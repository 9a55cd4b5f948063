package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_ID(t *testing.T) {
	tests := []struct {
		name        string
		chain       Chain
		expected    uint64
		expectError bool
	}{
		{name: "mainnet", chain: ChainEthereumMainnet, expected: 1},
		{name: "sepolia", chain: ChainEthereumSepolia, expected: 11155111},
		{name: "tezos is not evm", chain: Chain("tezos:mainnet"), expectError: true},
		{name: "zero chain id", chain: Chain("eip155:0"), expectError: true},
		{name: "garbage", chain: Chain("eip155:abc"), expectError: true},
		{name: "empty", chain: Chain(""), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.chain.ID()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnsupportedChain)
				assert.False(t, tt.chain.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
			assert.Equal(t, tt.chain, ChainFromID(id))
		})
	}
}

func TestSurveyContract_Key(t *testing.T) {
	c := SurveyContract{Address: "0x31d695c8a1a50340c3005fa53846019991d5b2e8", Chain: ChainEthereumSepolia}
	assert.Equal(t, "0x31d695C8a1a50340C3005FA53846019991D5b2E8", c.Key())
	assert.True(t, c.Valid())

	assert.False(t, SurveyContract{Address: "0x123", Chain: ChainEthereumSepolia}.Valid())
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x31d6...b2E8", ShortAddress("0x31d695C8a1a50340C3005FA53846019991D5b2E8"))
	assert.Equal(t, "0x1234", ShortAddress("0x1234"))
}

func TestNewSurveyOption(t *testing.T) {
	o := NewSurveyOption(2, 7, "Favourite colour?", "Blue - ish", 3)
	assert.Equal(t, "2-7", o.ID)
	assert.Equal(t, "Q2: Favourite colour? - Blue - ish", o.Text)
	assert.Equal(t, uint64(2), o.QuestionID)
	assert.Equal(t, uint64(7), o.AnswerID)
	assert.Equal(t, uint64(3), o.Votes)
}

func TestPoll_CloneIsDeep(t *testing.T) {
	p := Poll{
		ID:         "0xabc",
		Options:    []PollOption{NewSurveyOption(1, 1, "q", "a", 1)},
		AIAnalysis: StringPtr("insight"),
	}

	c := p.Clone()
	c.Options[0].Votes = 10
	*c.AIAnalysis = "changed"

	assert.Equal(t, uint64(1), p.Options[0].Votes)
	assert.Equal(t, "insight", *p.AIAnalysis)
}

func TestPoll_Stats(t *testing.T) {
	p := Poll{
		Options: []PollOption{
			NewSurveyOption(1, 1, "q", "a", 4),
			NewSurveyOption(1, 2, "q", "b", 6),
		},
	}
	assert.Equal(t, uint64(10), p.TotalVotes())
	assert.Equal(t, []ResultStat{{Label: "Q1: q - a", Votes: 4}, {Label: "Q1: q - b", Votes: 6}}, p.ResultStats())
	assert.Equal(t, "2 question(s) - Contract: 0x31d6...b2E8", SurveyDescription(2, "0x31d695C8a1a50340C3005FA53846019991D5b2E8"))
}

func TestVoteEventType(t *testing.T) {
	assert.Equal(t, EventTypeVoteConfirmed, VoteEventType(VoteStateConfirmed))
	assert.Equal(t, EventTypeVoteAwaitingSignature, VoteEventType(VoteStateAwaitingSignature))
	assert.True(t, VoteStateFailed.Terminal())
	assert.False(t, VoteStateConfirming.Terminal())
}
