package domain

import "time"

// VoteState is a step of the vote submission state machine
type VoteState string

const (
	VoteStateIdle              VoteState = "idle"
	VoteStatePreparing         VoteState = "preparing"
	VoteStateNetworkCheck      VoteState = "network_check"
	VoteStateAwaitingSignature VoteState = "awaiting_signature"
	VoteStateSubmitted         VoteState = "submitted"
	VoteStateConfirming        VoteState = "confirming"
	VoteStateConfirmed         VoteState = "confirmed"
	VoteStateFailed            VoteState = "failed"
)

// Terminal reports whether no further transition can happen
func (s VoteState) Terminal() bool {
	return s == VoteStateConfirmed || s == VoteStateFailed
}

// FailureKind distinguishes why a vote attempt failed
type FailureKind string

const (
	FailureKindNone     FailureKind = ""
	FailureKindRejected FailureKind = "rejected"
	FailureKindNetwork  FailureKind = "network"
	FailureKindReverted FailureKind = "reverted"
	FailureKindOther    FailureKind = "other"
)

// VoteAttempt is a snapshot of one user initiated vote
type VoteAttempt struct {
	ID          string      `json:"id"`
	PollID      string      `json:"poll_id"`
	ChainID     uint64      `json:"chain_id"`
	AnswerIDs   []uint64    `json:"answer_ids"`
	State       VoteState   `json:"state"`
	TxHash      string      `json:"tx_hash,omitempty"`
	BlockNumber uint64      `json:"block_number,omitempty"`
	Failure     FailureKind `json:"failure,omitempty"`
	Error       string      `json:"error,omitempty"`
	Message     string      `json:"message,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EventType is the kind of a published poll event
type EventType string

const (
	EventTypeVoteNetworkCheck      EventType = "vote.network_check"
	EventTypeVoteAwaitingSignature EventType = "vote.awaiting_signature"
	EventTypeVoteSubmitted         EventType = "vote.submitted"
	EventTypeVoteConfirming        EventType = "vote.confirming"
	EventTypeVoteConfirmed         EventType = "vote.confirmed"
	EventTypeVoteFailed            EventType = "vote.failed"
	EventTypePollsRefreshed        EventType = "polls.refreshed"
)

// VoteEventType maps a vote state to its event type
func VoteEventType(state VoteState) EventType {
	return EventType("vote." + string(state))
}

// PollEvent is the message published to the broker
type PollEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	PollID    string    `json:"poll_id,omitempty"`
	AttemptID string    `json:"attempt_id,omitempty"`
	ChainID   uint64    `json:"chain_id,omitempty"`
	TxHash    string    `json:"tx_hash,omitempty"`
	PollCount int       `json:"poll_count,omitempty"`
	Failed    []string  `json:"failed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
