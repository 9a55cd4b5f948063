package domain

import "errors"

var (
	// ErrPollNotFound is returned when a poll is not in the collection
	ErrPollNotFound = errors.New("poll not found")

	// ErrOptionNotFound is returned when an option does not belong to a poll
	ErrOptionNotFound = errors.New("option not found")

	// ErrInvalidPoll is returned when a poll definition is rejected
	ErrInvalidPoll = errors.New("invalid poll")

	// ErrIncompleteAnswers is returned when not every question has a selected answer
	ErrIncompleteAnswers = errors.New("every question must have exactly one selected answer")

	// ErrInvalidOptionID is returned when a composite option id does not parse
	ErrInvalidOptionID = errors.New("invalid option id")

	// ErrPollNotVotable is returned when a poll can not receive votes
	ErrPollNotVotable = errors.New("poll is not open for voting")

	// ErrPollStillOpen is returned when results are requested while voting is active
	ErrPollStillOpen = errors.New("poll results are hidden while voting is open")

	// ErrUnsupportedChain is returned when no RPC endpoint is configured for a chain
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrNetworkSwitchFailed is returned when the wallet could not move to the required chain
	ErrNetworkSwitchFailed = errors.New("network switch failed")

	// ErrUserRejected is returned when the signer declined the transaction
	ErrUserRejected = errors.New("user rejected the request")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrAllContractsFailed is returned when every configured contract failed to load
	ErrAllContractsFailed = errors.New("all survey contracts failed to load")

	// ErrAttemptNotFound is returned when a vote attempt id is unknown
	ErrAttemptNotFound = errors.New("vote attempt not found")

	// ErrEmptyTopic is returned when a poll suggestion is requested without a topic
	ErrEmptyTopic = errors.New("topic is required")

	// ErrAIUnavailable is returned when the AI service is not configured
	ErrAIUnavailable = errors.New("AI service is not configured")
)
