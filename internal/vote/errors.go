package vote

import (
	"errors"
	"strings"

	"github.com/feral-file/ff-survey/internal/domain"
)

const (
	MessageConfirmed     = "Vote confirmed! Results are being refreshed."
	MessageRejected      = "Transaction was rejected in the wallet."
	MessageNetworkSwitch = "Please switch your wallet to the required network and try again."
	MessageReverted      = "Transaction reverted on-chain."
	MessageFailed        = "Failed to submit vote. Please try again."
)

var rejectionPhrases = []string{
	"user rejected",
	"user denied",
	"request denied",
}

// IsUserRejection reports whether a wallet error means the signature was declined
func IsUserRejection(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrUserRejected) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range rejectionPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// classify maps a failure to its kind and user facing message
func classify(err error) (domain.FailureKind, string) {
	switch {
	case IsUserRejection(err):
		return domain.FailureKindRejected, MessageRejected
	case errors.Is(err, domain.ErrNetworkSwitchFailed), errors.Is(err, domain.ErrUnsupportedChain):
		return domain.FailureKindNetwork, MessageNetworkSwitch
	case errors.Is(err, domain.ErrTransactionReverted):
		return domain.FailureKindReverted, MessageReverted
	default:
		return domain.FailureKindOther, MessageFailed
	}
}
