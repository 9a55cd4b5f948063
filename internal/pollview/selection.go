package pollview

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/feral-file/ff-survey/internal/domain"
)

// Selection maps a question id to the composite option id selected for it
type Selection map[uint64]string

// ParseSelection converts string keyed selections as received over JSON
func ParseSelection(raw map[string]string) (Selection, error) {
	sel := make(Selection, len(raw))
	for k, v := range raw {
		questionID, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: question id %q", domain.ErrInvalidOptionID, k)
		}
		sel[questionID] = v
	}
	return sel, nil
}

// Select records the option chosen for a question, replacing any previous choice
func (s Selection) Select(questionID uint64, optionID string) {
	s[questionID] = optionID
}

// IsFullyAnswered reports whether one answer is selected per question group
func IsFullyAnswered(groups []QuestionGroup, sel Selection) bool {
	return len(sel) == len(groups)
}

// AnswerIDs validates the selection against the groups and decodes the answer ids
// in ascending question order
func AnswerIDs(groups []QuestionGroup, sel Selection) ([]uint64, error) {
	if !IsFullyAnswered(groups, sel) {
		return nil, fmt.Errorf("%w: %d of %d questions answered", domain.ErrIncompleteAnswers, len(sel), len(groups))
	}

	questionIDs := make([]uint64, 0, len(sel))
	for q := range sel {
		questionIDs = append(questionIDs, q)
	}
	sort.Slice(questionIDs, func(i, j int) bool { return questionIDs[i] < questionIDs[j] })

	known := make(map[uint64]map[string]bool, len(groups))
	for _, g := range groups {
		ids := make(map[string]bool, len(g.Answers))
		for _, a := range g.Answers {
			ids[a.OptionID] = true
		}
		known[g.QuestionID] = ids
	}

	answerIDs := make([]uint64, 0, len(questionIDs))
	for _, q := range questionIDs {
		optionID := sel[q]
		questionID, answerID, err := DecodeOptionID(optionID)
		if err != nil {
			return nil, err
		}
		if questionID != q {
			return nil, fmt.Errorf("%w: option %q does not belong to question %d", domain.ErrInvalidOptionID, optionID, q)
		}
		options, ok := known[q]
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %d", domain.ErrIncompleteAnswers, q)
		}
		if !options[optionID] {
			return nil, fmt.Errorf("%w: %q", domain.ErrOptionNotFound, optionID)
		}
		answerIDs = append(answerIDs, answerID)
	}
	return answerIDs, nil
}
