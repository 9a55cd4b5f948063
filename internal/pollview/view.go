package pollview

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/feral-file/ff-survey/internal/domain"
)

var optionTextPattern = regexp.MustCompile(`^Q\d+: (.+?) - (.*)$`)

// Answer is one answer of a question group
type Answer struct {
	OptionID   string `json:"option_id"`
	AnswerID   uint64 `json:"answer_id"`
	Text       string `json:"text"`
	Votes      uint64 `json:"votes"`
	Percentage string `json:"percentage,omitempty"`
}

// QuestionGroup is one question of a poll with its answers
type QuestionGroup struct {
	QuestionID uint64   `json:"question_id"`
	Text       string   `json:"text"`
	Answers    []Answer `json:"answers"`
	TotalVotes uint64   `json:"total_votes"`
}

// View is the derived display structure of a poll
type View struct {
	Poll       domain.Poll     `json:"poll"`
	Questions  []QuestionGroup `json:"questions"`
	TotalVotes uint64          `json:"total_votes"`
	// ShowResults is true when vote counts are meaningful
	ShowResults bool `json:"show_results"`
}

// ParseOptionText splits a composite option text into question and answer text.
// Texts without the "Q<n>: <question> - " prefix fall back to the default question label
// and keep the whole text as the answer.
func ParseOptionText(text string) (question, answer string) {
	m := optionTextPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.DEFAULT_QUESTION_LABEL, text
	}
	return m[1], m[2]
}

// DecodeOptionID decodes "<questionId>-<answerId>" into its two numbers
func DecodeOptionID(id string) (questionID, answerID uint64, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidOptionID, id)
	}

	questionID, err = strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has a non numeric question id", domain.ErrInvalidOptionID, id)
	}
	answerID, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has a non numeric answer id", domain.ErrInvalidOptionID, id)
	}
	return questionID, answerID, nil
}

// GroupQuestions rebuilds the question structure of a poll, ordered by ascending question id.
// Options carrying explicit question and answer fields are used directly; the composite
// id and text are parsed otherwise.
func GroupQuestions(poll domain.Poll) ([]QuestionGroup, error) {
	groups := make(map[uint64]*QuestionGroup)
	for _, o := range poll.Options {
		questionID, answerID := o.QuestionID, o.AnswerID
		questionText, answerText := o.QuestionText, o.AnswerText

		if questionText == "" && answerText == "" {
			var err error
			questionID, answerID, err = DecodeOptionID(o.ID)
			if err != nil {
				return nil, err
			}
			questionText, answerText = ParseOptionText(o.Text)
		}

		g, ok := groups[questionID]
		if !ok {
			g = &QuestionGroup{QuestionID: questionID, Text: questionText}
			groups[questionID] = g
		}
		g.Answers = append(g.Answers, Answer{
			OptionID: o.ID,
			AnswerID: answerID,
			Text:     answerText,
			Votes:    o.Votes,
		})
		g.TotalVotes += o.Votes
	}

	result := make([]QuestionGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].QuestionID < result[j].QuestionID
	})
	return result, nil
}

// Percentage renders votes over total with one decimal, "0" when total is zero
func Percentage(votes, total uint64) string {
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(votes)/float64(total)*100, 'f', 1, 64)
}

// Build derives the view of a poll. Percentages are filled only when the poll is not open,
// local polls always show their tallies.
func Build(poll domain.Poll) (View, error) {
	groups, err := GroupQuestions(poll)
	if err != nil {
		return View{}, err
	}

	view := View{
		Poll:        poll,
		Questions:   groups,
		ShowResults: !poll.IsOpen() || poll.Source == domain.PollSourceLocal,
	}
	for i := range view.Questions {
		g := &view.Questions[i]
		view.TotalVotes += g.TotalVotes
		if !view.ShowResults {
			continue
		}
		for j := range g.Answers {
			g.Answers[j].Percentage = Percentage(g.Answers[j].Votes, g.TotalVotes)
		}
	}
	return view, nil
}
