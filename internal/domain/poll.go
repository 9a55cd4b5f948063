package domain

import (
	"fmt"
	"strconv"
	"time"
)

// OpenState is the tri-state voting status of a poll
type OpenState string

const (
	OpenStateOpen    OpenState = "open"
	OpenStateClosed  OpenState = "closed"
	OpenStateUnknown OpenState = "unknown"
)

// OpenStateFromBool maps the contract isOpen flag
func OpenStateFromBool(open bool) OpenState {
	if open {
		return OpenStateOpen
	}
	return OpenStateClosed
}

// PollSource tells where a poll lives
type PollSource string

const (
	PollSourceOnChain PollSource = "onchain"
	PollSourceLocal   PollSource = "local"
)

// PollOption is one (question, answer) pair of a poll.
// ID and Text keep the composite "<questionId>-<answerId>" and
// "Q<questionId>: <questionText> - <answerText>" forms for display and vote decoding.
type PollOption struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	QuestionID   uint64 `json:"question_id"`
	AnswerID     uint64 `json:"answer_id"`
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
	Votes        uint64 `json:"votes"`
}

// NewSurveyOption builds an option with both the explicit and the composite fields set
func NewSurveyOption(questionID, answerID uint64, questionText, answerText string, votes uint64) PollOption {
	return PollOption{
		ID:           CompositeOptionID(questionID, answerID),
		Text:         fmt.Sprintf("Q%d: %s - %s", questionID, questionText, answerText),
		QuestionID:   questionID,
		AnswerID:     answerID,
		QuestionText: questionText,
		AnswerText:   answerText,
		Votes:        votes,
	}
}

// CompositeOptionID encodes a question id and an answer id as "<questionId>-<answerId>"
func CompositeOptionID(questionID, answerID uint64) string {
	return strconv.FormatUint(questionID, 10) + "-" + strconv.FormatUint(answerID, 10)
}

// Poll is the unified poll model, one per survey contract or local poll
type Poll struct {
	ID           string       `json:"id"`
	Question     string       `json:"question"`
	Description  string       `json:"description,omitempty"`
	Options      []PollOption `json:"options"`
	TokenAddress *string      `json:"token_address,omitempty"`
	TokenSymbol  *string      `json:"token_symbol,omitempty"`
	TokenLogo    *string      `json:"token_logo,omitempty"`
	ChainID      uint64       `json:"chain_id,omitempty"`
	State        OpenState    `json:"state"`
	AIAnalysis   *string      `json:"ai_analysis,omitempty"`
	Source       PollSource   `json:"source"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsOpen reports whether voting is active
func (p *Poll) IsOpen() bool {
	return p.State == OpenStateOpen
}

// TotalVotes sums the votes over every option
func (p *Poll) TotalVotes() uint64 {
	var total uint64
	for _, o := range p.Options {
		total += o.Votes
	}
	return total
}

// Clone returns a deep copy so that callers never share option slices or pointers
func (p Poll) Clone() Poll {
	c := p
	if p.Options != nil {
		c.Options = make([]PollOption, len(p.Options))
		copy(c.Options, p.Options)
	}
	c.TokenAddress = cloneString(p.TokenAddress)
	c.TokenSymbol = cloneString(p.TokenSymbol)
	c.TokenLogo = cloneString(p.TokenLogo)
	c.AIAnalysis = cloneString(p.AIAnalysis)
	return c
}

// SurveyDescription renders the derived description of an on-chain survey
func SurveyDescription(questionCount int, contractAddress string) string {
	return fmt.Sprintf("%d question(s) - Contract: %s", questionCount, ShortAddress(contractAddress))
}

// ResultStat is one labelled vote count fed to the AI summary
type ResultStat struct {
	Label string `json:"label"`
	Votes uint64 `json:"votes"`
}

// ResultStats flattens a poll into labelled counts
func (p *Poll) ResultStats() []ResultStat {
	stats := make([]ResultStat, 0, len(p.Options))
	for _, o := range p.Options {
		stats = append(stats, ResultStat{Label: o.Text, Votes: o.Votes})
	}
	return stats
}

// AIPollSuggestion is a structured poll proposal returned by the AI service
type AIPollSuggestion struct {
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// TokenInfo is the token-gating metadata of a survey
type TokenInfo struct {
	Address string
	Symbol  string
	Logo    string
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
