package dto

import (
	"time"

	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/pollview"
)

// TokenResponse is the token gating a survey
type TokenResponse struct {
	Address string  `json:"address"`
	Symbol  *string `json:"symbol,omitempty"`
	Logo    *string `json:"logo,omitempty"`
}

// OptionResponse is one option of a poll
type OptionResponse struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	QuestionID   uint64 `json:"question_id"`
	AnswerID     uint64 `json:"answer_id"`
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
	Votes        uint64 `json:"votes"`
}

// PollResponse is a poll as listed by the API
type PollResponse struct {
	ID          string            `json:"id"`
	Question    string            `json:"question"`
	Description string            `json:"description,omitempty"`
	Options     []OptionResponse  `json:"options"`
	Token       *TokenResponse    `json:"token,omitempty"`
	ChainID     uint64            `json:"chain_id,omitempty"`
	State       domain.OpenState  `json:"state"`
	IsOpen      bool              `json:"is_open"`
	AIAnalysis  *string           `json:"ai_analysis,omitempty"`
	Source      domain.PollSource `json:"source"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PollDetailResponse is a poll together with its question groups
type PollDetailResponse struct {
	Poll        PollResponse             `json:"poll"`
	Questions   []pollview.QuestionGroup `json:"questions"`
	TotalVotes  uint64                   `json:"total_votes"`
	ShowResults bool                     `json:"show_results"`
}

// PollListResponse is a list of polls with the per contract loading flags
type PollListResponse struct {
	Polls   []PollResponse  `json:"polls"`
	Loading map[string]bool `json:"loading,omitempty"`
}

// RefreshResponse is the outcome of an aggregation pass
type RefreshResponse struct {
	Polls  []PollResponse `json:"polls"`
	Failed []string       `json:"failed,omitempty"`
}

// VoteAttemptResponse is the state of one vote attempt
type VoteAttemptResponse struct {
	ID          string             `json:"id"`
	PollID      string             `json:"poll_id"`
	ChainID     uint64             `json:"chain_id"`
	AnswerIDs   []uint64           `json:"answer_ids"`
	State       domain.VoteState   `json:"state"`
	TxHash      string             `json:"tx_hash,omitempty"`
	BlockNumber uint64             `json:"block_number,omitempty"`
	Failure     domain.FailureKind `json:"failure,omitempty"`
	Error       string             `json:"error,omitempty"`
	Message     string             `json:"message,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SuggestionResponse is an AI poll proposal
type SuggestionResponse struct {
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// MapPollToDTO maps a poll to its response
func MapPollToDTO(p domain.Poll) PollResponse {
	options := make([]OptionResponse, len(p.Options))
	for i, o := range p.Options {
		options[i] = OptionResponse{
			ID:           o.ID,
			Text:         o.Text,
			QuestionID:   o.QuestionID,
			AnswerID:     o.AnswerID,
			QuestionText: o.QuestionText,
			AnswerText:   o.AnswerText,
			Votes:        o.Votes,
		}
	}

	resp := PollResponse{
		ID:          p.ID,
		Question:    p.Question,
		Description: p.Description,
		Options:     options,
		ChainID:     p.ChainID,
		State:       p.State,
		IsOpen:      p.IsOpen(),
		AIAnalysis:  p.AIAnalysis,
		Source:      p.Source,
		CreatedAt:   p.CreatedAt,
	}
	if p.TokenAddress != nil {
		resp.Token = &TokenResponse{
			Address: *p.TokenAddress,
			Symbol:  p.TokenSymbol,
			Logo:    p.TokenLogo,
		}
	}
	return resp
}

// MapPollsToDTO maps a list of polls
func MapPollsToDTO(polls []domain.Poll) []PollResponse {
	resp := make([]PollResponse, len(polls))
	for i, p := range polls {
		resp[i] = MapPollToDTO(p)
	}
	return resp
}

// MapViewToDTO maps a poll view to its detailed response
func MapViewToDTO(v pollview.View) *PollDetailResponse {
	return &PollDetailResponse{
		Poll:        MapPollToDTO(v.Poll),
		Questions:   v.Questions,
		TotalVotes:  v.TotalVotes,
		ShowResults: v.ShowResults,
	}
}

// MapVoteAttemptToDTO maps a vote attempt
func MapVoteAttemptToDTO(a domain.VoteAttempt) *VoteAttemptResponse {
	return &VoteAttemptResponse{
		ID:          a.ID,
		PollID:      a.PollID,
		ChainID:     a.ChainID,
		AnswerIDs:   a.AnswerIDs,
		State:       a.State,
		TxHash:      a.TxHash,
		BlockNumber: a.BlockNumber,
		Failure:     a.Failure,
		Error:       a.Error,
		Message:     a.Message,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// MapSuggestionToDTO maps an AI poll suggestion
func MapSuggestionToDTO(s *domain.AIPollSuggestion) *SuggestionResponse {
	return &SuggestionResponse{
		Question:    s.Question,
		Description: s.Description,
		Options:     s.Options,
	}
}
