package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
)

const (
	suggestionSystemInstruction = "You are an expert poll creator for a social app. You generate neutral, engaging, and clear options."
	analysisTemperature         = 0.7
)

// Config holds the Gemini API configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

//go:generate mockgen -source=client.go -destination=../../mocks/gemini.go -package=mocks -mock_names=Client=MockGeminiClient
type Client interface {
	// AnalyzeResults returns a short natural language summary of poll results
	AnalyzeResults(ctx context.Context, question string, stats []domain.ResultStat) (string, error)

	// SuggestPoll returns a poll proposal about the topic
	SuggestPoll(ctx context.Context, topic string) (*domain.AIPollSuggestion, error)
}

type client struct {
	cfg  Config
	http adapter.HTTPClient
	json adapter.JSON
}

func NewClient(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON) Client {
	return &client{
		cfg:  cfg,
		http: httpClient,
		json: jsonAdapter,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type schema struct {
	Type       string            `json:"type"`
	Properties map[string]schema `json:"properties,omitempty"`
	Items      *schema           `json:"items,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema  `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text concatenates the parts of the first candidate
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}

var suggestionSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]schema{
		"question":    {Type: "STRING"},
		"description": {Type: "STRING"},
		"options":     {Type: "ARRAY", Items: &schema{Type: "STRING"}},
	},
	Required: []string{"question", "options"},
}

// AnalysisPrompt renders the prompt sent for a result analysis
func AnalysisPrompt(question string, stats []domain.ResultStat) string {
	var total uint64
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		total += s.Votes
		lines = append(lines, fmt.Sprintf("- %s: %d votes", s.Label, s.Votes))
	}

	return fmt.Sprintf(`Here are the results for the poll: "%s"
Total votes: %d

Results Breakdown:
%s

Please provide a brief, witty, and insightful analysis of these results.
Highlight the winner and any surprising trends. Keep it under 100 words.`, question, total, strings.Join(lines, "\n"))
}

// SuggestionPrompt renders the prompt sent for a poll suggestion
func SuggestionPrompt(topic string) string {
	return fmt.Sprintf(`Create a creative and engaging poll about the topic: "%s".
Provide a clear question, a short description, and 3-5 distinct voting options.`, topic)
}

func (c *client) AnalyzeResults(ctx context.Context, question string, stats []domain.ResultStat) (string, error) {
	temperature := analysisTemperature
	resp, err := c.generate(ctx, generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: AnalysisPrompt(question, stats)}}}},
		GenerationConfig: &generationConfig{Temperature: &temperature},
	})
	if err != nil {
		return "", err
	}

	text := resp.text()
	if text == "" {
		return domain.DEFAULT_ANALYSIS_TEXT, nil
	}
	return text, nil
}

func (c *client) SuggestPoll(ctx context.Context, topic string) (*domain.AIPollSuggestion, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrEmptyTopic
	}

	resp, err := c.generate(ctx, generateRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: SuggestionPrompt(topic)}}}},
		SystemInstruction: &content{Parts: []part{{Text: suggestionSystemInstruction}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	text := resp.text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty suggestion", domain.ErrAIUnavailable)
	}

	var suggestion domain.AIPollSuggestion
	if err := c.json.Unmarshal([]byte(text), &suggestion); err != nil {
		return nil, fmt.Errorf("%w: failed to decode suggestion: %w", domain.ErrAIUnavailable, err)
	}
	if strings.TrimSpace(suggestion.Question) == "" || len(suggestion.Options) == 0 {
		return nil, fmt.Errorf("%w: incomplete suggestion", domain.ErrAIUnavailable)
	}
	return &suggestion, nil
}

// generate performs a single generateContent call, failures are never retried
func (c *client) generate(ctx context.Context, req generateRequest) (*generateResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key not configured", domain.ErrAIUnavailable)
	}

	body, err := c.json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	raw, err := c.http.PostJSON(ctx, url, map[string]string{"x-goog-api-key": c.cfg.APIKey}, body)
	if err != nil {
		logger.WarnCtx(ctx, "Gemini request failed", zap.Error(err), zap.String("model", c.cfg.Model))
		return nil, fmt.Errorf("%w: %w", domain.ErrAIUnavailable, err)
	}

	var resp generateResponse
	if err := c.json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrAIUnavailable, err)
	}
	return &resp, nil
}
