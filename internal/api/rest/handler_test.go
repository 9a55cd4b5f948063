package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/api/middleware"
	"github.com/feral-file/ff-survey/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/mocks"
)

type errorEnvelope struct {
	Error apierrors.APIError `json:"error"`
}

func setupTestRouter(t *testing.T, voteAuth gin.HandlerFunc) (*gin.Engine, *mocks.MockAPIExecutor) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	SetupRoutes(router, NewHandler(exec), voteAuth)
	return router, exec
}

func doRequest(router *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t, nil)
	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListPolls(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().ListPolls(gomock.Any(), "dao").Return(&dto.PollListResponse{
		Polls:   []dto.PollResponse{{ID: "0xabc", Question: "DAO survey", State: domain.OpenStateOpen, IsOpen: true}},
		Loading: map[string]bool{"0xabc": false},
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/polls?q=dao", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PollListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Polls, 1)
	assert.Equal(t, "DAO survey", resp.Polls[0].Question)
}

func TestRefreshPolls_AllContractsFailed(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().RefreshPolls(gomock.Any()).Return(nil, apierrors.NewChainError("0xabc"))

	w := doRequest(router, http.MethodPost, "/api/v1/polls/refresh", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeChainError, apiErr.Code)
	assert.Equal(t, "No pudimos cargar las encuestas on-chain.", apiErr.Message)
}

func TestGetPoll_NotFound(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().GetPoll(gomock.Any(), "0xmissing").Return(nil, apierrors.NewNotFoundError("Poll not found"))

	w := doRequest(router, http.MethodGet, "/api/v1/polls/0xmissing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestSubmitVote(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().SubmitVote(gomock.Any(), "0xabc", dto.VoteRequest{Selections: map[string]string{"1": "1-2"}}).
		Return(&dto.VoteAttemptResponse{ID: "attempt-1", State: domain.VoteStateSubmitted}, nil)
	w := doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{"selections":{"1":"1-2"}}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"submitted"`)

	exec.EXPECT().SubmitVote(gomock.Any(), "0xabc", gomock.Any()).
		Return(&dto.VoteAttemptResponse{ID: "attempt-2", State: domain.VoteStateFailed}, nil)
	w = doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{"selections":{"1":"1-2"}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().SubmitVote(gomock.Any(), "0xabc", gomock.Any()).
		Return(nil, apierrors.NewValidationError("every question must have exactly one selected answer"))
	w = doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{"selections":{"1":"1-2"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitVote_RequiresAuth(t *testing.T) {
	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{"secret"}})
	require.NoError(t, err)
	router, exec := setupTestRouter(t, auth.Middleware())

	w := doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{"selections":{"1":"1-2"}}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	exec.EXPECT().SubmitVote(gomock.Any(), "0xabc", gomock.Any()).
		Return(&dto.VoteAttemptResponse{ID: "attempt-1", State: domain.VoteStateSubmitted}, nil)
	w = doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/votes", `{"selections":{"1":"1-2"}}`,
		"Authorization", "ApiKey secret")
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestGetVoteAttempt(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().GetVoteAttempt(gomock.Any(), "attempt-1").Return(&dto.VoteAttemptResponse{
		ID: "attempt-1", State: domain.VoteStateConfirmed, Message: "Vote confirmed!",
	}, nil)
	w := doRequest(router, http.MethodGet, "/api/v1/votes/attempt-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Vote confirmed!"`)
}

func TestAnalyzeAndSuggest(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().AnalyzePoll(gomock.Any(), "0xabc").Return(nil, apierrors.NewConflictError("poll results are hidden while voting is open"))
	w := doRequest(router, http.MethodPost, "/api/v1/polls/0xabc/analysis", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	exec.EXPECT().SuggestPoll(gomock.Any(), dto.SuggestionRequest{Topic: "pets"}).Return(&dto.SuggestionResponse{
		Question: "Best pet?", Options: []string{"Cat", "Dog", "Fish"},
	}, nil)
	w = doRequest(router, http.MethodPost, "/api/v1/suggestions", `{"topic":"pets"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"question":"Best pet?"`)
}

func TestLocalPolls(t *testing.T) {
	router, exec := setupTestRouter(t, nil)

	exec.EXPECT().CreateLocalPoll(gomock.Any(), gomock.Any()).Return(&dto.PollDetailResponse{
		Poll: dto.PollResponse{ID: "local-1", Question: "Tabs?"},
	}, nil)
	w := doRequest(router, http.MethodPost, "/api/v1/local-polls", `{"question":"Tabs?","options":["Yes","No"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	exec.EXPECT().VoteLocalPoll(gomock.Any(), "local-1", dto.LocalVoteRequest{OptionID: "local-1-opt-1"}).
		Return(&dto.PollDetailResponse{Poll: dto.PollResponse{ID: "local-1"}, TotalVotes: 1}, nil)
	w = doRequest(router, http.MethodPost, "/api/v1/local-polls/local-1/votes", `{"option_id":"local-1-opt-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().ListLocalPolls(gomock.Any(), "").Return(&dto.PollListResponse{}, nil)
	w = doRequest(router, http.MethodGet, "/api/v1/local-polls", "")
	assert.Equal(t, http.StatusOK, w.Code)

	exec.EXPECT().GetLocalPoll(gomock.Any(), "nope").Return(nil, apierrors.NewNotFoundError("Poll not found"))
	w = doRequest(router, http.MethodGet, "/api/v1/local-polls/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
