package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/api/middleware"
	"github.com/feral-file/ff-survey/internal/api/shared/dto"
	"github.com/feral-file/ff-survey/internal/mocks"
)

func TestRouter_VoteAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	s := New(Config{Auth: middleware.AuthConfig{APIKeys: []string{"secret"}}}, exec)
	router, err := s.Router()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/polls/0xabc/votes", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	exec.EXPECT().ListPolls(gomock.Any(), "").Return(&dto.PollListResponse{}, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/polls", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(Config{AllowedOrigins: []string{"https://polls.example"}}, mocks.NewMockAPIExecutor(ctrl))
	router, err := s.Router()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/polls", nil)
	req.Header.Set("Origin", "https://polls.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://polls.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_InvalidJWTKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(Config{Auth: middleware.AuthConfig{JWTPublicKey: "garbage"}}, mocks.NewMockAPIExecutor(ctrl))
	_, err := s.Router()
	assert.Error(t, err)
}
