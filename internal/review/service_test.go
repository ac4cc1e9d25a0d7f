package review

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/prmind/internal/claude"
	"github.com/tildaslashalef/prmind/internal/config"
	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/ulid"
)

func newTestReviewService(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Service) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewService(config.ClaudeConfig{
		APIKey:     "test-api-key",
		BaseURL:    server.URL,
		APIVersion: "2023-06-01",
		Model:      "claude-3-sonnet-20240229",
		MaxTokens:  4000,
		Timeout:    5 * time.Second,
	}, loggy.NewNoopLogger())

	return server, svc
}

func TestGenerateReviewWithoutAPIKey(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	svc := NewService(config.ClaudeConfig{
		BaseURL: server.URL,
		Model:   "claude-3-sonnet-20240229",
	}, loggy.NewNoopLogger())

	rev, err := svc.GenerateReview(context.Background(), "document")
	require.NoError(t, err)
	require.NotNil(t, rev)

	assert.Equal(t, NotConfiguredMessage, rev.Text)
	assert.Empty(t, rev.Model)
	assert.True(t, strings.HasPrefix(rev.ID, ulid.PrefixReview+ulid.PrefixSeparator))
	assert.False(t, called, "no API call should be made without a key")
}

func TestGenerateReview(t *testing.T) {
	_, svc := newTestReviewService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req claude.MessagesRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "claude-3-sonnet-20240229", req.Model)
		assert.Equal(t, 4000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "1. **Summary**")
		assert.Contains(t, req.Messages[0].Content, "the document")

		resp := claude.MessagesResponse{
			ID:      "msg_123",
			Type:    "message",
			Role:    "assistant",
			Model:   "claude-3-sonnet-20240229",
			Content: []claude.ContentBlock{{Type: "text", Text: "Looks good to me."}},
			Usage:   &claude.UsageInfo{InputTokens: 10, OutputTokens: 5},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rev, err := svc.GenerateReview(context.Background(), "the document")
	require.NoError(t, err)
	require.NotNil(t, rev)

	assert.Equal(t, "Looks good to me.", rev.Text)
	assert.Equal(t, "claude-3-sonnet-20240229", rev.Model)
	assert.Equal(t, 10, rev.InputTokens)
	assert.Equal(t, 5, rev.OutputTokens)
	assert.True(t, ulid.Validate(rev.ID))
}

func TestGenerateReviewWithModelOverride(t *testing.T) {
	_, svc := newTestReviewService(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req claude.MessagesRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "claude-3-opus-20240229", req.Model)

		resp := claude.MessagesResponse{
			Model:   "claude-3-opus-20240229",
			Content: []claude.ContentBlock{{Type: "text", Text: "Reviewed."}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rev, err := svc.GenerateReviewWithModel(context.Background(), "doc", "claude-3-opus-20240229")
	require.NoError(t, err)
	assert.Equal(t, "claude-3-opus-20240229", rev.Model)
}

func TestGenerateReviewAPIError(t *testing.T) {
	_, svc := newTestReviewService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"Rate limit exceeded"}}`))
	})

	rev, err := svc.GenerateReview(context.Background(), "doc")
	require.Error(t, err)
	assert.Nil(t, rev)
	assert.Contains(t, err.Error(), "generating review")
	assert.Contains(t, err.Error(), "rate_limit_error")
}

func TestGenerateReviewEmptyContent(t *testing.T) {
	_, svc := newTestReviewService(t, func(w http.ResponseWriter, r *http.Request) {
		resp := claude.MessagesResponse{
			Model:   "claude-3-sonnet-20240229",
			Content: []claude.ContentBlock{{Type: "thinking", Text: "hmm"}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	rev, err := svc.GenerateReview(context.Background(), "doc")
	require.Error(t, err)
	assert.Nil(t, rev)
	assert.Contains(t, err.Error(), "no text content")
}
