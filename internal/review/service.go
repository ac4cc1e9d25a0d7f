// Package review turns fetched pull request data into a prompt document and
// generates an AI review for it with a single Claude completion call.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/tildaslashalef/prmind/internal/claude"
	"github.com/tildaslashalef/prmind/internal/config"
	"github.com/tildaslashalef/prmind/internal/loggy"
	"github.com/tildaslashalef/prmind/internal/ulid"
)

// NotConfiguredMessage is returned in place of a review when no Claude API
// key is configured. It is a normal outcome, not an error.
const NotConfiguredMessage = "Claude API key not configured"

// Service generates reviews for formatted pull request documents
type Service struct {
	llm    *claude.Client
	cfg    config.ClaudeConfig
	logger *loggy.Logger
}

// NewService creates a new review service
func NewService(cfg config.ClaudeConfig, logger *loggy.Logger) *Service {
	return &Service{
		llm: claude.NewClient(claude.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
			Model:      cfg.Model,
			MaxTokens:  cfg.MaxTokens,
			Timeout:    cfg.Timeout,
		}),
		cfg:    cfg,
		logger: logger,
	}
}

// GenerateReview sends the formatted pull request document to Claude and
// returns the resulting review. Exactly one completion call is made per
// invocation; there is no streaming and no retry. When no API key is
// configured the fixed NotConfiguredMessage is returned with a nil error.
func (s *Service) GenerateReview(ctx context.Context, document string) (*Review, error) {
	return s.GenerateReviewWithModel(ctx, document, "")
}

// GenerateReviewWithModel is GenerateReview with a per-call model override.
// An empty model falls back to the configured one.
func (s *Service) GenerateReviewWithModel(ctx context.Context, document string, model string) (*Review, error) {
	if model == "" {
		model = s.cfg.Model
	}

	if !s.llm.HasAPIKey() {
		s.logger.Warn("Review requested without a configured Claude API key")
		return &Review{
			ID:        ulid.ReviewID(),
			Text:      NotConfiguredMessage,
			CreatedAt: time.Now(),
		}, nil
	}

	prompt, err := BuildReviewPrompt(document)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Generating review", "model", model, "prompt_bytes", len(prompt))

	resp, err := s.llm.Messages(ctx, claude.MessagesRequest{
		Model:     model,
		MaxTokens: s.cfg.MaxTokens,
		Messages: []claude.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generating review: %w", err)
	}

	text := resp.FirstText()
	if text == "" {
		return nil, fmt.Errorf("generating review: response contained no text content")
	}

	rev := &Review{
		ID:        ulid.ReviewID(),
		Model:     resp.Model,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if resp.Usage != nil {
		rev.InputTokens = resp.Usage.InputTokens
		rev.OutputTokens = resp.Usage.OutputTokens
	}

	s.logger.Info("Generated review",
		"review_id", rev.ID,
		"model", rev.Model,
		"output_tokens", rev.OutputTokens)

	return rev, nil
}
