package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"gemini-chat/internal/metrics"
)

// contentGenerator is the slice of *genai.GenerativeModel the relay uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiService is built once at start-up and shared read-only by every request.
type GeminiService struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Model returns the model identifier requests are sent to.
func (s *GeminiService) Model() string {
	return s.modelName
}

// Generate sends message as a single user turn and returns the reply text.
// No history, system prompt or generation settings are attached.
func (s *GeminiService) Generate(ctx context.Context, message string) (string, error) {
	start := time.Now()
	resp, err := s.model.GenerateContent(ctx, genai.Text(message))
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		// The SDK reports safety blocks as errors rather than empty text.
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return "", blockedFromSDK(blocked)
		}
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", blockedFromResponse(resp)
	}
	return text, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func blockedFromResponse(resp *genai.GenerateContentResponse) *BlockedError {
	e := &BlockedError{FinishReason: "unknown", BlockReason: "none"}
	if resp == nil {
		return e
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		e.FinishReason = resp.Candidates[0].FinishReason.String()
	}
	if resp.PromptFeedback != nil {
		e.BlockReason = resp.PromptFeedback.BlockReason.String()
	}
	return e
}

func blockedFromSDK(err *genai.BlockedError) *BlockedError {
	e := &BlockedError{FinishReason: "unknown", BlockReason: "none"}
	if err.Candidate != nil {
		e.FinishReason = err.Candidate.FinishReason.String()
	}
	if err.PromptFeedback != nil {
		e.BlockReason = err.PromptFeedback.BlockReason.String()
	}
	return e
}
