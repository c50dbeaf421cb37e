package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"gemini-chat/internal/metrics"
	"gemini-chat/internal/middleware"
	"gemini-chat/internal/models"
	"gemini-chat/internal/services"
)

// Fixed client-facing failure texts. Causes are only told apart in the logs.
const (
	MsgInvalidBody   = "Invalid request body"
	MsgBlockedReply  = "The AI did not return a response. It may have been blocked by safety settings."
	MsgUpstreamError = "Something went wrong with the Gemini API."
)

type generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// ChatHandler relays one message to the generator per request. It holds no
// per-request state and is safe for concurrent use.
type ChatHandler struct {
	generator generator
	logger    zerolog.Logger
}

func NewChatHandler(gen generator, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		generator: gen,
		logger:    logger,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: MsgInvalidBody})
		return
	}

	reply, err := h.generator.Generate(r.Context(), req.Message)
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())

		var blocked *services.BlockedError
		switch {
		case errors.As(err, &blocked):
			h.logger.Error().
				Str("request_id", requestID).
				Str("finish_reason", blocked.FinishReason).
				Str("block_reason", blocked.BlockReason).
				Msg("Gemini response was empty or blocked")
			metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeBlocked).Inc()
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: MsgBlockedReply})
		case errors.Is(err, services.ErrEmptyReply):
			h.logger.Error().
				Str("request_id", requestID).
				Msg("Gemini response was empty")
			metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeBlocked).Inc()
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: MsgBlockedReply})
		default:
			h.logger.Error().
				Err(err).
				Str("request_id", requestID).
				Msg("Gemini API error")
			metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: MsgUpstreamError})
		}
		return
	}

	if reply == "" {
		h.logger.Error().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("Gemini response was empty")
		metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeBlocked).Inc()
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: MsgBlockedReply})
		return
	}

	metrics.RelayOutcomes.WithLabelValues(metrics.OutcomeReply).Inc()
	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply})
}
