package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/aiqualify/golang_services/internal/core_domain"
)

// MaxRequestBodySize caps conversation payloads at 1 MiB.
const MaxRequestBodySize = 1 << 20

var errInconsistentConversation = errors.New("conversation references do not match")

// ConversationHandler checks that conversation payloads have the shape clients expect.
type ConversationHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func NewConversationHandler(logger *slog.Logger, validate *validator.Validate) *ConversationHandler {
	return &ConversationHandler{
		logger:   logger.With("handler", "conversation"),
		validate: validate,
	}
}

func (h *ConversationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/conversations/validate", h.HandleValidateConversation)
}

// HandleValidateConversation decodes a Conversation, validates its fields and
// checks that nested records point back at it.
func (h *ConversationHandler) HandleValidateConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chi_middleware.GetReqID(ctx))

	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.WarnContext(ctx, "Conversation payload too large", "limit", tooLarge.Limit)
			respondWithError(ctx, logger, w, http.StatusRequestEntityTooLarge, "Request body too large", "")
			return
		}
		logger.ErrorContext(ctx, "Failed to read request body", "error", err)
		respondWithError(ctx, logger, w, http.StatusInternalServerError, "Failed to read request body", "")
		return
	}

	var conv core_domain.Conversation
	if err := json.Unmarshal(body, &conv); err != nil {
		logger.WarnContext(ctx, "Failed to decode conversation JSON", "error", err)
		respondWithError(ctx, logger, w, http.StatusBadRequest, "Invalid JSON format", err.Error())
		return
	}

	if err := h.validate.StructCtx(ctx, conv); err != nil {
		logger.WarnContext(ctx, "Conversation failed validation", "error", err, "conversation_id", conv.ID)
		respondWithError(ctx, logger, w, http.StatusUnprocessableEntity, "Validation failed", err.Error())
		return
	}

	if err := checkReferences(conv); err != nil {
		logger.WarnContext(ctx, "Conversation references are inconsistent", "error", err, "conversation_id", conv.ID)
		respondWithError(ctx, logger, w, http.StatusUnprocessableEntity, "Validation failed", err.Error())
		return
	}

	logger.DebugContext(ctx, "Conversation validated", "conversation_id", conv.ID, "message_count", len(conv.Messages))
	respondWithJSON(ctx, logger, w, http.StatusOK, ValidateConversationResponse{
		Valid:          true,
		ConversationID: conv.ID,
		MessageCount:   len(conv.Messages),
	})
}

func checkReferences(conv core_domain.Conversation) error {
	if conv.Contact.ID != conv.ContactID {
		return fmt.Errorf("%w: contact.id %q != contact_id %q", errInconsistentConversation, conv.Contact.ID, conv.ContactID)
	}
	for i, m := range conv.Messages {
		if m.ConversationID != conv.ID {
			return fmt.Errorf("%w: messages[%d].conversation_id %q != id %q", errInconsistentConversation, i, m.ConversationID, conv.ID)
		}
	}
	return nil
}
