package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aiqualify/golang_services/internal/platform/cors"
)

// respondWithJSON only falls back to a plain 500 while nothing has been written.
func respondWithJSON(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, code int, payload any) {
	resp, err := cors.JSON(payload, code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to encode JSON response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if err := resp.Write(w); err != nil {
		logger.ErrorContext(ctx, "Failed to write JSON response", "error", err, "status", code)
	}
}

func respondWithError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, code int, message, details string) {
	respondWithJSON(ctx, logger, w, code, GenericErrorResponse{Error: message, Details: details})
}
