package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler struct {
	logger *slog.Logger
}

func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{logger: logger.With("handler", "health")}
}

func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(r.Context(), h.logger, w, http.StatusOK, HealthResponse{Status: "ok"})
}
