package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aiqualify/golang_services/internal/platform/environment"
)

// SiteHandler exposes the public site URL so clients can build redirect links.
// It reports whatever environment.Init fixed at startup.
type SiteHandler struct {
	logger *slog.Logger
}

func NewSiteHandler(logger *slog.Logger) *SiteHandler {
	return &SiteHandler{logger: logger.With("handler", "site")}
}

func (h *SiteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/site", h.HandleGetSite)
}

func (h *SiteHandler) HandleGetSite(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(r.Context(), h.logger, w, http.StatusOK, SiteResponse{
		SiteURL:   environment.SiteURL(),
		BuildMode: environment.BuildMode(),
	})
}
