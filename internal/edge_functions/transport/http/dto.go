package http

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SiteResponse is returned by GET /site.
type SiteResponse struct {
	SiteURL   string `json:"site_url"`
	BuildMode string `json:"build_mode"`
}

// ValidateConversationResponse is returned when a conversation payload has a valid shape.
type ValidateConversationResponse struct {
	Valid          bool   `json:"valid"`
	ConversationID string `json:"conversation_id"`
	MessageCount   int    `json:"message_count"`
}

// GenericErrorResponse for API errors
type GenericErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
