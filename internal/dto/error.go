package dto

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error   string         `json:"error" example:"Unbalanced"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
