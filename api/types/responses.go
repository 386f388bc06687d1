package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string         `json:"status"`
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool `json:"success"`
}

// UpdateProjectResponse reports how many annotations a codebook change rewrote
type UpdateProjectResponse struct {
	Success        bool `json:"success"`
	UpdatedResults int  `json:"updated_results"`
}
