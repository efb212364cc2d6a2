package api

// ProcessRequest represents the request body for POST /api/process.
type ProcessRequest struct {
	TaskType string `json:"task_type" validate:"required"`
	Payload  string `json:"payload"   validate:"required,min=1"`
}

// HealthResponse represents the response body for GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Possible health status values
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)
