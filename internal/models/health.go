package models

// Check represents the status of a single health check.
type Check struct {
	Status  string `json:"status"` // "pass" or "fail"
	Message string `json:"message,omitempty"`
}

// HealthResponse is served by GET /health.
type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Model     string           `json:"model"`
	Checks    map[string]Check `json:"checks"`
	Timestamp string           `json:"timestamp"`
}
