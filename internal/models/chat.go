package models

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is returned instead of ChatResponse when no reply could be produced.
type ErrorResponse struct {
	Error string `json:"error"`
}
