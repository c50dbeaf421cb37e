// Package client talks to the chat relay over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/models"
)

// Client is a chat relay client. It implements chat.Relay.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the relay at baseURL. The HTTP client has no
// timeout: a request lasts until the relay answers or the transport fails.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Send posts text to /chat once. The body is decoded whatever the status code,
// because failures still carry an {"error": ...} body. An error is returned only
// when the relay could not be reached or did not answer with JSON.
func (c *Client) Send(ctx context.Context, text string) (chat.Reply, error) {
	body, err := json.Marshal(models.ChatRequest{Message: text})
	if err != nil {
		return chat.Reply{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return chat.Reply{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return chat.Reply{}, fmt.Errorf("post chat: %w", err)
	}
	defer resp.Body.Close()

	var reply chat.Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return chat.Reply{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	return reply, nil
}

var _ chat.Relay = (*Client)(nil)
