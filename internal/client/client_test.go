package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/models"
)

func TestSend_PostsMessageAndDecodesReply(t *testing.T) {
	var got models.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"hello"}`))
	}))
	defer srv.Close()

	reply, err := New(srv.URL+"/").Send(context.Background(), "hi")

	require.NoError(t, err)
	assert.Equal(t, chat.Reply{Reply: "hello"}, reply)
	assert.Equal(t, "hi", got.Message)
}

func TestSend_DecodesErrorBodyOn500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Something went wrong with the Gemini API."}`))
	}))
	defer srv.Close()

	reply, err := New(srv.URL).Send(context.Background(), "hi")

	require.NoError(t, err)
	assert.Equal(t, chat.Reply{Error: "Something went wrong with the Gemini API."}, reply)
}

func TestSend_NonJSONBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Send(context.Background(), "hi")

	assert.Error(t, err)
}

func TestSend_UnreachableRelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Send(context.Background(), "hi")

	assert.Error(t, err)
}

func TestSession_WithUnreachableRelayShowsConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := chat.NewSession(New(url))
	require.True(t, s.Submit(context.Background(), "hi"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, chat.Message{Text: chat.ConnectionFailedText, Sender: chat.SenderBot}, msgs[1])
	assert.False(t, s.AwaitingReply())
}

func TestSession_WithRelayMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := chat.NewSession(New(srv.URL))
	require.True(t, s.Submit(context.Background(), "hi"))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, chat.NoReplyText, msgs[1].Text)
}
