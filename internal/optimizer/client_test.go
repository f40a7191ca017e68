package optimizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	reply := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(reply))
}

func TestOptimize_ParsesPlainJSONContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		chatReply(t, w, `{"jobs":[{"id":"a","scheduledSegments":[{"date":"2025-01-06","hours":4}]}],"explanation":"fine"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "test-model", 5*time.Second)

	result, err := client.Optimize(context.Background(), &Payload{PlanningDate: "2025-01-06"})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "a", result.Jobs[0].ID)
	assert.Equal(t, "fine", result.Explanation)
}

func TestOptimize_UnwrapsCodeFencedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "```json\n{\"jobs\":[{\"id\":\"a\",\"scheduledSegments\":[]}]}\n```")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", 5*time.Second)

	result, err := client.Optimize(context.Background(), &Payload{})
	require.NoError(t, err)
	require.Len(t, result.Jobs, 1)
}

func TestOptimize_ErrorStatusFailsWhole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", 5*time.Second)

	result, err := client.Optimize(context.Background(), &Payload{})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestOptimize_UnparsableContentIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatReply(t, w, "sorry, I cannot help with that")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", 5*time.Second)

	_, err := client.Optimize(context.Background(), &Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparsable")
}

func TestOptimize_EmptyChoicesIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model", 5*time.Second)

	_, err := client.Optimize(context.Background(), &Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
