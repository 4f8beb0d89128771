package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationClientWithoutKeyIsDisabled(t *testing.T) {
	client, err := NewGenerationClient("openai", "", "gpt-4o", "")
	require.NoError(t, err)

	_, err = client.GenerateJSON(context.Background(), "sys", "user")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.NoError(t, client.Close())
}

func TestNewGenerationClientUnknownProvider(t *testing.T) {
	_, err := NewGenerationClient("llama", "key", "", "")
	assert.Error(t, err)
}

func TestOpenAIGenerationClientRequestsJSONObject(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "{\"itinerary\": []}"},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer srv.Close()

	client := NewOpenAIGenerationClient("test-key", "gpt-4o", srv.URL+"/v1")
	out, err := client.GenerateJSON(context.Background(), "be a planner", "plan my day")
	require.NoError(t, err)
	assert.Equal(t, `{"itinerary": []}`, out)

	assert.Equal(t, "gpt-4o", captured["model"])
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "plan my day", messages[1].(map[string]any)["content"])
}

func TestOpenAIGenerationClientSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIGenerationClient("wrong", "", srv.URL+"/v1")
	_, err := client.GenerateJSON(context.Background(), "sys", "user")
	assert.Error(t, err)
}
