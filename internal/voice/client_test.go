package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchCall_Success(t *testing.T) {
	var gotAuth string
	var gotBody dispatchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calls/dispatch", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"call_id": "call-123"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 7, nil)
	callID, err := client.DispatchCall(context.Background(), "+919876543210", "Kartik Sharma", "laravel-developer")

	require.NoError(t, err)
	assert.Equal(t, "call-123", callID)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, 7, gotBody.AgentID)
	assert.Equal(t, "+919876543210", gotBody.PhoneNumber)
	assert.Equal(t, "Kartik Sharma", gotBody.Variables["candidate_name"])
}

func TestDispatchCall_MissingAPIKey(t *testing.T) {
	client := NewClient("http://example.invalid", "", 1, nil)

	_, err := client.DispatchCall(context.Background(), "+911234567890", "A", "unknown")

	assert.Error(t, err)
}

func TestDispatchCall_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 1, nil)
	_, err := client.DispatchCall(context.Background(), "+911234567890", "A", "unknown")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestGetCallLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calls/call-123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(CallLog{
			ID:         "call-123",
			Status:     "completed",
			Transcript: "My budget is 45k and I have 3 years experience.",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 1, nil)
	log, err := client.GetCallLog(context.Background(), "call-123")

	require.NoError(t, err)
	assert.Equal(t, "completed", log.Status)
	assert.Contains(t, log.Transcript, "45k")
}

func TestOutcomeForStatus(t *testing.T) {
	tests := []struct {
		status  string
		outcome string
		final   bool
	}{
		{"completed", "contacted", true},
		{"Finalized", "contacted", true},
		{"no-answer", "not_interested", true},
		{"busy", "not_interested", true},
		{"in-progress", "", false},
		{"queued", "", false},
	}

	for _, tt := range tests {
		outcome, final := OutcomeForStatus(tt.status)
		assert.Equal(t, tt.outcome, outcome, tt.status)
		assert.Equal(t, tt.final, final, tt.status)
	}
}
