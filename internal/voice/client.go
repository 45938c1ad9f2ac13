// Package voice wraps the outbound calling provider's HTTP API. Calls are
// dispatched to candidates and their transcripts fetched back for evaluation.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout for provider calls.
const DefaultTimeout = 30 * time.Second

// Client talks to the voice-call provider.
type Client struct {
	baseURL    string
	apiKey     string
	agentID    int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a provider client. The logger may be nil.
func NewClient(baseURL, apiKey string, agentID int, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		agentID:    agentID,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
	}
}

// APIError represents a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("voice API returned %d: %s", e.StatusCode, e.Body)
}

// CallLog is the provider's record of a completed or in-flight call.
type CallLog struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	Transcript      string  `json:"transcript"`
	RecordingURL    string  `json:"recording_url,omitempty"`
	DurationSeconds float64 `json:"call_duration,omitempty"`
}

type dispatchRequest struct {
	AgentID     int               `json:"agent_id"`
	PhoneNumber string            `json:"recipient_phone_number"`
	Variables   map[string]string `json:"variables,omitempty"`
}

type dispatchResponse struct {
	CallID string `json:"call_id"`
	ID     string `json:"id"`
}

// DispatchCall queues an outbound screening call and returns the provider's
// call ID. The candidate's name and role are passed as script variables so
// the agent can personalize the conversation.
func (c *Client) DispatchCall(ctx context.Context, phone, candidateName, role string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("voice API key is not configured")
	}
	if phone == "" {
		return "", fmt.Errorf("phone number is empty")
	}

	body := dispatchRequest{
		AgentID:     c.agentID,
		PhoneNumber: phone,
		Variables: map[string]string{
			"candidate_name": candidateName,
			"role":           role,
		},
	}

	var resp dispatchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/calls/dispatch", body, &resp); err != nil {
		return "", err
	}

	callID := resp.CallID
	if callID == "" {
		callID = resp.ID
	}
	if callID == "" {
		return "", fmt.Errorf("provider response missing call ID")
	}

	c.logger.Info("dispatched screening call",
		zap.String("call_id", callID),
		zap.String("candidate", candidateName))
	return callID, nil
}

// GetCallLog fetches the current state of a call, including its transcript
// once the call has completed.
func (c *Client) GetCallLog(ctx context.Context, callID string) (*CallLog, error) {
	if callID == "" {
		return nil, fmt.Errorf("call ID is empty")
	}

	var log CallLog
	if err := c.doJSON(ctx, http.MethodGet, "/calls/"+callID, nil, &log); err != nil {
		return nil, err
	}
	if log.ID == "" {
		log.ID = callID
	}
	return &log, nil
}

// doJSON performs a JSON round trip against the provider API.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("voice API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// OutcomeForStatus maps a provider call status to a candidate status. The
// second return is false for statuses that are still in flight.
func OutcomeForStatus(status string) (string, bool) {
	switch strings.ToLower(status) {
	case "completed", "finalized", "done":
		return "contacted", true
	case "failed", "no-answer", "busy", "cancelled":
		return "not_interested", true
	default:
		return "", false
	}
}
