// =============================================================================
// WhiteSource CSV Agent - Inventory Client
// =============================================================================
//
// This module sends the project submission to the WhiteSource agent API.
//
// WIRE FORMAT:
//   - One form-encoded POST per run, never retried
//   - Fields: type, agent, agentVersion, token, timeStamp, requestToken, diff
//   - diff is a JSON array holding the single project submission
//   - The response is a JSON envelope whose data field is a JSON string
//
// =============================================================================

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/wss-csv-agent/internal/types"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultURL is used when wssUrl is not configured.
	DefaultURL = "https://saas.whitesourcesoftware.com/agent"

	// AgentType and AgentVersion identify this agent to the service.
	AgentType    = "csv-plugin"
	AgentVersion = "1.0"

	requestTypeUpdate = "UPDATE"

	// statusSuccess is the envelope status the service uses for success.
	statusSuccess = 1
)

// =============================================================================
// CLIENT
// =============================================================================

// Client submits project inventories to the service
type Client struct {
	httpClient *http.Client
	serviceURL string
	logger     *zap.SugaredLogger

	now          func() time.Time
	requestToken func() string
}

// New creates a new API client. An empty serviceURL selects DefaultURL and a
// nil httpClient selects a client with a one minute timeout.
func New(serviceURL string, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if serviceURL == "" {
		serviceURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: time.Minute,
		}
	}

	return &Client{
		httpClient:   httpClient,
		serviceURL:   serviceURL,
		logger:       logger,
		now:          time.Now,
		requestToken: uuid.NewString,
	}
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.serviceURL
}

// =============================================================================
// UPDATE REQUEST
// =============================================================================

// resultEnvelope is the wrapper every agent API response comes in. Data holds
// the JSON-encoded result as a string.
type resultEnvelope struct {
	EnvelopeVersion string `json:"envelopeVersion"`
	Status          int    `json:"status"`
	Message         string `json:"message"`
	Data            string `json:"data"`
}

// Update sends one UPDATE request for the submission, authenticated by
// apiKey. It is never retried.
func (c *Client) Update(ctx context.Context, apiKey string, submission *types.ProjectSubmission) (*types.SubmissionResult, error) {
	diff, err := json.Marshal([]*types.ProjectSubmission{submission})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal projects: %w", err)
	}

	token := c.requestToken()
	form := url.Values{}
	form.Set("type", requestTypeUpdate)
	form.Set("agent", AgentType)
	form.Set("agentVersion", AgentVersion)
	form.Set("token", apiKey)
	form.Set("timeStamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	form.Set("requestToken", token)
	form.Set("diff", string(diff))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf("Sending %d dependencies for project %s (request %s)",
		len(submission.Dependencies), submission.ProjectToken, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Msg: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, body)
	}

	return decodeResult(resp.StatusCode, body)
}

// =============================================================================
// RESPONSE HANDLING
// =============================================================================

func decodeResult(statusCode int, body []byte) (*types.SubmissionResult, error) {
	var envelope resultEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ServiceError{StatusCode: statusCode, Msg: "failed to decode response", Err: err}
	}

	if envelope.Status != statusSuccess {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("service returned status %d", envelope.Status)
		}
		return nil, &ServiceError{StatusCode: statusCode, Msg: msg}
	}

	var result types.SubmissionResult
	if err := json.Unmarshal([]byte(envelope.Data), &result); err != nil {
		return nil, &ServiceError{StatusCode: statusCode, Msg: "failed to decode update result", Err: err}
	}

	return &result, nil
}

// handleErrorResponse turns a non-200 response into a ServiceError, appending
// the envelope message when the body carries one.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	var msg string
	switch {
	case statusCode >= 500 && statusCode < 600:
		msg = fmt.Sprintf("server error: %d", statusCode)
	case statusCode >= 400 && statusCode < 500:
		msg = fmt.Sprintf("client error: %d", statusCode)
	default:
		msg = fmt.Sprintf("unexpected status: %d", statusCode)
	}

	var envelope resultEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Debugf("Update failed - status: %d, body is not an envelope: %v", statusCode, err)
		return &ServiceError{StatusCode: statusCode, Msg: msg}
	}

	c.logger.Debugf("Update failed - status: %d, message: %s", statusCode, envelope.Message)
	if envelope.Message != "" {
		msg += ": " + envelope.Message
	}
	return &ServiceError{StatusCode: statusCode, Msg: msg}
}
