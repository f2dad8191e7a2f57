package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abbaschallawala95/studio/internal/charging"
)

var (
	// ErrUnavailable means the narrative service could not be reached or
	// answered with a non-success status. Callers degrade to "no insights
	// available" instead of failing the page.
	ErrUnavailable = errors.New("insights service unavailable")

	// ErrMalformedReply means the service answered but the reply did not
	// match the expected four-field schema.
	ErrMalformedReply = errors.New("malformed insights reply")
)

// Insights is the structured reply of the narrative service: four prose
// renditions of the statistics the app also computes locally. These values
// are advisory text and never the source of a displayed number elsewhere.
type Insights struct {
	TotalChargingTime         string `json:"totalChargingTime"`
	AverageChargePerSession   string `json:"averageChargePerSession"`
	MostFrequentChargingTimes string `json:"mostFrequentChargingTimes"`
	TotalEnergyConsumed       string `json:"totalEnergyConsumed"`
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
}

// NewClient builds a client for the configured endpoint. A zero timeout
// defaults to 30 seconds.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the client has enough configuration to make a
// request.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != "" && c.Model != ""
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the session history to the narrative service and returns
// its four-field reply. Transport failures and bad statuses wrap
// ErrUnavailable; schema violations wrap ErrMalformedReply.
func (c *Client) Generate(ctx context.Context, sessions []charging.Session) (*Insights, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: BuildPrompt(sessions)},
		},
		ResponseFormat: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read reply: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedReply)
	}

	return ParseInsights([]byte(cr.Choices[0].Message.Content))
}

// ParseInsights validates a raw JSON reply against the fixed schema: all
// four string fields present and non-empty.
func ParseInsights(raw []byte) (*Insights, error) {
	var ins Insights
	if err := json.Unmarshal(raw, &ins); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	for field, v := range map[string]string{
		"totalChargingTime":         ins.TotalChargingTime,
		"averageChargePerSession":   ins.AverageChargePerSession,
		"mostFrequentChargingTimes": ins.MostFrequentChargingTimes,
		"totalEnergyConsumed":       ins.TotalEnergyConsumed,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: missing field %s", ErrMalformedReply, field)
		}
	}
	return &ins, nil
}
