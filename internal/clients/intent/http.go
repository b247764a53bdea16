package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
)

const defaultTimeout = 5 * time.Second

// HTTPConfig holds the configuration for the hosted interpreter client.
type HTTPConfig struct {
	// BaseURL is the interpreter endpoint, e.g. "http://interpreter:8090".
	BaseURL string

	// Timeout bounds each interpretation request. Defaults to 5s.
	Timeout time.Duration

	// HTTPClient allows injecting a client for testing. Defaults to a
	// client with the configured timeout.
	HTTPClient *http.Client
}

// Validate ensures the configuration is complete.
func (c *HTTPConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	return nil
}

// HTTPClient calls a hosted intent interpreter over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the hosted interpreter.
func NewHTTPClient(cfg *HTTPConfig) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPClient{
		baseURL: cfg.BaseURL,
		client:  client,
	}, nil
}

type interpretRequest struct {
	Text    string   `json:"text"`
	Skills  []string `json:"skills,omitempty"`
	Enemies []string `json:"enemies,omitempty"`
}

type interpretResponse struct {
	Type       string  `json:"type"`
	Target     string  `json:"target,omitempty"`
	Skill      string  `json:"skill,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Interpret implements Client by calling the hosted interpreter.
func (c *HTTPClient) Interpret(ctx context.Context, input *InterpretInput) (*InterpretOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body, err := json.Marshal(interpretRequest{
		Text:    input.Text,
		Skills:  input.Skills,
		Enemies: input.Enemies,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode interpret request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/interpret", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build interpret request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "intent interpreter unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("intent interpreter returned status %d", resp.StatusCode)
	}

	var decoded interpretResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode interpret response")
	}

	intentType := parseIntentType(decoded.Type)
	return &InterpretOutput{Intent: &entities.Intent{
		Type:       intentType,
		Target:     decoded.Target,
		Skill:      decoded.Skill,
		Confidence: decoded.Confidence,
	}}, nil
}

func parseIntentType(s string) entities.IntentType {
	switch entities.IntentType(s) {
	case entities.IntentAttack, entities.IntentMove, entities.IntentUseSkill,
		entities.IntentUseItem, entities.IntentInteract:
		return entities.IntentType(s)
	default:
		return entities.IntentUnknown
	}
}
