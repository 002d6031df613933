package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
)

const (
	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	defaultMaxTries        = 3
	defaultInitialInterval = 500 * time.Millisecond
	probeTimeout           = 2 * time.Second
)

// OllamaConfig configures the Ollama client
type OllamaConfig struct {
	BaseURL string
	Model   string

	// HTTPClient is optional, defaults to a client with no timeout;
	// the caller's context bounds each call
	HTTPClient *http.Client

	// MaxTries is optional, defaults to 3
	MaxTries uint

	// InitialInterval is optional, defaults to 500ms
	InitialInterval time.Duration

	// Clock is optional, defaults to the real clock
	Clock clock.Clock
}

// Validate validates the config and sets defaults
func (cfg *OllamaConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	errors.ValidateRequired("model", cfg.Model, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = defaultMaxTries
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaultInitialInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return nil
}

type ollamaClient struct {
	baseURL         string
	model           string
	httpClient      *http.Client
	maxTries        uint
	initialInterval time.Duration
	clock           clock.Clock
}

// NewOllama creates a client for an Ollama server
func NewOllama(cfg *OllamaConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ollama config")
	}

	return &ollamaClient{
		baseURL:         cfg.BaseURL,
		model:           cfg.Model,
		httpClient:      cfg.HTTPClient,
		maxTries:        cfg.MaxTries,
		initialInterval: cfg.InitialInterval,
		clock:           cfg.Clock,
	}, nil
}

type generateRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count"`
}

func (c *ollamaClient) Generate(ctx context.Context, nc engine.NarrativeContext, prompt string) (*Narrative, error) {
	bundle, err := json.Marshal(nc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal narrative context")
	}

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		System: prompt,
		Prompt: string(bundle),
		Stream: false,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal request")
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval

	attempt := 0
	resp, err := backoff.Retry(ctx, func() (*generateResponse, error) {
		attempt++
		out, err := c.doGenerate(ctx, body)
		if err != nil {
			slog.DebugContext(ctx, "ollama generate attempt failed",
				"attempt", attempt,
				"error", err)
		}
		return out, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.maxTries))
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "narrator timed out")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("ollama generate failed after %d attempts", attempt))
	}

	text := strings.TrimSpace(resp.Response)
	if text == "" {
		return nil, errors.Unavailable("ollama returned an empty response")
	}

	return &Narrative{
		Text:        text,
		GeneratedAt: c.clock.Now(),
		TokenCount:  resp.EvalCount,
	}, nil
}

func (c *ollamaClient) doGenerate(ctx context.Context, body []byte) (*generateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		statusErr := fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		// 4xx other than 429 is not retried
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decoding response: %w", err))
	}

	return &out, nil
}

func (c *ollamaClient) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tagsPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "ollama probe failed", "error", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

var _ Client = (*ollamaClient)(nil)
