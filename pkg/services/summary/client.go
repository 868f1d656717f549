package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/de-tools/data-probe/pkg/models/domain"
)

// Client calls a chat-completions style text-generation endpoint. Transient
// failures (429 and 5xx) are retried with exponential backoff and jitter.
type Client struct {
	httpClient       *http.Client
	apiKey           string
	baseURL          string
	model            string
	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	// RetryMax is the total number of attempts, not the number of retries.
	RetryMax       int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type generateRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type generateResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// APIError is a structured error response from the generation endpoint.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.RetryMax <= 0 {
		cfg.RetryMax = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	if cfg.RetryMaxDelay <= 0 {
		cfg.RetryMaxDelay = 4 * time.Second
	}
	return &Client{
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		apiKey:           cfg.APIKey,
		baseURL:          cfg.BaseURL,
		model:            cfg.Model,
		retryMaxAttempts: cfg.RetryMax,
		retryBaseDelay:   cfg.RetryBaseDelay,
		retryMaxDelay:    cfg.RetryMaxDelay,
	}
}

func (c *Client) Summarize(ctx context.Context, rows []domain.Record, columns []string, maxSample int) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("summarizer api key is missing")
	}

	payload, err := json.Marshal(generateRequest{
		Model: c.model,
		Messages: []message{
			{Role: "user", Content: buildPrompt(rows, columns, maxSample)},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat/completions"
	backoff := c.retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= c.retryMaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < c.retryMaxAttempts {
				if err := c.sleep(ctx, &backoff); err != nil {
					return "", err
				}
				continue
			}
			return "", fmt.Errorf("summarize request failed: %w", lastErr)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return "", fmt.Errorf("read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusOK {
			var out generateResponse
			if err := json.Unmarshal(body, &out); err != nil {
				return "", fmt.Errorf("decode response: %w", err)
			}
			if len(out.Choices) == 0 {
				return "", errors.New("generation response contained no choices")
			}
			return out.Choices[0].Message.Content, nil
		}

		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, apiErr)
		lastErr = apiErr

		if !retryable(resp.StatusCode) || attempt == c.retryMaxAttempts {
			return "", lastErr
		}
		if err := c.sleep(ctx, &backoff); err != nil {
			return "", err
		}
	}
	return "", lastErr
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func (c *Client) sleep(ctx context.Context, backoff *time.Duration) error {
	delay := *backoff + time.Duration(rand.Int63n(int64(*backoff)/2+1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}
	*backoff *= 2
	if *backoff > c.retryMaxDelay {
		*backoff = c.retryMaxDelay
	}
	return nil
}
