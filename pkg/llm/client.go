/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/larisphp/laris/pkg/apperr"
	"github.com/larisphp/laris/pkg/defaults"
)

const (
	// chatCompletionsPath is the OpenAI-compatible completions endpoint,
	// relative to the configured base URL.
	chatCompletionsPath = "/chat/completions"

	defaultMaxRetries = 3
	defaultBackoff    = time.Second

	// requestsPerSecond caps the request rate against the provider.
	requestsPerSecond = 2
)

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat-completions API.
type Client struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int

	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxRetries sets the retry budget for retryable failures.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithBackoff sets the base backoff between retries; attempt i waits
// backoff << i.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// NewClient creates a chat-completions client. baseURL is the API root
// without the endpoint path, e.g. "https://api.openai.com/v1".
func NewClient(apiKey, baseURL, model string, maxTokens int, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		maxTokens:  maxTokens,
		httpClient: newHTTPClient(),
		limiter:    rate.NewLimiter(requestsPerSecond, 1),
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaults.HTTPClientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: defaults.HTTPConnectTimeout,
			}).DialContext,
			TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
			ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		},
	}
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Chat sends the messages and returns the first choice's content.
// Transport errors, 429 and 5xx responses are retried with exponential
// backoff; auth failures are returned immediately.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", apperr.New(apperr.CodeUnauthorized, "API key not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "failed to marshal chat request", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff << (attempt - 1)
			slog.Debug("retrying chat request",
				slog.Int("attempt", attempt), slog.Duration("wait", wait))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", apperr.Wrap(apperr.CodeTimeout, "chat request canceled", ctx.Err())
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return "", apperr.Wrap(apperr.CodeTimeout, "chat request canceled", err)
		}

		content, retryable, err := c.send(ctx, payload)
		if err == nil {
			return content, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

// send performs one request. The second return reports whether the
// failure is worth retrying.
func (c *Client) send(ctx context.Context, payload []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+chatCompletionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", false, apperr.Wrap(apperr.CodeInternal, "failed to create chat request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, apperr.Wrap(apperr.CodeInternal, "chat request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, apperr.Wrap(apperr.CodeInternal, "failed to read chat response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// handled below
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", false, apperr.Newf(apperr.CodeUnauthorized,
			"provider rejected credentials (%d): %s", resp.StatusCode, apiErrorMessage(body))
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", true, apperr.Newf(apperr.CodeRateLimit,
			"provider rate limit exceeded: %s", apiErrorMessage(body))
	case resp.StatusCode >= 500:
		return "", true, apperr.Newf(apperr.CodeInternal,
			"provider error (%d): %s", resp.StatusCode, apiErrorMessage(body))
	default:
		return "", false, apperr.Newf(apperr.CodeInvalidInput,
			"provider rejected request (%d): %s", resp.StatusCode, apiErrorMessage(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false, apperr.Wrap(apperr.CodeInternal, "failed to decode chat response", err)
	}
	if parsed.Error != nil {
		return "", false, apperr.Newf(apperr.CodeInternal, "provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", false, apperr.New(apperr.CodeInternal, "chat response contains no choices")
	}
	return parsed.Choices[0].Message.Content, false, nil
}

func apiErrorMessage(body []byte) string {
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		return "no response body"
	}
	return s
}
