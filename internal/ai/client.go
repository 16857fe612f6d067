// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package ai proxies career-guidance prompts to an OpenAI-compatible
// chat-completions API. Calls run behind a circuit breaker so a slow or
// failing upstream cannot cascade into the rest of the service.
package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/skillsync/internal/config"
	"github.com/tomtom215/skillsync/internal/metrics"
)

// ErrUnavailable indicates the upstream is failing and the circuit breaker
// is rejecting calls. API handlers map it to 502 EXTERNAL_SERVICE_FAILED.
var ErrUnavailable = errors.New("ai upstream unavailable")

// Message is one chat turn in the OpenAI wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionParams are the per-call knobs each operation tunes.
type completionParams struct {
	messages    []Message
	temperature float64
	maxTokens   int
	jsonObject  bool
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client talks to the chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	cb         *gobreaker.CircuitBreaker[*chatResponse]
	logger     zerolog.Logger
}

// NewClient builds an LLM client from the AI configuration.
//
// Circuit breaker tuning: opens at a 60% failure rate once at least 10
// requests are in the window, allows 3 probes half-open, and waits 2 minutes
// before probing again.
func NewClient(cfg *config.AIConfig, logger zerolog.Logger) *Client {
	log := logger.With().Str("component", "ai").Logger()
	cbName := "llm-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*chatResponse](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		cb:         cb,
		logger:     log,
	}
}

// complete runs one chat completion through the circuit breaker and returns
// the assistant's message content.
func (c *Client) complete(ctx context.Context, operation string, params completionParams) (string, error) {
	start := time.Now()

	resp, err := c.cb.Execute(func() (*chatResponse, error) {
		return c.doRequest(ctx, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "rejected").Inc()
			metrics.ObserveLLMRequest(operation, "rejected", time.Since(start))
			return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "failure").Inc()
		metrics.ObserveLLMRequest(operation, "error", time.Since(start))
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "success").Inc()
	metrics.ObserveLLMRequest(operation, "success", time.Since(start))
	metrics.LLMTokensUsed.WithLabelValues("prompt").Add(float64(resp.Usage.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues("completion").Add(float64(resp.Usage.CompletionTokens))

	c.logger.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("LLM request completed")

	return resp.Choices[0].Message.Content, nil
}

func (c *Client) doRequest(ctx context.Context, params completionParams) (*chatResponse, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    params.messages,
		Temperature: params.temperature,
		MaxTokens:   params.maxTokens,
	}
	if params.jsonObject {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read llm response: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse llm response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		msg := httpResp.Status
		if resp.Error != nil {
			msg = resp.Error.Message
		}
		return nil, fmt.Errorf("llm returned status %d: %s", httpResp.StatusCode, msg)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm response contained no choices")
	}

	return &resp, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
