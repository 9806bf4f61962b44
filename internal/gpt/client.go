package gpt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "deepseek/deepseek-r1:free"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 150
	DefaultTimeout     = 30 * time.Second
)

var ErrEmptyResponse = errors.New("no response from generation service")

// Generator turns a natural-language description into raw reply text.
type Generator interface {
	Generate(ctx context.Context, description string) (*Completion, error)
}

type Completion struct {
	Content          string
	Model            string
	TokensUsed       int
	ProcessingTimeMs int
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration

	// RetryInitial is the first backoff interval; zero keeps the library default.
	RetryInitial time.Duration
	// RetryMaxElapsed bounds all retries; zero disables retrying.
	RetryMaxElapsed time.Duration
}

type Client struct {
	openAI          *openai.Client
	model           string
	temperature     float32
	maxTokens       int
	retryInitial    time.Duration
	retryMaxElapsed time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		openAI:          openai.NewClientWithConfig(oc),
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxTokens:       cfg.MaxTokens,
		retryInitial:    cfg.RetryInitial,
		retryMaxElapsed: cfg.RetryMaxElapsed,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, description string) (*Completion, error) {
	start := time.Now()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(description),
			},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	slog.Info("sending request to generation service",
		"model", c.model,
		"description_length", len(description))

	attempt := 0
	op := func() (openai.ChatCompletionResponse, error) {
		attempt++
		resp, err := c.openAI.CreateChatCompletion(ctx, req)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil || !isRetryable(err) {
			return resp, backoff.Permanent(err)
		}
		slog.Warn("generation request failed, retrying", "attempt", attempt, "error", err)
		return resp, err
	}

	resp, err := backoff.RetryWithData(op, backoff.WithContext(c.backOff(), ctx))
	if err != nil {
		slog.Error("generation service error", "error", err, "model", c.model, "attempts", attempt)
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	preview := content
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	slog.Info("received response from generation service",
		"model", resp.Model,
		"tokens_used", resp.Usage.TotalTokens,
		"response_length", len(content),
		"response_preview", preview)

	return &Completion{
		Content:          content,
		Model:            resp.Model,
		TokensUsed:       resp.Usage.TotalTokens,
		ProcessingTimeMs: int(time.Since(start).Milliseconds()),
	}, nil
}

func (c *Client) backOff() backoff.BackOff {
	if c.retryMaxElapsed <= 0 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	if c.retryInitial > 0 {
		b.InitialInterval = c.retryInitial
	}
	b.MaxElapsedTime = c.retryMaxElapsed
	return b
}

// isRetryable treats rate limiting, server errors and transport failures as
// transient. Any other status is final.
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retryableStatus(reqErr.HTTPStatusCode)
	}
	return true
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
