// Package llm provides clients for chat-completion backends.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fileqa-go/internal/config"
)

// RoleUser is the only role the question flow ever sends.
const RoleUser = "user"

// ErrMalformedResponse is returned when the backend answers 200 but the body
// does not carry a message.
var ErrMalformedResponse = errors.New("malformed chat response")

// Message 表示一条角色消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for a chat-completion backend.
// Complete sends the messages to the given model and blocks until the whole
// answer is available.
type Client interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}

// NewClient creates a client for the provider named in the config.
func NewClient(cfg config.LLMConfig) (Client, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch strings.ToLower(cfg.Provider) {
	case "", "ollama":
		return NewOllamaClient(cfg.BaseURL, httpClient), nil
	case "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, httpClient), nil
	case "gemini":
		return NewGeminiClient(context.Background(), cfg.APIKey)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
