package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient talks to any OpenAI-compatible /chat/completions endpoint
// (DeepSeek, vLLM, LM Studio ...).
type openaiClient struct {
	client *openai.Client
}

// NewOpenAIClient returns a Client for an OpenAI-compatible API. An empty
// baseURL keeps the library default (api.openai.com).
func NewOpenAIClient(baseURL, apiKey string, httpClient *http.Client) Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &openaiClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *openaiClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	chatMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMsgs = append(chatMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: chatMsgs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
