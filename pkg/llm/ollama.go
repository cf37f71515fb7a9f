package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOllamaURL = "http://localhost:11434"

type ollamaClient struct {
	baseURL string
	client  *http.Client
}

// NewOllamaClient returns a Client backed by Ollama's /api/chat endpoint.
func NewOllamaClient(baseURL string, httpClient *http.Client) Client {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ollamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Message *Message `json:"message"`
	Error   string   `json:"error,omitempty"`
}

// Complete calls /api/chat with streaming disabled.
func (c *ollamaClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	reqBytes, err := json.Marshal(ollamaChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ollama: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}

	var chatResp ollamaChatResponse
	decodeErr := json.Unmarshal(body, &chatResp)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && chatResp.Error != "" {
			return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, chatResp.Error)
		}
		return "", fmt.Errorf("ollama returned status %d, body: %s", resp.StatusCode, string(body))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if chatResp.Error != "" {
		return "", fmt.Errorf("ollama error: %s", chatResp.Error)
	}
	if chatResp.Message == nil {
		return "", fmt.Errorf("%w: missing message", ErrMalformedResponse)
	}
	return chatResp.Message.Content, nil
}
