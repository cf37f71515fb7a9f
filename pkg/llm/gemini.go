package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient returns a Client backed by the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, errors.New("no gemini api key set")
	}
	cli, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{client: cli}, nil
}

func (c *geminiClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	parts := make([]genai.Part, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, genai.Text(m.Content))
	}

	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	return candidateText(resp)
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		text, ok := part.(genai.Text)
		if !ok {
			return "", fmt.Errorf("%w: unexpected part %T", ErrMalformedResponse, part)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(string(text))
	}
	return sb.String(), nil
}
