package service

import (
	"context"
	"errors"
	"testing"

	"fileqa-go/internal/model"
	"fileqa-go/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testModels = []string{"gemma2", "llama3.1", "mistral"}

type mockLLMClient struct {
	mock.Mock
}

func (m *mockLLMClient) Complete(ctx context.Context, modelName string, messages []llm.Message) (string, error) {
	args := m.Called(ctx, modelName, messages)
	return args.String(0), args.Error(1)
}

func TestQAService_Ask(t *testing.T) {
	client := new(mockLLMClient)
	expected := []llm.Message{{Role: "user", Content: BuildPrompt("The sky is blue.", "What color is the sky?")}}
	client.On("Complete", mock.Anything, "mistral", expected).Return("Blue.", nil).Once()

	svc := NewQAService(client, testModels)
	answer, err := svc.Ask(context.Background(), model.Query{
		Document: model.TextDocument("sky.txt", "The sky is blue."),
		Question: "What color is the sky?",
		Model:    "mistral",
	})

	require.NoError(t, err)
	assert.Equal(t, "Blue.", answer.Content)
	assert.Equal(t, "mistral", answer.Model)
	client.AssertExpectations(t)
}

func TestQAService_Ask_ReturnsContentUnchanged(t *testing.T) {
	raw := "  Unable to find an answer.\n\n- not trimmed  "
	client := new(mockLLMClient)
	client.On("Complete", mock.Anything, "gemma2", mock.Anything).Return(raw, nil)

	svc := NewQAService(client, testModels)
	answer, err := svc.Ask(context.Background(), model.Query{
		Document: model.TextDocument("empty.md", ""),
		Question: "Summarize.",
		Model:    "gemma2",
	})

	require.NoError(t, err)
	assert.Equal(t, raw, answer.Content)

	// 空文档也要构建提示词并发送
	messages := client.Calls[0].Arguments.Get(2).([]llm.Message)
	require.Len(t, messages, 1)
	assert.Equal(t, BuildPrompt("", "Summarize."), messages[0].Content)
}

func TestQAService_Ask_InputErrors(t *testing.T) {
	testCases := []struct {
		name  string
		query model.Query
		field string
	}{
		{
			name:  "empty question",
			query: model.Query{Document: model.TextDocument("a.txt", "doc"), Question: "", Model: "mistral"},
			field: "question",
		},
		{
			name:  "blank question",
			query: model.Query{Document: model.TextDocument("a.txt", "doc"), Question: " \t\n", Model: "mistral"},
			field: "question",
		},
		{
			name:  "binary document",
			query: model.Query{Document: model.UnsupportedBinary("a.pdf", "application/pdf"), Question: "q", Model: "mistral"},
			field: "file",
		},
		{
			name:  "missing document",
			query: model.Query{Question: "q", Model: "mistral"},
			field: "file",
		},
		{
			name:  "unknown model",
			query: model.Query{Document: model.TextDocument("a.txt", "doc"), Question: "q", Model: "gpt-5"},
			field: "model",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := new(mockLLMClient)
			svc := NewQAService(client, testModels)

			_, err := svc.Ask(context.Background(), tc.query)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tc.field, inputErr.Field)
			client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestQAService_Ask_ServiceError(t *testing.T) {
	cause := errors.New("connection refused")
	client := new(mockLLMClient)
	client.On("Complete", mock.Anything, "llama3.1", mock.Anything).Return("", cause)

	svc := NewQAService(client, testModels)
	_, err := svc.Ask(context.Background(), model.Query{
		Document: model.TextDocument("a.txt", "doc"),
		Question: "q",
		Model:    "llama3.1",
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "llama3.1", svcErr.Model)
	assert.ErrorIs(t, err, cause)
}

func TestQAService_SupportedModels(t *testing.T) {
	svc := NewQAService(new(mockLLMClient), testModels)
	models := svc.SupportedModels()
	assert.Equal(t, testModels, models)

	models[0] = "changed"
	assert.Equal(t, "gemma2", svc.SupportedModels()[0])
}
