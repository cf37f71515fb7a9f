// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"strings"
	"time"

	"fileqa-go/internal/model"
	"fileqa-go/pkg/llm"
	"fileqa-go/pkg/log"

	"github.com/samber/lo"
)

// QAService 定义了基于文档问答的接口。
type QAService interface {
	Ask(ctx context.Context, q model.Query) (model.Answer, error)
	SupportedModels() []string
}

type qaService struct {
	llmClient llm.Client
	models    []string
}

// NewQAService 创建一个新的 QAService 实例。models 为允许选择的模型名。
func NewQAService(llmClient llm.Client, models []string) QAService {
	return &qaService{
		llmClient: llmClient,
		models:    models,
	}
}

// SupportedModels 返回允许选择的模型列表副本。
func (s *qaService) SupportedModels() []string {
	return append([]string(nil), s.models...)
}

// Ask 构建提示词并同步调用一次模型后端。
// 输入不合法时返回 *InputError 且不调用后端；后端任何失败都返回 *ServiceError。
func (s *qaService) Ask(ctx context.Context, q model.Query) (model.Answer, error) {
	if err := s.validate(q); err != nil {
		return model.Answer{}, err
	}

	prompt := BuildPrompt(q.Document.Text, q.Question)
	messages := []llm.Message{{Role: llm.RoleUser, Content: prompt}}

	start := time.Now()
	content, err := s.llmClient.Complete(ctx, q.Model, messages)
	if err != nil {
		log.Errorf("调用模型失败: model=%s, document=%s, err=%v", q.Model, q.Document.Name, err)
		return model.Answer{}, &ServiceError{Model: q.Model, Err: err}
	}

	log.Infow("question answered",
		"model", q.Model,
		"document", q.Document.Name,
		"promptBytes", len(prompt),
		"answerBytes", len(content),
		"latency", time.Since(start).String(),
	)
	return model.Answer{Content: content, Model: q.Model}, nil
}

func (s *qaService) validate(q model.Query) error {
	if strings.TrimSpace(q.Question) == "" {
		return &InputError{Field: "question", Reason: "must not be empty"}
	}
	if q.Document.Kind == model.DocumentUnknown {
		return &InputError{Field: "file", Reason: "no document supplied"}
	}
	if !q.Document.IsText() {
		return &InputError{Field: "file", Reason: "unsupported document type " + q.Document.MIMEType}
	}
	if !lo.Contains(s.models, q.Model) {
		return &InputError{Field: "model", Reason: "unsupported model " + q.Model}
	}
	return nil
}
