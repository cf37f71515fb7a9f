package model

// Query 是一次提问：文档、问题和所选模型。
type Query struct {
	Document DocumentSource
	Question string
	Model    string
}

// Answer 是模型返回的原始文本，不做任何解析。
type Answer struct {
	Content string `json:"answer"`
	Model   string `json:"model"`
}

// ModelsDTO 是支持模型列表的响应结构。
type ModelsDTO struct {
	Models  []string `json:"models"`
	Default string   `json:"default"`
}
