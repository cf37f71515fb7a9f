package model

// DocumentKind 区分上传内容能否作为文本上下文使用。
type DocumentKind int

const (
	// DocumentUnknown 是零值，表示没有经过识别的文档。
	DocumentUnknown DocumentKind = iota
	// DocumentText 表示可解码为 UTF-8 文本的文档。
	DocumentText
	// DocumentUnsupportedBinary 表示 PDF 等无法直接作为文本使用的内容。
	DocumentUnsupportedBinary
)

func (k DocumentKind) String() string {
	switch k {
	case DocumentUnknown:
		return "unknown"
	case DocumentText:
		return "text"
	case DocumentUnsupportedBinary:
		return "unsupported_binary"
	default:
		return "invalid"
	}
}

// DocumentSource 是一次请求中上传的文档。只有 Kind 为 DocumentText 时 Text 才有意义。
type DocumentSource struct {
	Kind     DocumentKind
	Name     string
	MIMEType string
	Text     string
}

// TextDocument 构造一个文本文档，text 可以为空。
func TextDocument(name, text string) DocumentSource {
	return DocumentSource{Kind: DocumentText, Name: name, MIMEType: "text/plain", Text: text}
}

// UnsupportedBinary 构造一个不可用作上下文的二进制文档。
func UnsupportedBinary(name, mimeType string) DocumentSource {
	return DocumentSource{Kind: DocumentUnsupportedBinary, Name: name, MIMEType: mimeType}
}

// IsText 报告文档是否可作为提示词上下文。
func (d DocumentSource) IsText() bool {
	return d.Kind == DocumentText
}
