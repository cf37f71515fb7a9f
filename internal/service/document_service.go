package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fileqa-go/internal/config"
	"fileqa-go/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"golang.org/x/text/encoding/unicode"
)

// DocumentService 负责把上传的原始字节识别为可用的文档。
type DocumentService interface {
	Decode(fileName string, data []byte) (model.DocumentSource, error)
	AllowedExtensions() []string
	MaxBytes() int64
}

type documentService struct {
	allowedExts []string
	maxBytes    int64
}

var binaryExtensions = map[string]string{
	".pdf": "application/pdf",
}

// NewDocumentService 创建一个新的 DocumentService 实例。
func NewDocumentService(cfg config.UploadConfig) DocumentService {
	exts := lo.Map(cfg.AllowedExtensions, func(ext string, _ int) string {
		return strings.ToLower(ext)
	})
	return &documentService{
		allowedExts: exts,
		maxBytes:    cfg.MaxBytes(),
	}
}

func (s *documentService) AllowedExtensions() []string {
	return append([]string(nil), s.allowedExts...)
}

func (s *documentService) MaxBytes() int64 {
	return s.maxBytes
}

// Decode 根据扩展名和内容嗅探判断文档类型。
// PDF 和非文本内容返回 UnsupportedBinary，不会被编码进提示词。
func (s *documentService) Decode(fileName string, data []byte) (model.DocumentSource, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !lo.Contains(s.allowedExts, ext) {
		return model.DocumentSource{}, &InputError{
			Field:  "file",
			Reason: fmt.Sprintf("unsupported file extension %q, allowed: %s", ext, strings.Join(s.allowedExts, ", ")),
		}
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return model.DocumentSource{}, &InputError{
			Field:  "file",
			Reason: fmt.Sprintf("file exceeds %d bytes", s.maxBytes),
		}
	}

	if mimeType, ok := binaryExtensions[ext]; ok {
		return model.UnsupportedBinary(fileName, mimeType), nil
	}

	// 合法 UTF-8 且不含 NUL 即视为文本；mimetype 只用于给其余内容打标签
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		detected := mimetype.Detect(data)
		if !isText(detected) {
			return model.UnsupportedBinary(fileName, detected.String()), nil
		}
		return model.DocumentSource{}, &InputError{Field: "file", Reason: "content is not valid UTF-8"}
	}

	// 去掉可能存在的 UTF-8 BOM
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return model.DocumentSource{}, &InputError{Field: "file", Reason: err.Error()}
	}
	return model.TextDocument(fileName, string(text)), nil
}

func isText(m *mimetype.MIME) bool {
	for mt := m; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
