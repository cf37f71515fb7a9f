// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"fileqa-go/internal/model"
	"fileqa-go/internal/service"
	"fileqa-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// QAHandler 负责处理文档问答相关的 API 请求。
type QAHandler struct {
	qaService    service.QAService
	docService   service.DocumentService
	defaultModel string
}

// NewQAHandler 创建一个新的 QAHandler 实例。
func NewQAHandler(qaService service.QAService, docService service.DocumentService, defaultModel string) *QAHandler {
	return &QAHandler{
		qaService:    qaService,
		docService:   docService,
		defaultModel: defaultModel,
	}
}

// AskRequest 定义了问答 API 的 multipart 表单结构。
type AskRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Question string                `form:"question" binding:"required"`
	Model    string                `form:"model"`
}

// ListModels 返回可选择的模型列表。
func (h *QAHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": model.ModelsDTO{
			Models:  h.qaService.SupportedModels(),
			Default: h.defaultModel,
		},
	})
}

// Ask 处理上传文档并提问的请求。缺少文件或问题时直接返回 400，不会调用模型。
func (h *QAHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnw("Ask: 无效的请求参数", "clientIP", c.ClientIP(), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "缺少文件或问题", "data": nil})
		return
	}

	if limit := h.docService.MaxBytes(); limit > 0 && req.File.Size > limit {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"code":    http.StatusRequestEntityTooLarge,
			"message": fmt.Sprintf("文件大小超过限制 (%d bytes)", limit),
			"data":    nil,
		})
		return
	}

	data, err := readUpload(req.File, h.docService.MaxBytes())
	if err != nil {
		log.Error("Ask: 读取上传文件失败", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "读取上传文件失败", "data": nil})
		return
	}

	doc, err := h.docService.Decode(req.File.Filename, data)
	if err != nil {
		h.writeError(c, err)
		return
	}

	modelName := req.Model
	if modelName == "" {
		modelName = h.defaultModel
	}

	answer, err := h.qaService.Ask(c.Request.Context(), model.Query{
		Document: doc,
		Question: req.Question,
		Model:    modelName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    answer,
	})
}

func (h *QAHandler) writeError(c *gin.Context, err error) {
	var inputErr *service.InputError
	var svcErr *service.ServiceError
	switch {
	case errors.As(err, &inputErr):
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": inputErr.Error(), "data": nil})
	case errors.As(err, &svcErr):
		c.JSON(http.StatusBadGateway, gin.H{"code": http.StatusBadGateway, "message": "AI服务暂时不可用，请稍后重试", "data": nil})
	default:
		log.Error("Ask: 未知错误", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "服务器内部错误", "data": nil})
	}
}

func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		// 多读一个字节，让超限的内容在 Decode 中被拒绝
		r = io.LimitReader(f, limit+1)
	}
	return io.ReadAll(r)
}
