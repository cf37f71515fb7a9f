// Package middleware 存放 Gin 框架的中间件。
package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"fileqa-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// 超过该长度的请求体/响应体在日志中截断
const maxLoggedBody = 2048

// bodyLogWriter 用于捕获响应体
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 将响应写入 gin.ResponseWriter 和内部的 buffer
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestLogger 是一个 Gin 中间件，用于记录请求和响应日志。
// multipart 请求只记录长度，不记录上传的文档内容。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody string
		if c.Request.Body != nil && !isMultipart(c.ContentType()) {
			raw, _ := io.ReadAll(c.Request.Body)
			// 重新设置请求体，以便后续处理函数可以正常读取
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			requestBody = truncate(string(raw))
		}

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		log.Infow("HTTP Request Log",
			"statusCode", c.Writer.Status(),
			"latency", time.Since(startTime).String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"contentLength", c.Request.ContentLength,
			"requestBody", requestBody,
			"responseBody", truncate(blw.body.String()),
		)
	}
}

func isMultipart(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/")
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "…"
}
