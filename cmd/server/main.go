// Package main 是 HTTP 服务的入口点。
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileqa-go/internal/config"
	"fileqa-go/internal/handler"
	"fileqa-go/internal/middleware"
	"fileqa-go/internal/service"
	"fileqa-go/pkg/llm"
	"fileqa-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 1. 初始化配置
	config.Init(*configPath)
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	// 3. 初始化模型客户端和 Service
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		log.Fatalf("初始化模型客户端失败: %v", err)
	}
	qaService := service.NewQAService(llmClient, cfg.LLM.Models)
	documentService := service.NewDocumentService(cfg.Upload)

	// 4. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxBytes()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	handler.RegisterRoutes(r, handler.NewQAHandler(qaService, documentService, cfg.LLM.DefaultModel))

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s, provider=%s, models=%v", srv.Addr, cfg.LLM.Provider, cfg.LLM.Models)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}
	log.Info("服务已优雅关闭")
}
