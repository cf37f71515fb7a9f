// Package log 封装 zap SugaredLogger，提供全局日志函数。
package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 在 Init 之前调用日志函数时使用 no-op logger，命令行工具默认不输出日志
var sugar = zap.NewNop().Sugar()

// buildConfig 根据级别、格式和输出目录生成 zap 配置。
// format 为 console 时使用开发配置，其余一律 json。非法级别回退到 info。
func buildConfig(level, format, outputPath string) zap.Config {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	}

	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}
	cfg.Level = lvl

	cfg.OutputPaths = []string{"stdout"}
	if outputPath != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, filepath.Join(outputPath, "app.log"))
	}
	return cfg
}

// Init 初始化全局 logger。outputPath 非空时同时写入 outputPath/app.log。
func Init(level, format, outputPath string) {
	if outputPath != "" {
		_ = os.MkdirAll(outputPath, os.ModePerm)
	}
	logger, err := buildConfig(level, format, outputPath).Build()
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

func Info(msg string) {
	sugar.Info(msg)
}

func Infof(template string, args ...interface{}) {
	sugar.Infof(template, args...)
}

// Infow 记录带键值对的结构化日志，例如请求日志。
func Infow(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, keysAndValues...)
}

// Error 记录一条 error 级别的日志，err 以 "error" 字段输出
func Error(msg string, err error) {
	sugar.Errorw(msg, "error", err)
}

func Errorf(template string, args ...interface{}) {
	sugar.Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	sugar.Fatalf(template, args...)
}

// Sync 刷新缓冲的日志，程序退出前调用。
func Sync() {
	_ = sugar.Sync()
}
