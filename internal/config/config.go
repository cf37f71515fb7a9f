// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Upload UploadConfig `mapstructure:"upload"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// LLMConfig 存储聊天模型后端的配置。
// Provider 取值 ollama / openai / gemini。
type LLMConfig struct {
	Provider     string        `mapstructure:"provider"`
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Models       []string      `mapstructure:"models"`
	DefaultModel string        `mapstructure:"default_model"`
}

// UploadConfig 限制上传文件。
type UploadConfig struct {
	MaxSizeMB         int64    `mapstructure:"max_size_mb"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// MaxBytes 返回上传大小上限（字节）。
func (u UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB << 20
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.base_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", 300*time.Second)
	v.SetDefault("llm.models", []string{"gemma2", "llama3.1", "mistral"})
	v.SetDefault("llm.default_model", "gemma2")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.allowed_extensions", []string{".txt", ".md", ".pdf"})
}

// Load 读取指定路径的 YAML 配置并返回解析结果。路径为空时只使用默认值。
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}
	if cfg.LLM.DefaultModel == "" && len(cfg.LLM.Models) > 0 {
		cfg.LLM.DefaultModel = cfg.LLM.Models[0]
	}
	return cfg, nil
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
func Init(configPath string) {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	Conf = cfg
}
