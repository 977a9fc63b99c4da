package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// Export設定
	Export ExportConfig

	// ログ設定
	Log LogConfig
}

// ExportConfig はエクスポートバッチの既定値
type ExportConfig struct {
	OutputDir      string
	MaxConcurrency int
}

// LogConfig はログ出力の設定
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" or "text"
}

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		Export: ExportConfig{
			OutputDir:      getEnv("EXPORT_OUTPUT_DIR", "./exports"),
			MaxConcurrency: getEnvAsInt("EXPORT_MAX_CONCURRENCY", 4),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Export.MaxConcurrency < 1 {
		return nil, fmt.Errorf("EXPORT_MAX_CONCURRENCY は1以上である必要があります (got %d)", cfg.Export.MaxConcurrency)
	}

	return cfg, nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得し、存在しないか不正な場合はデフォルト値を返します
func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return n
}
