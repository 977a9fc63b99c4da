package commands

import (
	"fmt"
	"log/slog"

	"github.com/jinford/export-batch/internal/platform/config"
	"github.com/jinford/export-batch/internal/platform/logger"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
type AppContext struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewAppContext は設定ファイルを読み込み AppContext を作成する
func NewAppContext(envFile string) (*AppContext, error) {
	// 設定の読み込み（platform層を使用）
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	// ロガーの初期化（platform層を使用）
	appLogger := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	return &AppContext{
		Config: cfg,
		Logger: appLogger,
	}, nil
}
