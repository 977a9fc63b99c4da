// Package application はエクスポートバッチのユースケースを提供します
package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jinford/export-batch/internal/module/export/adapter/generator"
	"github.com/jinford/export-batch/internal/module/export/domain"
	"github.com/jinford/export-batch/internal/module/export/runner"
)

// artifactPathKey はサービスが各ジョブの設定へ埋め込む予約キー
// Executorラッパーが成果物の書き出し先を知るために使います
const artifactPathKey = "_artifact_path"

// ExportRequest はエクスポートバッチ1回分の実行要求です
type ExportRequest struct {
	// Jobs は実行するジョブリスト（マニフェストから構築）
	Jobs []domain.Job
	// InputPath は共有入力ペイロードのファイルパス
	InputPath string
	// OutputDir は成果物の出力ディレクトリ
	OutputDir string
	// MaxConcurrency は同時実行数の上限
	MaxConcurrency int
	// OnProgress はジョブ完了ごとの進捗コールバック（省略可）
	OnProgress runner.ProgressFunc
}

// ExportResult はエクスポートバッチ1回分の実行結果です
type ExportResult struct {
	// BatchID はこのバッチ実行の識別子
	BatchID uuid.UUID
	// Report は全ジョブの終了結果を含むレポート
	Report *domain.BatchReport
	// Artifacts は成功したジョブのidentifierと書き出したファイルパスの対応
	Artifacts map[string]string
}

// ExportService はマニフェスト駆動のエクスポートバッチを実行するアプリケーションサービスです
type ExportService struct {
	logger *slog.Logger
}

// NewExportService はExportServiceを作成します
func NewExportService(logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{logger: logger}
}

// Run はバッチを実行し、全ジョブの終了後に結果を返します
//
// 個々のジョブの失敗はレポート内のFailure結果として報告されます。
// エラーを返すのは入力ファイルの読み込み失敗やセットアップの誤用のみです。
func (s *ExportService) Run(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	input, err := loadInput(req.InputPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("出力ディレクトリの作成に失敗: %w", err)
	}

	registry, err := buildWritingRegistry()
	if err != nil {
		return nil, err
	}

	orch, err := runner.NewOrchestrator(registry, req.MaxConcurrency)
	if err != nil {
		return nil, err
	}

	// 成果物の出力先を設定へ埋め込む
	// マニフェスト由来の設定を変更しないよう、ジョブごとに複製する
	jobs := make([]domain.Job, len(req.Jobs))
	paths := make(map[string]string, len(req.Jobs))
	for i, job := range req.Jobs {
		path := filepath.Join(req.OutputDir, job.Identifier+generator.ExtensionFor(job.Kind))
		cfg := job.Config.Clone()
		cfg[artifactPathKey] = path

		jobs[i] = domain.Job{Kind: job.Kind, Identifier: job.Identifier, Config: cfg}
		paths[job.Identifier] = path
	}

	batchID := uuid.New()
	s.logger.Info("エクスポートバッチを開始します",
		slog.String("batchID", batchID.String()),
		slog.Int("jobs", len(jobs)),
		slog.Int("maxConcurrency", req.MaxConcurrency),
	)

	report := orch.Execute(ctx, jobs, input, req.OnProgress)

	artifacts := make(map[string]string)
	for _, entry := range report.Entries {
		if entry.Outcome.Succeeded() {
			artifacts[entry.Identifier] = paths[entry.Identifier]
		}
	}

	s.logger.Info("エクスポートバッチが完了しました",
		slog.String("batchID", batchID.String()),
		slog.Int("succeeded", report.SucceededCount),
		slog.Int("failed", report.FailedCount),
		slog.Duration("elapsed", report.TotalElapsed),
	)

	return &ExportResult{
		BatchID:   batchID,
		Report:    report,
		Artifacts: artifacts,
	}, nil
}

// loadInput は共有入力ペイロードを読み込みます
func loadInput(path string) (*domain.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("入力ファイルの読み込みに失敗: %w", err)
	}

	return &domain.Input{
		Name: filepath.Base(path),
		Data: data,
	}, nil
}

// buildWritingRegistry は標準Executorを成果物書き出し付きでラップしたRegistryを作成します
// 書き出し失敗はExecutorのエラーとなり、そのジョブだけのFailure結果として報告されます
func buildWritingRegistry() (*domain.Registry, error) {
	registry := domain.NewRegistry()

	for kind, fn := range generator.Defaults() {
		wrapped := withArtifactWriter(fn)
		if err := registry.Register(kind, wrapped); err != nil {
			return nil, fmt.Errorf("Executorの登録に失敗: %w", err)
		}
	}

	return registry, nil
}

// withArtifactWriter はExecutorの出力を予約キーのパスへ書き出すラッパーを返します
func withArtifactWriter(fn domain.Executor) domain.Executor {
	return func(ctx context.Context, input *domain.Input, cfg domain.Config) ([]byte, error) {
		path, ok := cfg[artifactPathKey].(string)
		if !ok || path == "" {
			return nil, fmt.Errorf("成果物の出力先が設定されていません")
		}

		data, err := fn(ctx, input, cfg)
		if err != nil {
			return nil, err
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("成果物の書き出しに失敗: %w", err)
		}

		return data, nil
	}
}
