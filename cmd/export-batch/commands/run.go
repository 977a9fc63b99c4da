package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/jinford/export-batch/internal/module/export/adapter/manifest"
	"github.com/jinford/export-batch/internal/module/export/application"
	"github.com/jinford/export-batch/internal/module/export/domain"
)

// RunAction はエクスポートバッチを実行するコマンドのアクション
func RunAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")
	manifestPath := cmd.String("manifest")
	inputPath := cmd.String("input")
	outDir := cmd.String("out")
	concurrency := cmd.Int("concurrency")
	quiet := cmd.Bool("quiet")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(envFile)
	if err != nil {
		return err
	}

	// フラグ未指定時は設定値を使う
	if outDir == "" {
		outDir = appCtx.Config.Export.OutputDir
	}
	if concurrency == 0 {
		concurrency = appCtx.Config.Export.MaxConcurrency
	}

	jobs, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	// 進捗コールバック（完了順に1件ずつ呼ばれる）
	onProgress := func(completed, total int, identifier string) {
		if quiet {
			return
		}
		fmt.Printf("[%d/%d] %s\n", completed, total, identifier)
	}

	service := application.NewExportService(appCtx.Logger)
	result, err := service.Run(ctx, application.ExportRequest{
		Jobs:           jobs,
		InputPath:      inputPath,
		OutputDir:      outDir,
		MaxConcurrency: concurrency,
		OnProgress:     onProgress,
	})
	if err != nil {
		return fmt.Errorf("エクスポートバッチの実行に失敗: %w", err)
	}

	// 結果テーブルの表示
	renderReportTable(result)

	fmt.Printf("\nバッチID: %s\n", result.BatchID)
	fmt.Printf("成功: %d / 失敗: %d / 合計 %d bytes / 所要時間 %s\n",
		result.Report.SucceededCount,
		result.Report.FailedCount,
		result.Report.TotalBytes,
		result.Report.TotalElapsed.Round(time.Millisecond),
	)

	// ジョブの失敗はレポートで報告済みのため終了コードは0のまま
	return nil
}

// === ヘルパー関数 ===

// renderReportTable はテーブル形式でバッチ結果を表示します
func renderReportTable(result *application.ExportResult) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Status", "Bytes", "Elapsed", "Detail")

	for _, entry := range result.Report.Entries {
		table.Append(
			entry.Identifier,
			string(entry.Outcome.Status),
			fmt.Sprintf("%d", entry.Outcome.BytesProduced),
			entry.Outcome.Elapsed.Round(time.Millisecond).String(),
			entryDetail(entry, result.Artifacts),
		)
	}

	table.Render()
}

// entryDetail は成功なら成果物パス、失敗ならエラーメッセージを返します
func entryDetail(entry domain.Entry, artifacts map[string]string) string {
	if entry.Outcome.Succeeded() {
		return artifacts[entry.Identifier]
	}
	return truncateString(entry.Outcome.ErrorMessage, 60)
}

// truncateString は文字列を指定長で切り詰めます
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
