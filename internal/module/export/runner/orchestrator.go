package runner

import (
	"context"
	"time"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// ProgressFunc はジョブ1件の完了ごとに呼ばれるコールバックです
// 完了数・総数・直前に完了したジョブのidentifierを受け取ります
// 収集ゴルーチン上で直列に呼ばれるため、呼び出し同士が競合することはありません
type ProgressFunc func(completed, total int, identifier string)

// Orchestrator はジョブ群を制限付き並列で実行し、全件の終了後にレポートを返します
// 個々のジョブの失敗はデータ（Failure結果）として記録され、バッチ全体を停止しません
type Orchestrator struct {
	runner *JobRunner
}

// NewOrchestrator はRegistryと同時実行数の上限からOrchestratorを作成します
// maxConcurrencyが1未満の場合はセットアップ時の誤用としてエラーを返します
func NewOrchestrator(registry *domain.Registry, maxConcurrency int) (*Orchestrator, error) {
	limiter, err := NewLimiter(maxConcurrency)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		runner: NewJobRunner(registry, limiter),
	}, nil
}

// Execute は全ジョブを並列実行し、すべてが終了してからレポートを返します
//
// ジョブごとにゴルーチンを起動しますが、起動自体はゲートされません。
// 実際の処理はJobRunner内のスロット取得で制限されるため、ジョブ数が上限を
// 大きく超えても待機中のゴルーチン以上のメモリは消費しません。
// 結果は完了順（投入順とは限らない）に単一の収集ループへ集約され、
// 1件完了するたびに onProgress が一度だけ呼ばれます。
func (o *Orchestrator) Execute(ctx context.Context, jobs []domain.Job, input *domain.Input, onProgress ProgressFunc) *domain.BatchReport {
	started := time.Now()

	total := len(jobs)
	if total == 0 {
		// 空バッチ: スロット取得は一度も行わない
		return Aggregate(nil, time.Since(started))
	}

	resultCh := make(chan domain.Entry, total)

	for _, job := range jobs {
		go func(job domain.Job) {
			outcome := o.runner.Run(ctx, job, input)
			resultCh <- domain.Entry{Identifier: job.Identifier, Outcome: outcome}
		}(job)
	}

	// 完了順に収集する
	// レポートへの書き込みと進捗通知はこのゴルーチンに集約されるため、追加のロックは不要
	entries := make([]domain.Entry, 0, total)
	for completed := 1; completed <= total; completed++ {
		entry := <-resultCh
		entries = append(entries, entry)

		if onProgress != nil {
			onProgress(completed, total, entry.Identifier)
		}
	}

	return Aggregate(entries, time.Since(started))
}
