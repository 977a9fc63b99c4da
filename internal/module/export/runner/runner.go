package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// JobRunner はジョブ1件の実行をラップします
// Executorのエラーとパニックはすべて Failure 結果へ変換され、呼び出し元へ伝播しません
type JobRunner struct {
	registry *domain.Registry
	limiter  *Limiter
}

// NewJobRunner はJobRunnerを作成します
func NewJobRunner(registry *domain.Registry, limiter *Limiter) *JobRunner {
	return &JobRunner{
		registry: registry,
		limiter:  limiter,
	}
}

// Run はジョブを1件実行し、必ず終了結果を返します
// 実行スロットの確保後に計時を開始し、どの経路で終了してもスロットを解放します
func (jr *JobRunner) Run(ctx context.Context, job domain.Job, input *domain.Input) domain.JobOutcome {
	if err := jr.limiter.Acquire(ctx); err != nil {
		return domain.FailureOutcome(fmt.Sprintf("実行スロットの取得に失敗: %v", err), 0)
	}
	defer jr.limiter.Release()

	start := time.Now()

	fn, err := jr.registry.Resolve(job.Kind)
	if err != nil {
		// 未登録種別はこのジョブだけの失敗であり、バッチ全体のエラーではない
		return domain.FailureOutcome(err.Error(), time.Since(start))
	}

	data, err := jr.invoke(ctx, fn, job, input)
	elapsed := time.Since(start)
	if err != nil {
		return domain.FailureOutcome(err.Error(), elapsed)
	}

	return domain.SuccessOutcome(len(data), elapsed)
}

// invoke はExecutorを呼び出し、パニックをエラーへ回復します
// 1つのExecutorの異常終了がオーケストレータや兄弟ジョブを巻き込まないための境界です
func (jr *JobRunner) invoke(ctx context.Context, fn domain.Executor, job domain.Job, input *domain.Input) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("executorが異常終了しました (kind=%s): %v", job.Kind, r)
		}
	}()

	return fn(ctx, input, job.Config)
}
