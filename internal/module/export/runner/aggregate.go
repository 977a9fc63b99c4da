package runner

import (
	"time"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// Aggregate は完了順のエントリ列からバッチレポートを組み立てます
// 純粋関数であり、I/Oも同期も行いません
// SucceededCount + FailedCount == len(entries) が常に成り立ちます
func Aggregate(entries []domain.Entry, totalElapsed time.Duration) *domain.BatchReport {
	report := &domain.BatchReport{
		Entries:      entries,
		TotalElapsed: totalElapsed,
	}
	if report.Entries == nil {
		report.Entries = []domain.Entry{}
	}

	for _, e := range report.Entries {
		if e.Outcome.Succeeded() {
			report.SucceededCount++
			report.TotalBytes += e.Outcome.BytesProduced
		} else {
			report.FailedCount++
		}
	}

	return report
}
