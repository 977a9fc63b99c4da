package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

func TestAggregate(t *testing.T) {
	entries := []domain.Entry{
		{Identifier: "a", Outcome: domain.SuccessOutcome(100, 10*time.Millisecond)},
		{Identifier: "b", Outcome: domain.FailureOutcome("boom", 5*time.Millisecond)},
		{Identifier: "c", Outcome: domain.SuccessOutcome(250, 20*time.Millisecond)},
	}

	report := Aggregate(entries, 30*time.Millisecond)

	assert.Equal(t, 2, report.SucceededCount)
	assert.Equal(t, 1, report.FailedCount)
	// 成功数 + 失敗数 == エントリ総数
	assert.Equal(t, len(entries), report.SucceededCount+report.FailedCount)
	assert.Equal(t, 350, report.TotalBytes)
	assert.Equal(t, 30*time.Millisecond, report.TotalElapsed)
	assert.Equal(t, entries, report.Entries)
}

func TestAggregate_Empty(t *testing.T) {
	report := Aggregate(nil, 0)

	assert.NotNil(t, report.Entries)
	assert.Empty(t, report.Entries)
	assert.Zero(t, report.SucceededCount)
	assert.Zero(t, report.FailedCount)
	assert.Zero(t, report.TotalBytes)
}

func TestAggregate_AllFailed(t *testing.T) {
	entries := []domain.Entry{
		{Identifier: "a", Outcome: domain.FailureOutcome("x", time.Millisecond)},
		{Identifier: "b", Outcome: domain.FailureOutcome("y", time.Millisecond)},
	}

	report := Aggregate(entries, 2*time.Millisecond)

	assert.Zero(t, report.SucceededCount)
	assert.Equal(t, 2, report.FailedCount)
	assert.Zero(t, report.TotalBytes)
}
