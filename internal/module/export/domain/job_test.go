package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobOutcome_Variants(t *testing.T) {
	success := SuccessOutcome(1024, 50*time.Millisecond)
	assert.True(t, success.Succeeded())
	assert.Equal(t, 1024, success.BytesProduced)
	assert.Empty(t, success.ErrorMessage)

	failure := FailureOutcome("boom", 10*time.Millisecond)
	assert.False(t, failure.Succeeded())
	assert.Equal(t, "boom", failure.ErrorMessage)
	assert.Zero(t, failure.BytesProduced)
}

func TestConfig_Clone(t *testing.T) {
	original := Config{"width": 100}

	cloned := original.Clone()
	cloned["width"] = 200
	cloned["extra"] = true

	// 複製への変更は元の設定に影響しない
	assert.Equal(t, 100, original["width"])
	assert.NotContains(t, original, "extra")
}

func TestConfig_CloneNil(t *testing.T) {
	var cfg Config

	cloned := cfg.Clone()
	assert.NotNil(t, cloned)
	cloned["key"] = "value" // nilマップへの書き込みでパニックしない
}

func TestBatchReport_OutcomeFor(t *testing.T) {
	report := &BatchReport{
		Entries: []Entry{
			{Identifier: "a", Outcome: SuccessOutcome(10, time.Millisecond)},
			{Identifier: "b", Outcome: FailureOutcome("oops", time.Millisecond)},
			{Identifier: "a", Outcome: FailureOutcome("dup", time.Millisecond)},
		},
	}

	// identifierが重複している場合は先に完了したエントリが返る
	outcome, ok := report.OutcomeFor("a")
	assert.True(t, ok)
	assert.True(t, outcome.Succeeded())

	outcome, ok = report.OutcomeFor("b")
	assert.True(t, ok)
	assert.Equal(t, "oops", outcome.ErrorMessage)

	_, ok = report.OutcomeFor("missing")
	assert.False(t, ok)
}
