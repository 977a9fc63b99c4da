package domain

import (
	"time"
)

// JobKind はエクスポートジョブの種別を表します
type JobKind string

const (
	// KindDocument はプレーンテキスト文書を生成するジョブ種別
	KindDocument JobKind = "document"
	// KindRaster はPNGラスタ画像を生成するジョブ種別
	KindRaster JobKind = "raster"
	// KindVector はSVGベクタ画像を生成するジョブ種別
	KindVector JobKind = "vector"
	// KindArchive はZIPアーカイブを生成するジョブ種別
	KindArchive JobKind = "archive"
)

// Config はジョブ種別固有の設定バンドルです
// オーケストレータは内容を一切解釈せず、Executorへそのまま渡します
type Config map[string]any

// Clone は設定の浅いコピーを返します
// 呼び出し側が予約キーを追加する場合、元のマニフェスト設定を汚染しないために使います
func (c Config) Clone() Config {
	if c == nil {
		return Config{}
	}
	cloned := make(Config, len(c))
	for k, v := range c {
		cloned[k] = v
	}
	return cloned
}

// Job はエクスポート1件分の作業単位を表します
// バッチ開始前に呼び出し側が構築し、以降は不変として扱います
type Job struct {
	Kind       JobKind `json:"kind"`
	Identifier string  `json:"identifier"`
	Config     Config  `json:"config,omitempty"`
}

// Input はすべてのExecutorに共有される読み取り専用の入力ペイロードです
type Input struct {
	Name string
	Data []byte
}

// OutcomeStatus はジョブの終了状態を表します
type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// JobOutcome はジョブ1件の終了結果です
// SuccessまたはFailureのいずれか一方の状態のみを取り、ジョブごとに一度だけ生成されます
type JobOutcome struct {
	Status        OutcomeStatus `json:"status"`
	BytesProduced int           `json:"bytesProduced,omitempty"`
	ErrorMessage  string        `json:"errorMessage,omitempty"`
	Elapsed       time.Duration `json:"elapsed"`
}

// SuccessOutcome は成功結果を作成します
func SuccessOutcome(bytesProduced int, elapsed time.Duration) JobOutcome {
	return JobOutcome{
		Status:        OutcomeSucceeded,
		BytesProduced: bytesProduced,
		Elapsed:       elapsed,
	}
}

// FailureOutcome は失敗結果を作成します
func FailureOutcome(message string, elapsed time.Duration) JobOutcome {
	return JobOutcome{
		Status:       OutcomeFailed,
		ErrorMessage: message,
		Elapsed:      elapsed,
	}
}

// Succeeded は成功結果かどうかを返します
func (o JobOutcome) Succeeded() bool {
	return o.Status == OutcomeSucceeded
}

// Entry はバッチレポートに完了順で記録される (identifier, outcome) のログエントリです
type Entry struct {
	Identifier string     `json:"identifier"`
	Outcome    JobOutcome `json:"outcome"`
}

// BatchReport はバッチ全体の集約結果です
// Entriesは完了順のログであり、投入順とは一致しないことがあります
// 投入されたジョブは必ずちょうど1回ずつ現れます
type BatchReport struct {
	Entries        []Entry       `json:"entries"`
	SucceededCount int           `json:"succeededCount"`
	FailedCount    int           `json:"failedCount"`
	TotalBytes     int           `json:"totalBytes"`
	TotalElapsed   time.Duration `json:"totalElapsed"`
}

// OutcomeFor は指定identifierの最初のエントリの結果を返します
// identifierが重複している場合は先に完了したものを返します
func (r *BatchReport) OutcomeFor(identifier string) (JobOutcome, bool) {
	for _, e := range r.Entries {
		if e.Identifier == identifier {
			return e.Outcome, true
		}
	}
	return JobOutcome{}, false
}
