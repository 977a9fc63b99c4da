package runner

import (
	"context"
	"errors"

	"golang.org/x/sync/semaphore"
)

// ErrInvalidConcurrency は同時実行数に1未満の値を指定した場合のエラー
var ErrInvalidConcurrency = errors.New("同時実行数は1以上である必要があります")

// Limiter は同時実行数を制限するカウンティング・セマフォです
// 待機中の呼び出しはFIFO順で admit されるため、特定のジョブが飢餓状態になりません
// max=1 なら完全に直列化され、max>=ジョブ数なら全並列になります（特別扱いはありません）
type Limiter struct {
	sem *semaphore.Weighted
	max int
}

// NewLimiter は同時実行数の上限を指定してLimiterを作成します
// maxConcurrencyが1未満の場合はセットアップ時の誤用としてエラーを返します
func NewLimiter(maxConcurrency int) (*Limiter, error) {
	if maxConcurrency < 1 {
		return nil, ErrInvalidConcurrency
	}

	return &Limiter{
		sem: semaphore.NewWeighted(int64(maxConcurrency)),
		max: maxConcurrency,
	}, nil
}

// Acquire は実行スロットが空くまで待機し、スロットを1つ確保します
// contextがキャンセルされた場合のみエラーを返します
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

// Release は確保したスロットを1つ解放します。待機することはありません
// Acquire成功後に必ず一度だけ呼ぶこと（通常はdefer文で）
func (l *Limiter) Release() {
	l.sem.Release(1)
}

// Max は設定された同時実行数の上限を返します
func (l *Limiter) Max() int {
	return l.max
}
