package runner

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLimiter(t *testing.T) {
	l, err := NewLimiter(3)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Max())
}

func TestNewLimiter_InvalidConcurrency(t *testing.T) {
	tests := []struct {
		name string
		max  int
	}{
		{name: "ゼロ", max: 0},
		{name: "負数", max: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLimiter(tt.max)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrInvalidConcurrency)
		})
	}
}

func TestLimiter_AcquireRelease(t *testing.T) {
	l, err := NewLimiter(2)
	require.NoError(t, err)

	ctx := context.Background()

	// 上限までは即座に取得できる
	require.NoError(t, l.Acquire(ctx))
	require.NoError(t, l.Acquire(ctx))

	// 3つ目の取得は待機が必要
	blockedCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err = l.Acquire(blockedCtx)
	assert.Error(t, err)

	// 解放すれば再び取得できる
	l.Release()
	require.NoError(t, l.Acquire(ctx))

	l.Release()
	l.Release()
}

func TestLimiter_ContextCancellation(t *testing.T) {
	l, err := NewLimiter(1)
	require.NoError(t, err)

	require.NoError(t, l.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- l.Acquire(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("キャンセルされたAcquireが返ってこない")
	}

	l.Release()
}

func TestLimiter_BoundsConcurrentHolders(t *testing.T) {
	const maxConcurrency = 3
	const workers = 20

	l, err := NewLimiter(maxConcurrency)
	require.NoError(t, err)

	var mu sync.Mutex
	current := 0
	peak := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if !assert.NoError(t, l.Acquire(context.Background())) {
				return
			}
			defer l.Release()

			mu.Lock()
			current++
			if current > peak {
				peak = current
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			current--
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 同時保持数が上限を超えることはない
	assert.LessOrEqual(t, peak, maxConcurrency)
	assert.Equal(t, 0, current)
}
