package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Executor は1種別分のエクスポート処理を実行する関数です
// 共有入力と種別固有の設定を受け取り、生成した成果物のバイト列を返します
type Executor func(ctx context.Context, input *Input, cfg Config) ([]byte, error)

var (
	// ErrUnknownKind は未登録のジョブ種別を解決しようとした場合のエラー
	ErrUnknownKind = errors.New("未登録のジョブ種別です")
	// ErrDuplicateKind は同一のジョブ種別を二重登録しようとした場合のエラー
	ErrDuplicateKind = errors.New("ジョブ種別が既に登録されています")
)

// Registry はジョブ種別とExecutorの対応表です
// バッチ開始前にすべての登録を済ませ、バッチ実行中は読み取り専用で使います
type Registry struct {
	mu        sync.RWMutex
	executors map[JobKind]Executor
}

// NewRegistry は空のRegistryを作成します
func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[JobKind]Executor),
	}
}

// Register はジョブ種別にExecutorを関連付けます
// 二重登録はセットアップ時の誤用としてただちにエラーを返します
func (r *Registry) Register(kind JobKind, fn Executor) error {
	if fn == nil {
		return fmt.Errorf("kind=%s: Executorがnilです", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.executors[kind]; exists {
		return fmt.Errorf("kind=%s: %w", kind, ErrDuplicateKind)
	}
	r.executors[kind] = fn

	return nil
}

// Resolve はジョブ種別に対応するExecutorを返します
func (r *Registry) Resolve(kind JobKind) (Executor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.executors[kind]
	if !ok {
		return nil, fmt.Errorf("kind=%s: %w", kind, ErrUnknownKind)
	}

	return fn, nil
}

// Kinds は登録済みのジョブ種別を名前順で返します
func (r *Registry) Kinds() []JobKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]JobKind, 0, len(r.executors))
	for kind := range r.executors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}
