package idempotent

import "context"

// IdempotencyService 幂等标记
// MarkExecuted 返回 true 表示这个 key 之前没有出现过，本次是首次执行
type IdempotencyService interface {
	MarkExecuted(ctx context.Context, key string) (bool, error)
	MarkExecutedBatch(ctx context.Context, keys ...string) ([]bool, error)
}
