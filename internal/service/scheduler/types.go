package scheduler

import (
	"context"
	"time"
)

// Client 定时任务适配器
// 回调语义是 at-least-once：至少触发一次，可能触发多次，
// 所以回调的处理方必须自己做幂等
//
//go:generate mockgen -source=./types.go -destination=./mocks/scheduler.mock.go -package=schedulermocks -typed Client
type Client interface {
	// Schedule 在 at 时刻为投放安排一次激活回调，返回任务句柄
	Schedule(ctx context.Context, at time.Time, distributionID uint64) (string, error)
	// Cancel 尽力取消任务，任务不存在时返回 ErrJobNotFound
	Cancel(ctx context.Context, handle string) error
}

// Callback 激活回调，参数是投放ID
type Callback func(ctx context.Context, distributionID uint64)
