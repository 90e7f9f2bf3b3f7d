package gateway

import (
	"context"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	retrypkg "gitee.com/flycash/survey-platform/internal/pkg/retry"
)

// RetryGateway 对操作级失败做重试的装饰器
// 只重试整批失败(网关不可达之类)，按接收者的部分失败不在这里处理
type RetryGateway struct {
	gateway Gateway
	cfg     retrypkg.Config
}

func NewRetryGateway(g Gateway, cfg retrypkg.Config) *RetryGateway {
	return &RetryGateway{
		gateway: g,
		cfg:     cfg,
	}
}

func (g *RetryGateway) Send(ctx context.Context, batch []Message) ([]domain.RecipientOutcome, error) {
	strategy, err := retrypkg.NewRetry(g.cfg)
	if err != nil {
		return nil, err
	}

	var outcomes []domain.RecipientOutcome
	for {
		outcomes, err = g.gateway.Send(ctx, batch)
		if err == nil {
			return outcomes, nil
		}
		interval, ok := strategy.Next()
		if !ok {
			return outcomes, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}
