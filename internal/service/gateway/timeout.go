package gateway

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
)

const timeoutDetail = "gateway timeout"

// TimeoutGateway 为网关调用加上超时上限的装饰器
// 超时不是操作级失败：整批转成按接收者的 FAILED 结果返回，
// 调用方照常记录审计并依赖下一轮扫描自然重试
type TimeoutGateway struct {
	gateway Gateway
	timeout time.Duration
}

func NewTimeoutGateway(g Gateway, timeout time.Duration) *TimeoutGateway {
	return &TimeoutGateway{
		gateway: g,
		timeout: timeout,
	}
}

func (g *TimeoutGateway) Send(ctx context.Context, batch []Message) ([]domain.RecipientOutcome, error) {
	sendCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	outcomes, err := g.gateway.Send(sendCtx, batch)
	if err == nil {
		return outcomes, nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		failed := make([]domain.RecipientOutcome, 0, len(batch))
		for i := range batch {
			failed = append(failed, domain.RecipientOutcome{
				Address:     batch[i].Address,
				Outcome:     domain.DeliveryOutcomeFailed,
				ErrorDetail: timeoutDetail,
			})
		}
		return failed, nil
	}
	return outcomes, err
}
