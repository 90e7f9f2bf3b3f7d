package console

import (
	"context"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/service/gateway"

	"github.com/gotomicro/ego/core/elog"
)

// 你可以在这里提供一个输出到控制台的网关实现

type Gateway struct {
	logger *elog.Component
}

func NewGateway() *Gateway {
	return &Gateway{
		logger: elog.DefaultLogger,
	}
}

func (g *Gateway) Send(_ context.Context, batch []gateway.Message) ([]domain.RecipientOutcome, error) {
	outcomes := make([]domain.RecipientOutcome, 0, len(batch))
	for i := range batch {
		g.logger.Info("发送消息",
			elog.String("address", batch[i].Address),
			elog.String("content", batch[i].Content))
		outcomes = append(outcomes, domain.RecipientOutcome{
			Address: batch[i].Address,
			Outcome: domain.DeliveryOutcomeDelivered,
		})
	}
	return outcomes, nil
}
