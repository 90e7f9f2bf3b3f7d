// Gateway 为通知网关实现添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/service/gateway"

	"github.com/prometheus/client_golang/prometheus"
)

// Gateway 为通知网关实现添加指标收集的装饰器
type Gateway struct {
	gateway             gateway.Gateway
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	outcomeCounter      *prometheus.CounterVec
	name                string
}

// NewGateway 创建一个新的带有指标收集的网关
func NewGateway(name string, g gateway.Gateway) *Gateway {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "gateway_send_duration_seconds",
			Help:       "网关批量发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"gateway"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_send_total",
			Help: "网关批量发送次数",
		},
		[]string{"gateway"},
	)

	outcomeCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_recipient_outcome_total",
			Help: "网关按接收者的投递结果统计",
		},
		[]string{"gateway", "outcome"},
	)

	// 注册指标
	prometheus.MustRegister(sendDurationSummary, sendCounter, outcomeCounter)

	return &Gateway{
		gateway:             g,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		outcomeCounter:      outcomeCounter,
		name:                name,
	}
}

// Send 发送消息并记录指标
func (g *Gateway) Send(ctx context.Context, batch []gateway.Message) ([]domain.RecipientOutcome, error) {
	startTime := time.Now()

	g.sendCounter.WithLabelValues(g.name).Inc()

	outcomes, err := g.gateway.Send(ctx, batch)

	duration := time.Since(startTime).Seconds()
	g.sendDurationSummary.WithLabelValues(g.name).Observe(duration)

	for i := range outcomes {
		g.outcomeCounter.WithLabelValues(g.name, string(outcomes[i].Outcome)).Inc()
	}

	return outcomes, err
}
