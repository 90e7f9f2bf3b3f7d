package ioc

import (
	"time"

	retrypkg "gitee.com/flycash/survey-platform/internal/pkg/retry"
	"gitee.com/flycash/survey-platform/internal/service/gateway"
	"gitee.com/flycash/survey-platform/internal/service/gateway/console"
	gatewaymetrics "gitee.com/flycash/survey-platform/internal/service/gateway/metrics"
	"github.com/gotomicro/ego/core/econf"
)

const defaultGatewayTimeout = time.Second * 10

// InitGateway 组装通知网关
// 控制台实现在最里层，外面依次套超时、重试、指标
func InitGateway() gateway.Gateway {
	type Config struct {
		Timeout time.Duration   `json:"timeout"`
		Retry   retrypkg.Config `json:"retry"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("gateway", &cfg); err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGatewayTimeout
	}

	var g gateway.Gateway = console.NewGateway()
	g = gateway.NewTimeoutGateway(g, cfg.Timeout)
	g = gateway.NewRetryGateway(g, cfg.Retry)
	return gatewaymetrics.NewGateway("console", g)
}
