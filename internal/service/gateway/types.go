package gateway

import (
	"context"

	"gitee.com/flycash/survey-platform/internal/domain"
)

// Message 一条已渲染的待发送消息
type Message struct {
	Address string // 投递地址
	Content string // 渲染后的消息正文
}

// Gateway 通知网关
// 接收一批(接收者, 渲染后消息)，返回按接收者的投递结果。
// 部分接收者失败不构成操作级错误，体现在各自的 Outcome 里
//
//go:generate mockgen -source=./types.go -destination=./mocks/gateway.mock.go -package=gatewaymocks -typed Gateway
type Gateway interface {
	Send(ctx context.Context, batch []Message) ([]domain.RecipientOutcome, error)
}
