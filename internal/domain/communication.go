package domain

import (
	"encoding/json"
	"time"
)

// CommunicationKind 沟通消息类型
type CommunicationKind string

const (
	CommunicationKindInvitation CommunicationKind = "INVITATION" // 邀请
	CommunicationKindReminder   CommunicationKind = "REMINDER"   // 提醒
	CommunicationKindThankYou   CommunicationKind = "THANK_YOU"  // 感谢
)

func (k CommunicationKind) String() string {
	return string(k)
}

// DeliveryOutcome 单个接收者的投递结果
type DeliveryOutcome string

const (
	DeliveryOutcomeDelivered DeliveryOutcome = "DELIVERED" // 已送达
	DeliveryOutcomeBounced   DeliveryOutcome = "BOUNCED"   // 被退回
	DeliveryOutcomeFailed    DeliveryOutcome = "FAILED"    // 发送失败
)

// RecipientOutcome 一次发送中单个接收者的结果明细
type RecipientOutcome struct {
	Address     string          `json:"address"`
	Outcome     DeliveryOutcome `json:"outcome"`
	ErrorDetail string          `json:"errorDetail,omitempty"`
}

// CommunicationRecord 一次发送事件的审计记录，写入后不再变更
type CommunicationRecord struct {
	ID             uint64             // 记录唯一标识
	DistributionID uint64             // 所属投放ID
	Kind           CommunicationKind  // 消息类型
	RecipientCount int                // 接收者数量
	Outcomes       []RecipientOutcome // 按序的接收者结果
	CreatedAt      time.Time          // 记录时间
}

// DeliveredCount 统计成功送达的接收者数量
func (r CommunicationRecord) DeliveredCount() int {
	var cnt int
	for i := range r.Outcomes {
		if r.Outcomes[i].Outcome == DeliveryOutcomeDelivered {
			cnt++
		}
	}
	return cnt
}

func (r *CommunicationRecord) MarshalOutcomes() (string, error) {
	jsonBytes, err := json.Marshal(r.Outcomes)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
