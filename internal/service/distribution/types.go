package distribution

import (
	"context"

	"gitee.com/flycash/survey-platform/internal/domain"
)

// Service 投放生命周期服务
// 状态流转只有 Scheduled→Open、Open→Closed、Closed→Open 三条合法路径
//
//go:generate mockgen -source=./types.go -destination=./mocks/distribution.mock.go -package=distributionmocks -typed Service
type Service interface {
	// Create 创建投放，初始状态只能是 Scheduled 或 Open
	// recipients 是已解析好的投递地址，为空视为参数错误
	Create(ctx context.Context, d domain.Distribution, recipients []string) (domain.Distribution, error)

	// Activate 激活定时投放
	// 幂等：已经是 Open 时静默返回，吸收 at-least-once 调度器的重复回调
	Activate(ctx context.Context, id uint64) error

	// Close 关闭投放，不取消提醒配置
	Close(ctx context.Context, id uint64) error

	// Reopen 重新开放已关闭的投放
	Reopen(ctx context.Context, id uint64) error

	// Delete 级联删除投放及其所属的全部记录
	Delete(ctx context.Context, id uint64) error

	// GetByID 查询投放
	GetByID(ctx context.Context, id uint64) (domain.Distribution, error)

	// ReportedCounters 对外展示的计数器，Scheduled 状态下一律是零值
	ReportedCounters(ctx context.Context, id uint64) (domain.Counters, error)

	// AddReminderConfig 为投放追加一条提醒配置
	AddReminderConfig(ctx context.Context, id uint64, thresholdDays int, templateID int64) error

	// ListRespondents 查询投放下的受访者，status 为空表示不过滤
	ListRespondents(ctx context.Context, id uint64, status domain.ResponseStatus) ([]domain.Respondent, error)

	// ListCommunications 查询投放的发送历史，kind 为空表示不过滤
	ListCommunications(ctx context.Context, id uint64, kind domain.CommunicationKind) ([]domain.CommunicationRecord, error)

	// UpdateResponseStatus 变更受访者答题状态，同时维护计数器
	UpdateResponseStatus(ctx context.Context, id, respondentID uint64, status domain.ResponseStatus) error

	// SoftDeleteRespondent 软删除受访者并扣减 invitations_sent
	SoftDeleteRespondent(ctx context.Context, id, respondentID uint64) error
}
