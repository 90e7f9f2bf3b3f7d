package domain

import (
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"
)

// ResponseStatus 受访者的答题状态
type ResponseStatus string

const (
	ResponseStatusNotTaken   ResponseStatus = "NOT_TAKEN"   // 未开始
	ResponseStatusInProgress ResponseStatus = "IN_PROGRESS" // 答题中
	ResponseStatusCompleted  ResponseStatus = "COMPLETED"   // 已完成
)

func (s ResponseStatus) String() string {
	return string(s)
}

// Respondent 受访者，一次投放中的一个被邀请人
type Respondent struct {
	ID             uint64         // 投放内唯一标识
	DistributionID uint64         // 所属投放ID
	Address        string         // 投递地址(邮箱/手机号)
	ResponseStatus ResponseStatus // 答题状态
	CustomStatus   string         // 展示用自定义状态，核心逻辑忽略
	LastModified   time.Time      // 答题状态最后变更时间
	LastSentAt     time.Time      // 最近一次发送时间
	SendCount      int            // 累计发送次数
	SoftDeleted    bool           // 软删除标记，所有核心查询均排除
}

func (r Respondent) Validate() error {
	if r.DistributionID == 0 {
		return fmt.Errorf("%w: DistributionID = %d", errs.ErrInvalidParameter, r.DistributionID)
	}
	if r.Address == "" {
		return fmt.Errorf("%w: Address = %q", errs.ErrInvalidParameter, r.Address)
	}
	return nil
}

// EligibleForReminder 是否属于提醒的目标人群
// 规则：未完成、未软删、且在阈值窗口内无任何活动
func (r Respondent) EligibleForReminder(now time.Time, thresholdDays int) bool {
	if r.ResponseStatus == ResponseStatusCompleted {
		return false
	}
	if r.SoftDeleted {
		return false
	}
	cutoff := now.Add(-time.Duration(thresholdDays) * 24 * time.Hour)
	return r.LastModified.Before(cutoff)
}
