package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"
)

// DistributionStatus 投放状态
type DistributionStatus string

const (
	DistributionStatusScheduled DistributionStatus = "SCHEDULED" // 定时待激活
	DistributionStatusOpen      DistributionStatus = "OPEN"      // 开放中
	DistributionStatusClosed    DistributionStatus = "CLOSED"    // 已关闭
)

func (s DistributionStatus) String() string {
	return string(s)
}

// Counters 投放计数器
type Counters struct {
	InvitationsSent int64 // 已发送邀请数
	InProgressCount int64 // 答题中人数
	CompletedCount  int64 // 已完成人数
}

// ReminderConfig 提醒配置，内嵌在投放中
// ThresholdDays 既是受访者的不活跃窗口，也是提醒的重复周期
type ReminderConfig struct {
	ThresholdDays     int       // 不活跃天数阈值
	NextExecutionTime time.Time // 下一次执行时间
	TemplateID        int64     // 提醒模板ID
}

// Due 是否到达执行时间
func (c ReminderConfig) Due(now time.Time) bool {
	return !c.NextExecutionTime.After(now)
}

// Advance 推进到下一次执行时间
func (c *ReminderConfig) Advance(now time.Time) {
	c.NextExecutionTime = now.Add(time.Duration(c.ThresholdDays) * 24 * time.Hour)
}

// Distribution 投放领域模型，一次问卷的批量发送
type Distribution struct {
	ID                 uint64             // 投放唯一标识，时间有序
	SurveyID           int64              // 所属问卷ID
	Name               string             // 投放名称
	TemplateID         int64              // 邀请模板ID
	Status             DistributionStatus // 投放状态
	ScheduledTime      time.Time          // 定时激活时间，Scheduled 状态下必填
	ScheduledJobHandle string             // 定时任务句柄，有待激活任务时非空
	Counters           Counters           // 计数器，存储层始终保存真实值
	ReminderConfigs    []ReminderConfig   // 提醒配置列表
	Version            int                // 版本号，用于CAS操作
}

// ReportedCounters 对外展示的计数器
// Scheduled 状态下一律返回零值，这是读时投影，不影响存储
func (d Distribution) ReportedCounters() Counters {
	if d.Status == DistributionStatusScheduled {
		return Counters{}
	}
	return d.Counters
}

// NextReminderTime 所有提醒配置中最早的执行时间，没有配置时返回零值
func (d Distribution) NextReminderTime() time.Time {
	var next time.Time
	for i := range d.ReminderConfigs {
		t := d.ReminderConfigs[i].NextExecutionTime
		if next.IsZero() || t.Before(next) {
			next = t
		}
	}
	return next
}

// ValidateTransition 校验状态流转是否合法
// 合法路径只有 Scheduled→Open、Open→Closed、Closed→Open
func (d Distribution) ValidateTransition(target DistributionStatus) error {
	switch {
	case d.Status == DistributionStatusScheduled && target == DistributionStatusOpen:
		return nil
	case d.Status == DistributionStatusOpen && target == DistributionStatusClosed:
		return nil
	case d.Status == DistributionStatusClosed && target == DistributionStatusOpen:
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, d.Status, target)
	}
}

func (d Distribution) Validate() error {
	if d.SurveyID <= 0 {
		return fmt.Errorf("%w: SurveyID = %d", errs.ErrInvalidParameter, d.SurveyID)
	}

	if d.Name == "" {
		return fmt.Errorf("%w: Name = %q", errs.ErrInvalidParameter, d.Name)
	}

	if d.TemplateID <= 0 {
		return fmt.Errorf("%w: TemplateID = %d", errs.ErrInvalidParameter, d.TemplateID)
	}

	if d.Status != DistributionStatusScheduled && d.Status != DistributionStatusOpen {
		return fmt.Errorf("%w: 初始状态只能是 Scheduled 或 Open, Status = %q", errs.ErrInvalidParameter, d.Status)
	}

	if d.Status == DistributionStatusScheduled && d.ScheduledTime.IsZero() {
		return fmt.Errorf("%w: Scheduled 状态必须指定激活时间", errs.ErrInvalidParameter)
	}

	for i := range d.ReminderConfigs {
		if d.ReminderConfigs[i].ThresholdDays <= 0 {
			return fmt.Errorf("%w: ThresholdDays = %d", errs.ErrInvalidParameter, d.ReminderConfigs[i].ThresholdDays)
		}
	}

	return nil
}

func (d *Distribution) MarshalReminderConfigs() (string, error) {
	jsonBytes, err := json.Marshal(d.ReminderConfigs)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
