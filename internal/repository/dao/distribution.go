package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type DistributionDAO interface {
	// Create 创建投放记录
	Create(ctx context.Context, data Distribution) (Distribution, error)

	// GetByID 根据ID查询投放
	GetByID(ctx context.Context, id uint64) (Distribution, error)
	// GetBySurveyID 根据问卷ID查询投放列表
	GetBySurveyID(ctx context.Context, surveyID int64) ([]Distribution, error)

	// FindDueScheduled 查询已到激活时间的定时投放
	FindDueScheduled(ctx context.Context, now int64, offset, limit int) ([]Distribution, error)
	// FindDueReminders 查询存在到期提醒配置的开放投放
	FindDueReminders(ctx context.Context, now int64, offset, limit int) ([]Distribution, error)

	// CASTransition 以乐观锁方式更新投放状态
	// 状态流转和清空任务句柄在同一条原子更新里完成
	CASTransition(ctx context.Context, data Distribution) error
	// CASReminderConfigs 以乐观锁方式推进提醒配置
	CASReminderConfigs(ctx context.Context, data Distribution) error

	// UpdateCounters 覆盖写投放计数器
	UpdateCounters(ctx context.Context, id uint64, invitationsSent, inProgress, completed int64) error

	// DeleteCascade 级联删除投放及其所属的全部记录
	DeleteCascade(ctx context.Context, id uint64) error
}

// Distribution 投放记录表
type Distribution struct {
	ID                 uint64 `gorm:"primaryKey;comment:'雪花算法ID，时间有序'"`
	SurveyID           int64  `gorm:"type:BIGINT;NOT NULL;index:idx_survey_id;comment:'所属问卷ID'"`
	Name               string `gorm:"type:VARCHAR(256);NOT NULL;comment:'投放名称'"`
	TemplateID         int64  `gorm:"type:BIGINT;NOT NULL;comment:'邀请模板ID'"`
	Status             string `gorm:"type:ENUM('SCHEDULED','OPEN','CLOSED');DEFAULT:'SCHEDULED';index:idx_status_scheduled,priority:1;index:idx_status_reminder,priority:1;comment:'投放状态'"`
	ScheduledTime      int64  `gorm:"index:idx_status_scheduled,priority:2;comment:'定时激活时间，0表示无'"`
	ScheduledJobHandle string `gorm:"type:VARCHAR(256);NOT NULL;DEFAULT:'';comment:'定时任务句柄，空表示无待激活任务'"`
	InvitationsSent    int64  `gorm:"NOT NULL;DEFAULT:0;comment:'已发送邀请数'"`
	InProgressCount    int64  `gorm:"NOT NULL;DEFAULT:0;comment:'答题中人数'"`
	CompletedCount     int64  `gorm:"NOT NULL;DEFAULT:0;comment:'已完成人数'"`
	ReminderConfigs    string `gorm:"type:TEXT;comment:'提醒配置，JSON数组'"`
	NextReminderTime   int64  `gorm:"index:idx_status_reminder,priority:2;comment:'最早的提醒执行时间，0表示无提醒'"`
	Version            int    `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'版本号，用于CAS操作'"`
	Ctime              int64
	Utime              int64
}

type distributionDAO struct {
	db *egorm.Component
}

// NewDistributionDAO 创建投放DAO实例
func NewDistributionDAO(db *egorm.Component) DistributionDAO {
	return &distributionDAO{
		db: db,
	}
}

func (d *distributionDAO) Create(ctx context.Context, data Distribution) (Distribution, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	data.Version = 1

	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		if d.isUniqueConstraintError(err) {
			return Distribution{}, fmt.Errorf("%w", errs.ErrDistributionDuplicate)
		}
		return Distribution{}, err
	}
	return data, nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *distributionDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *distributionDAO) GetByID(ctx context.Context, id uint64) (Distribution, error) {
	var distribution Distribution
	err := d.db.WithContext(ctx).First(&distribution, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Distribution{}, fmt.Errorf("%w: id=%d", errs.ErrDistributionNotFound, id)
		}
		return Distribution{}, err
	}
	return distribution, nil
}

func (d *distributionDAO) GetBySurveyID(ctx context.Context, surveyID int64) ([]Distribution, error) {
	var distributions []Distribution
	err := d.db.WithContext(ctx).Where("survey_id = ?", surveyID).Find(&distributions).Error
	if err != nil {
		return nil, fmt.Errorf("查询投放列表失败: %w", err)
	}
	return distributions, nil
}

// FindDueScheduled 走 (status, scheduled_time) 索引
func (d *distributionDAO) FindDueScheduled(ctx context.Context, now int64, offset, limit int) ([]Distribution, error) {
	var distributions []Distribution
	err := d.db.WithContext(ctx).
		Where("status = ? AND scheduled_time > 0 AND scheduled_time <= ?", domainStatusScheduled, now).
		Order("scheduled_time ASC").
		Offset(offset).Limit(limit).
		Find(&distributions).Error
	return distributions, err
}

// FindDueReminders 走 (status, next_reminder_time) 索引
func (d *distributionDAO) FindDueReminders(ctx context.Context, now int64, offset, limit int) ([]Distribution, error) {
	var distributions []Distribution
	err := d.db.WithContext(ctx).
		Where("status = ? AND next_reminder_time > 0 AND next_reminder_time <= ?", domainStatusOpen, now).
		Order("next_reminder_time ASC").
		Offset(offset).Limit(limit).
		Find(&distributions).Error
	return distributions, err
}

// CASTransition 更新投放状态
// 同一条 UPDATE 语句里同时翻转状态和写 scheduled_job_handle，
// 保证重复的激活回调在版本号变化后一定会落空
func (d *distributionDAO) CASTransition(ctx context.Context, data Distribution) error {
	updates := map[string]any{
		"status":               data.Status,
		"scheduled_job_handle": data.ScheduledJobHandle,
		"version":              gorm.Expr("version + 1"),
		"utime":                time.Now().UnixMilli(),
	}

	result := d.db.WithContext(ctx).Model(&Distribution{}).
		Where("id = ? AND version = ?", data.ID, data.Version).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected < 1 {
		return fmt.Errorf("并发竞争失败 %w, id %d", errs.ErrDistributionVersionMismatch, data.ID)
	}
	return nil
}

// CASReminderConfigs 推进提醒配置和 next_reminder_time
func (d *distributionDAO) CASReminderConfigs(ctx context.Context, data Distribution) error {
	updates := map[string]any{
		"reminder_configs":   data.ReminderConfigs,
		"next_reminder_time": data.NextReminderTime,
		"version":            gorm.Expr("version + 1"),
		"utime":              time.Now().UnixMilli(),
	}

	result := d.db.WithContext(ctx).Model(&Distribution{}).
		Where("id = ? AND version = ?", data.ID, data.Version).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected < 1 {
		return fmt.Errorf("并发竞争失败 %w, id %d", errs.ErrDistributionVersionMismatch, data.ID)
	}
	return nil
}

func (d *distributionDAO) UpdateCounters(ctx context.Context, id uint64, invitationsSent, inProgress, completed int64) error {
	return d.db.WithContext(ctx).Model(&Distribution{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"invitations_sent":  invitationsSent,
			"in_progress_count": inProgress,
			"completed_count":   completed,
			"utime":             time.Now().UnixMilli(),
		}).Error
}

// DeleteCascade 在单个事务里删除投放和它独占的全部记录
// 提醒配置内嵌在投放记录里，随投放一起删除
func (d *distributionDAO) DeleteCascade(ctx context.Context, id uint64) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("distribution_id = ?", id).Delete(&Respondent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("distribution_id = ?", id).Delete(&CommunicationRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Distribution{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return fmt.Errorf("%w: id=%d", errs.ErrDistributionNotFound, id)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrDistributionNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", errs.ErrTransactionFailure, err)
	}
	return nil
}

const (
	domainStatusScheduled = "SCHEDULED"
	domainStatusOpen      = "OPEN"
)
