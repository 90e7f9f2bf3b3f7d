package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type RespondentDAO interface {
	// BatchCreate 批量创建受访者记录
	BatchCreate(ctx context.Context, dataList []Respondent) ([]Respondent, error)

	// GetByID 查询单个受访者
	GetByID(ctx context.Context, distributionID, id uint64) (Respondent, error)
	// ListByDistribution 查询投放下的全部受访者，可按答题状态过滤
	ListByDistribution(ctx context.Context, distributionID uint64, status string) ([]Respondent, error)
	// ListActiveAddresses 查询投放下全部有效受访者
	ListActive(ctx context.Context, distributionID uint64) ([]Respondent, error)

	// FindEligibleForReminder 提醒人群筛选
	// 条件：未完成、未软删、且最后活动时间早于 cutoff
	FindEligibleForReminder(ctx context.Context, distributionID uint64, cutoff int64) ([]Respondent, error)

	// MarkSent 发送成功后更新提醒簿记
	MarkSent(ctx context.Context, distributionID uint64, ids []uint64, sentAt int64) error

	// UpdateResponseStatus 变更答题状态，并在同一事务里维护投放计数器
	UpdateResponseStatus(ctx context.Context, distributionID, id uint64, status string) error

	// SoftDelete 软删除受访者，并在同一事务里扣减 invitations_sent
	SoftDelete(ctx context.Context, distributionID, id uint64) error
}

// Respondent 受访者记录表
type Respondent struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement;comment:'受访者ID'"`
	DistributionID uint64 `gorm:"NOT NULL;index:idx_distribution_id;comment:'所属投放ID'"`
	Address        string `gorm:"type:VARCHAR(256);NOT NULL;comment:'投递地址(邮箱/手机号)'"`
	ResponseStatus string `gorm:"type:ENUM('NOT_TAKEN','IN_PROGRESS','COMPLETED');DEFAULT:'NOT_TAKEN';comment:'答题状态'"`
	CustomStatus   string `gorm:"type:VARCHAR(64);NOT NULL;DEFAULT:'';comment:'展示用自定义状态，核心逻辑忽略'"`
	LastModified   int64  `gorm:"NOT NULL;DEFAULT:0;comment:'答题状态最后变更时间'"`
	LastSentAt     int64  `gorm:"NOT NULL;DEFAULT:0;comment:'最近一次发送时间'"`
	SendCount      int    `gorm:"NOT NULL;DEFAULT:0;comment:'累计发送次数'"`
	SoftDeleted    bool   `gorm:"NOT NULL;DEFAULT:0;comment:'软删除标记'"`
	Ctime          int64
	Utime          int64
}

type respondentDAO struct {
	db *egorm.Component
}

// NewRespondentDAO 创建受访者DAO实例
func NewRespondentDAO(db *egorm.Component) RespondentDAO {
	return &respondentDAO{
		db: db,
	}
}

// notDeleted 软删除过滤统一放在查询构造层面
// 避免每个调用点各自记得加条件
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("soft_deleted = ?", false)
}

func (d *respondentDAO) BatchCreate(ctx context.Context, dataList []Respondent) ([]Respondent, error) {
	if len(dataList) == 0 {
		return []Respondent{}, nil
	}

	const batchSize = 100
	now := time.Now().UnixMilli()
	for i := range dataList {
		dataList[i].Ctime, dataList[i].Utime = now, now
		dataList[i].LastModified = now
	}

	err := d.db.WithContext(ctx).CreateInBatches(dataList, batchSize).Error
	if err != nil {
		return nil, fmt.Errorf("批量创建受访者失败: %w", err)
	}
	return dataList, nil
}

func (d *respondentDAO) GetByID(ctx context.Context, distributionID, id uint64) (Respondent, error) {
	var respondent Respondent
	err := d.db.WithContext(ctx).Scopes(notDeleted).
		Where("distribution_id = ? AND id = ?", distributionID, id).
		First(&respondent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Respondent{}, fmt.Errorf("%w: distributionID=%d, id=%d", errs.ErrRespondentNotFound, distributionID, id)
		}
		return Respondent{}, err
	}
	return respondent, nil
}

func (d *respondentDAO) ListByDistribution(ctx context.Context, distributionID uint64, status string) ([]Respondent, error) {
	query := d.db.WithContext(ctx).Scopes(notDeleted).
		Where("distribution_id = ?", distributionID)
	if status != "" {
		query = query.Where("response_status = ?", status)
	}
	var respondents []Respondent
	err := query.Find(&respondents).Error
	if err != nil {
		return nil, fmt.Errorf("查询受访者列表失败: %w", err)
	}
	return respondents, nil
}

func (d *respondentDAO) ListActive(ctx context.Context, distributionID uint64) ([]Respondent, error) {
	return d.ListByDistribution(ctx, distributionID, "")
}

func (d *respondentDAO) FindEligibleForReminder(ctx context.Context, distributionID uint64, cutoff int64) ([]Respondent, error) {
	var respondents []Respondent
	err := d.db.WithContext(ctx).Scopes(notDeleted).
		Where("distribution_id = ? AND response_status != ? AND last_modified < ?",
			distributionID, respondentStatusCompleted, cutoff).
		Find(&respondents).Error
	if err != nil {
		return nil, fmt.Errorf("查询提醒人群失败: %w", err)
	}
	return respondents, nil
}

func (d *respondentDAO) MarkSent(ctx context.Context, distributionID uint64, ids []uint64, sentAt int64) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Model(&Respondent{}).
		Where("distribution_id = ? AND id IN ?", distributionID, ids).
		Updates(map[string]any{
			"send_count":   gorm.Expr("send_count + 1"),
			"last_sent_at": sentAt,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

// UpdateResponseStatus 答题状态变更和计数器维护必须同事务
// 否则并发下计数器会和真实人数漂移
func (d *respondentDAO) UpdateResponseStatus(ctx context.Context, distributionID, id uint64, status string) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var respondent Respondent
		err := tx.Scopes(notDeleted).
			Where("distribution_id = ? AND id = ?", distributionID, id).
			First(&respondent).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: distributionID=%d, id=%d", errs.ErrRespondentNotFound, distributionID, id)
			}
			return err
		}
		if respondent.ResponseStatus == status {
			return nil
		}

		err = tx.Model(&Respondent{}).Where("id = ?", respondent.ID).
			Updates(map[string]any{
				"response_status": status,
				"last_modified":   now,
				"utime":           now,
			}).Error
		if err != nil {
			return err
		}

		counterUpdates := map[string]any{"utime": now}
		switch status {
		case respondentStatusInProgress:
			counterUpdates["in_progress_count"] = gorm.Expr("in_progress_count + 1")
		case respondentStatusCompleted:
			counterUpdates["completed_count"] = gorm.Expr("completed_count + 1")
			if respondent.ResponseStatus == respondentStatusInProgress {
				counterUpdates["in_progress_count"] = gorm.Expr("in_progress_count - 1")
			}
		}
		return tx.Model(&Distribution{}).Where("id = ?", distributionID).
			Updates(counterUpdates).Error
	})
}

// SoftDelete 软删除受访者，投放的 invitations_sent 同步扣减
func (d *respondentDAO) SoftDelete(ctx context.Context, distributionID, id uint64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Respondent{}).
			Where("distribution_id = ? AND id = ? AND soft_deleted = ?", distributionID, id, false).
			Updates(map[string]any{
				"soft_deleted": true,
				"utime":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return fmt.Errorf("%w: distributionID=%d, id=%d", errs.ErrRespondentNotFound, distributionID, id)
		}
		return tx.Model(&Distribution{}).
			Where("id = ? AND invitations_sent > 0", distributionID).
			Updates(map[string]any{
				"invitations_sent": gorm.Expr("invitations_sent - 1"),
				"utime":            now,
			}).Error
	})
}

const (
	respondentStatusInProgress = "IN_PROGRESS"
	respondentStatusCompleted  = "COMPLETED"
)
