package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
)

type CommunicationRecordDAO interface {
	// Create 追加一条发送审计记录，写入后不再变更
	Create(ctx context.Context, data CommunicationRecord) (CommunicationRecord, error)
	// ListByDistribution 查询投放的发送历史，可按消息类型过滤
	ListByDistribution(ctx context.Context, distributionID uint64, kind string) ([]CommunicationRecord, error)
	// CountByDistribution 统计投放的发送记录数
	CountByDistribution(ctx context.Context, distributionID uint64) (int64, error)
}

// CommunicationRecord 发送审计记录表，只增不改
type CommunicationRecord struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement;comment:'记录ID'"`
	DistributionID uint64 `gorm:"NOT NULL;index:idx_distribution_kind,priority:1;comment:'所属投放ID'"`
	Kind           string `gorm:"type:ENUM('INVITATION','REMINDER','THANK_YOU');NOT NULL;index:idx_distribution_kind,priority:2;comment:'消息类型'"`
	RecipientCount int    `gorm:"NOT NULL;DEFAULT:0;comment:'接收者数量'"`
	Outcomes       string `gorm:"type:TEXT;comment:'按序的接收者结果，JSON数组'"`
	Ctime          int64
}

type communicationRecordDAO struct {
	db *egorm.Component
}

// NewCommunicationRecordDAO 创建发送记录DAO实例
func NewCommunicationRecordDAO(db *egorm.Component) CommunicationRecordDAO {
	return &communicationRecordDAO{
		db: db,
	}
}

func (d *communicationRecordDAO) Create(ctx context.Context, data CommunicationRecord) (CommunicationRecord, error) {
	data.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return CommunicationRecord{}, fmt.Errorf("创建发送记录失败: %w", err)
	}
	return data, nil
}

func (d *communicationRecordDAO) ListByDistribution(ctx context.Context, distributionID uint64, kind string) ([]CommunicationRecord, error) {
	query := d.db.WithContext(ctx).Where("distribution_id = ?", distributionID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	var records []CommunicationRecord
	err := query.Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询发送记录失败: %w", err)
	}
	return records, nil
}

func (d *communicationRecordDAO) CountByDistribution(ctx context.Context, distributionID uint64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&CommunicationRecord{}).
		Where("distribution_id = ?", distributionID).
		Count(&cnt).Error
	return cnt, err
}
