package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/repository/dao"
)

// CommunicationRecordRepository 发送记录仓储接口
type CommunicationRecordRepository interface {
	// Create 追加一条发送记录
	Create(ctx context.Context, record domain.CommunicationRecord) (domain.CommunicationRecord, error)

	// ListByDistribution 查询投放的发送历史，kind 为空表示不过滤
	ListByDistribution(ctx context.Context, distributionID uint64, kind domain.CommunicationKind) ([]domain.CommunicationRecord, error)

	// CountByDistribution 统计投放的发送记录数
	CountByDistribution(ctx context.Context, distributionID uint64) (int64, error)
}

// communicationRecordRepository 发送记录仓储实现
type communicationRecordRepository struct {
	dao dao.CommunicationRecordDAO
}

// NewCommunicationRecordRepository 创建发送记录仓储实例
func NewCommunicationRecordRepository(d dao.CommunicationRecordDAO) CommunicationRecordRepository {
	return &communicationRecordRepository{
		dao: d,
	}
}

func (r *communicationRecordRepository) Create(ctx context.Context, record domain.CommunicationRecord) (domain.CommunicationRecord, error) {
	outcomes, err := record.MarshalOutcomes()
	if err != nil {
		return domain.CommunicationRecord{}, fmt.Errorf("序列化接收者结果失败: %w", err)
	}
	created, err := r.dao.Create(ctx, dao.CommunicationRecord{
		DistributionID: record.DistributionID,
		Kind:           record.Kind.String(),
		RecipientCount: record.RecipientCount,
		Outcomes:       outcomes,
	})
	if err != nil {
		return domain.CommunicationRecord{}, err
	}
	return r.toDomain(created)
}

func (r *communicationRecordRepository) ListByDistribution(ctx context.Context, distributionID uint64, kind domain.CommunicationKind) ([]domain.CommunicationRecord, error) {
	entities, err := r.dao.ListByDistribution(ctx, distributionID, kind.String())
	if err != nil {
		return nil, err
	}
	records := make([]domain.CommunicationRecord, 0, len(entities))
	for i := range entities {
		record, err := r.toDomain(entities[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *communicationRecordRepository) CountByDistribution(ctx context.Context, distributionID uint64) (int64, error) {
	return r.dao.CountByDistribution(ctx, distributionID)
}

func (r *communicationRecordRepository) toDomain(entity dao.CommunicationRecord) (domain.CommunicationRecord, error) {
	var outcomes []domain.RecipientOutcome
	if entity.Outcomes != "" {
		if err := json.Unmarshal([]byte(entity.Outcomes), &outcomes); err != nil {
			return domain.CommunicationRecord{}, fmt.Errorf("反序列化接收者结果失败: id=%d, %w", entity.ID, err)
		}
	}
	return domain.CommunicationRecord{
		ID:             entity.ID,
		DistributionID: entity.DistributionID,
		Kind:           domain.CommunicationKind(entity.Kind),
		RecipientCount: entity.RecipientCount,
		Outcomes:       outcomes,
		CreatedAt:      fromMilli(entity.Ctime),
	}, nil
}
