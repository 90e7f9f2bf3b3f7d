package repository

import (
	"context"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

// RespondentRepository 受访者仓储接口
type RespondentRepository interface {
	// BatchCreate 批量创建受访者
	BatchCreate(ctx context.Context, respondents []domain.Respondent) ([]domain.Respondent, error)

	// GetByID 获取单个受访者
	GetByID(ctx context.Context, distributionID, id uint64) (domain.Respondent, error)

	// ListByDistribution 按答题状态过滤受访者列表，status 为空表示不过滤
	ListByDistribution(ctx context.Context, distributionID uint64, status domain.ResponseStatus) ([]domain.Respondent, error)

	// FindEligibleForReminder 提醒人群筛选
	FindEligibleForReminder(ctx context.Context, distributionID uint64, cutoff time.Time) ([]domain.Respondent, error)

	// MarkSent 发送成功后更新提醒簿记
	MarkSent(ctx context.Context, distributionID uint64, ids []uint64, sentAt time.Time) error

	// UpdateResponseStatus 变更答题状态
	UpdateResponseStatus(ctx context.Context, distributionID, id uint64, status domain.ResponseStatus) error

	// SoftDelete 软删除受访者
	SoftDelete(ctx context.Context, distributionID, id uint64) error
}

// respondentRepository 受访者仓储实现
type respondentRepository struct {
	dao dao.RespondentDAO
}

// NewRespondentRepository 创建受访者仓储实例
func NewRespondentRepository(d dao.RespondentDAO) RespondentRepository {
	return &respondentRepository{
		dao: d,
	}
}

func (r *respondentRepository) BatchCreate(ctx context.Context, respondents []domain.Respondent) ([]domain.Respondent, error) {
	entities := slice.Map(respondents, func(_ int, src domain.Respondent) dao.Respondent {
		return r.toEntity(src)
	})
	created, err := r.dao.BatchCreate(ctx, entities)
	if err != nil {
		return nil, err
	}
	return slice.Map(created, func(_ int, src dao.Respondent) domain.Respondent {
		return r.toDomain(src)
	}), nil
}

func (r *respondentRepository) GetByID(ctx context.Context, distributionID, id uint64) (domain.Respondent, error) {
	entity, err := r.dao.GetByID(ctx, distributionID, id)
	if err != nil {
		return domain.Respondent{}, err
	}
	return r.toDomain(entity), nil
}

func (r *respondentRepository) ListByDistribution(ctx context.Context, distributionID uint64, status domain.ResponseStatus) ([]domain.Respondent, error) {
	entities, err := r.dao.ListByDistribution(ctx, distributionID, status.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Respondent) domain.Respondent {
		return r.toDomain(src)
	}), nil
}

func (r *respondentRepository) FindEligibleForReminder(ctx context.Context, distributionID uint64, cutoff time.Time) ([]domain.Respondent, error) {
	entities, err := r.dao.FindEligibleForReminder(ctx, distributionID, cutoff.UnixMilli())
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Respondent) domain.Respondent {
		return r.toDomain(src)
	}), nil
}

func (r *respondentRepository) MarkSent(ctx context.Context, distributionID uint64, ids []uint64, sentAt time.Time) error {
	return r.dao.MarkSent(ctx, distributionID, ids, sentAt.UnixMilli())
}

func (r *respondentRepository) UpdateResponseStatus(ctx context.Context, distributionID, id uint64, status domain.ResponseStatus) error {
	return r.dao.UpdateResponseStatus(ctx, distributionID, id, status.String())
}

func (r *respondentRepository) SoftDelete(ctx context.Context, distributionID, id uint64) error {
	return r.dao.SoftDelete(ctx, distributionID, id)
}

func (r *respondentRepository) toEntity(respondent domain.Respondent) dao.Respondent {
	return dao.Respondent{
		ID:             respondent.ID,
		DistributionID: respondent.DistributionID,
		Address:        respondent.Address,
		ResponseStatus: respondent.ResponseStatus.String(),
		CustomStatus:   respondent.CustomStatus,
		LastModified:   toMilli(respondent.LastModified),
		LastSentAt:     toMilli(respondent.LastSentAt),
		SendCount:      respondent.SendCount,
		SoftDeleted:    respondent.SoftDeleted,
	}
}

func (r *respondentRepository) toDomain(entity dao.Respondent) domain.Respondent {
	return domain.Respondent{
		ID:             entity.ID,
		DistributionID: entity.DistributionID,
		Address:        entity.Address,
		ResponseStatus: domain.ResponseStatus(entity.ResponseStatus),
		CustomStatus:   entity.CustomStatus,
		LastModified:   fromMilli(entity.LastModified),
		LastSentAt:     fromMilli(entity.LastSentAt),
		SendCount:      entity.SendCount,
		SoftDeleted:    entity.SoftDeleted,
	}
}
