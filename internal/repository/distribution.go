package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/repository/cache/local"
	"gitee.com/flycash/survey-platform/internal/repository/dao"
)

// DistributionRepository 投放仓储接口
type DistributionRepository interface {
	// Create 创建一个投放
	Create(ctx context.Context, distribution domain.Distribution) (domain.Distribution, error)

	// GetByID 根据ID获取投放
	GetByID(ctx context.Context, id uint64) (domain.Distribution, error)

	// GetBySurveyID 根据问卷ID获取投放列表
	GetBySurveyID(ctx context.Context, surveyID int64) ([]domain.Distribution, error)

	// FindDueScheduled 获取已到激活时间的定时投放
	FindDueScheduled(ctx context.Context, now time.Time, offset, limit int) ([]domain.Distribution, error)

	// FindDueReminders 获取存在到期提醒的开放投放
	FindDueReminders(ctx context.Context, now time.Time, offset, limit int) ([]domain.Distribution, error)

	// CASTransition 以乐观锁方式流转投放状态
	CASTransition(ctx context.Context, distribution domain.Distribution) error

	// CASReminderConfigs 以乐观锁方式推进提醒配置
	CASReminderConfigs(ctx context.Context, distribution domain.Distribution) error

	// UpdateCounters 覆盖写计数器
	UpdateCounters(ctx context.Context, id uint64, counters domain.Counters) error

	// DeleteCascade 级联删除投放
	DeleteCascade(ctx context.Context, id uint64) error
}

// distributionRepository 投放仓储实现
type distributionRepository struct {
	dao   dao.DistributionDAO
	cache *local.Cache
}

// NewDistributionRepository 创建投放仓储实例
func NewDistributionRepository(d dao.DistributionDAO, c *local.Cache) DistributionRepository {
	return &distributionRepository{
		dao:   d,
		cache: c,
	}
}

func (r *distributionRepository) Create(ctx context.Context, distribution domain.Distribution) (domain.Distribution, error) {
	entity, err := r.toEntity(distribution)
	if err != nil {
		return domain.Distribution{}, err
	}
	created, err := r.dao.Create(ctx, entity)
	if err != nil {
		return domain.Distribution{}, err
	}
	return r.toDomain(created)
}

func (r *distributionRepository) GetByID(ctx context.Context, id uint64) (domain.Distribution, error) {
	if d, err := r.cache.Get(id); err == nil {
		return d, nil
	}
	entity, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Distribution{}, err
	}
	d, err := r.toDomain(entity)
	if err != nil {
		return domain.Distribution{}, err
	}
	r.cache.Set(d)
	return d, nil
}

func (r *distributionRepository) GetBySurveyID(ctx context.Context, surveyID int64) ([]domain.Distribution, error) {
	entities, err := r.dao.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities)
}

func (r *distributionRepository) FindDueScheduled(ctx context.Context, now time.Time, offset, limit int) ([]domain.Distribution, error) {
	entities, err := r.dao.FindDueScheduled(ctx, now.UnixMilli(), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities)
}

func (r *distributionRepository) FindDueReminders(ctx context.Context, now time.Time, offset, limit int) ([]domain.Distribution, error) {
	entities, err := r.dao.FindDueReminders(ctx, now.UnixMilli(), offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities)
}

func (r *distributionRepository) CASTransition(ctx context.Context, distribution domain.Distribution) error {
	r.cache.Del(distribution.ID)
	return r.dao.CASTransition(ctx, dao.Distribution{
		ID:                 distribution.ID,
		Status:             distribution.Status.String(),
		ScheduledJobHandle: distribution.ScheduledJobHandle,
		Version:            distribution.Version,
	})
}

func (r *distributionRepository) CASReminderConfigs(ctx context.Context, distribution domain.Distribution) error {
	configs, err := distribution.MarshalReminderConfigs()
	if err != nil {
		return fmt.Errorf("序列化提醒配置失败: %w", err)
	}
	r.cache.Del(distribution.ID)
	return r.dao.CASReminderConfigs(ctx, dao.Distribution{
		ID:               distribution.ID,
		ReminderConfigs:  configs,
		NextReminderTime: toMilli(distribution.NextReminderTime()),
		Version:          distribution.Version,
	})
}

func (r *distributionRepository) UpdateCounters(ctx context.Context, id uint64, counters domain.Counters) error {
	r.cache.Del(id)
	return r.dao.UpdateCounters(ctx, id, counters.InvitationsSent, counters.InProgressCount, counters.CompletedCount)
}

func (r *distributionRepository) DeleteCascade(ctx context.Context, id uint64) error {
	r.cache.Del(id)
	return r.dao.DeleteCascade(ctx, id)
}

// toEntity 将领域对象转换为DAO实体
func (r *distributionRepository) toEntity(distribution domain.Distribution) (dao.Distribution, error) {
	configs, err := distribution.MarshalReminderConfigs()
	if err != nil {
		return dao.Distribution{}, fmt.Errorf("序列化提醒配置失败: %w", err)
	}
	return dao.Distribution{
		ID:                 distribution.ID,
		SurveyID:           distribution.SurveyID,
		Name:               distribution.Name,
		TemplateID:         distribution.TemplateID,
		Status:             distribution.Status.String(),
		ScheduledTime:      toMilli(distribution.ScheduledTime),
		ScheduledJobHandle: distribution.ScheduledJobHandle,
		InvitationsSent:    distribution.Counters.InvitationsSent,
		InProgressCount:    distribution.Counters.InProgressCount,
		CompletedCount:     distribution.Counters.CompletedCount,
		ReminderConfigs:    configs,
		NextReminderTime:   toMilli(distribution.NextReminderTime()),
		Version:            distribution.Version,
	}, nil
}

// toDomain 将DAO实体转换为领域对象
func (r *distributionRepository) toDomain(entity dao.Distribution) (domain.Distribution, error) {
	var configs []domain.ReminderConfig
	if entity.ReminderConfigs != "" {
		if err := json.Unmarshal([]byte(entity.ReminderConfigs), &configs); err != nil {
			return domain.Distribution{}, fmt.Errorf("反序列化提醒配置失败: id=%d, %w", entity.ID, err)
		}
	}
	return domain.Distribution{
		ID:                 entity.ID,
		SurveyID:           entity.SurveyID,
		Name:               entity.Name,
		TemplateID:         entity.TemplateID,
		Status:             domain.DistributionStatus(entity.Status),
		ScheduledTime:      fromMilli(entity.ScheduledTime),
		ScheduledJobHandle: entity.ScheduledJobHandle,
		Counters: domain.Counters{
			InvitationsSent: entity.InvitationsSent,
			InProgressCount: entity.InProgressCount,
			CompletedCount:  entity.CompletedCount,
		},
		ReminderConfigs: configs,
		Version:         entity.Version,
	}, nil
}

func (r *distributionRepository) toDomains(entities []dao.Distribution) ([]domain.Distribution, error) {
	distributions := make([]domain.Distribution, 0, len(entities))
	for i := range entities {
		d, err := r.toDomain(entities[i])
		if err != nil {
			return nil, err
		}
		distributions = append(distributions, d)
	}
	return distributions, nil
}

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
