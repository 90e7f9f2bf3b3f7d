package distribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	"gitee.com/flycash/survey-platform/internal/repository"
	"gitee.com/flycash/survey-platform/internal/service/gateway"
	"gitee.com/flycash/survey-platform/internal/service/scheduler"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sony/sonyflake"
)

// service 投放生命周期服务实现
type service struct {
	repo           repository.DistributionRepository
	respondentRepo repository.RespondentRepository
	commRepo       repository.CommunicationRecordRepository
	gateway        gateway.Gateway
	scheduler      scheduler.Client
	idGenerator    *sonyflake.Sonyflake
	logger         *elog.Component
}

// NewService 创建投放服务实例
func NewService(
	repo repository.DistributionRepository,
	respondentRepo repository.RespondentRepository,
	commRepo repository.CommunicationRecordRepository,
	g gateway.Gateway,
	schedulerClient scheduler.Client,
	idGenerator *sonyflake.Sonyflake,
) Service {
	return &service{
		repo:           repo,
		respondentRepo: respondentRepo,
		commRepo:       commRepo,
		gateway:        g,
		scheduler:      schedulerClient,
		idGenerator:    idGenerator,
		logger:         elog.DefaultLogger,
	}
}

func (s *service) Create(ctx context.Context, d domain.Distribution, recipients []string) (domain.Distribution, error) {
	// 接收者解析是调用方的职责，解析结果为空属于参数错误
	if len(recipients) == 0 {
		return domain.Distribution{}, fmt.Errorf("%w: 接收者列表为空", errs.ErrInvalidParameter)
	}
	if err := d.Validate(); err != nil {
		return domain.Distribution{}, err
	}

	id, err := s.idGenerator.NextID()
	if err != nil {
		return domain.Distribution{}, fmt.Errorf("%w: %w", errs.ErrDistributionIDGenerateFailed, err)
	}
	d.ID = id
	// 提醒配置在创建时做值拷贝快照，之后模板的改动不影响已创建的投放
	d.ReminderConfigs = snapshotConfigs(d.ReminderConfigs)

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Distribution{}, fmt.Errorf("%w: %w", errs.ErrCreateDistributionFailed, err)
	}

	respondents := slice.Map(recipients, func(_ int, address string) domain.Respondent {
		return domain.Respondent{
			DistributionID: created.ID,
			Address:        address,
			ResponseStatus: domain.ResponseStatusNotTaken,
		}
	})
	if _, err = s.respondentRepo.BatchCreate(ctx, respondents); err != nil {
		return domain.Distribution{}, fmt.Errorf("%w: %w", errs.ErrCreateDistributionFailed, err)
	}

	switch created.Status {
	case domain.DistributionStatusScheduled:
		// 先落库再挂定时任务：回调早于句柄写入到来时会被状态机吸收，
		// 任务丢失则由激活扫描兜底
		handle, err1 := s.scheduler.Schedule(ctx, created.ScheduledTime, created.ID)
		if err1 != nil {
			s.logger.Error("安排激活任务失败，等待激活扫描兜底",
				elog.Any("distributionID", created.ID),
				elog.FieldErr(err1))
			return created, nil
		}
		created.ScheduledJobHandle = handle
		if err1 = s.repo.CASTransition(ctx, created); err1 != nil {
			s.logger.Warn("写入任务句柄失败",
				elog.Any("distributionID", created.ID),
				elog.FieldErr(err1))
		} else {
			created.Version++
		}
	case domain.DistributionStatusOpen:
		// Open 状态创建，立刻发邀请
		counters, err1 := s.sendInvitations(ctx, created)
		if err1 != nil {
			s.logger.Error("发送邀请失败，投放保持开放",
				elog.Any("distributionID", created.ID),
				elog.FieldErr(err1))
		} else {
			created.Counters = counters
		}
	default:
	}

	return created, nil
}

// Activate 激活定时投放
// 状态翻转和清空任务句柄在同一次CAS里完成，
// 并发激活只有一个赢家，输家和重复回调都静默吸收
func (s *service) Activate(ctx context.Context, id uint64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if d.Status == domain.DistributionStatusOpen {
		// 重复触发，no-op
		s.logger.Debug("投放已激活，吸收重复触发", elog.Any("distributionID", id))
		return nil
	}
	// Closed→Open 是 Reopen 的路径，激活只认定时状态
	if d.Status != domain.DistributionStatusScheduled {
		return fmt.Errorf("%w: 只有定时投放才能激活, 当前状态 %s", errs.ErrInvalidTransition, d.Status)
	}

	d.Status = domain.DistributionStatusOpen
	d.ScheduledJobHandle = ""
	if err = s.repo.CASTransition(ctx, d); err != nil {
		if errors.Is(err, errs.ErrDistributionVersionMismatch) {
			// 并发激活输家，赢家已经或正在发送邀请
			s.logger.Debug("并发激活竞争失败，吸收", elog.Any("distributionID", id))
			return nil
		}
		return err
	}

	// 赢家负责唯一的一次邀请批量发送
	counters, err := s.sendInvitations(ctx, d)
	if err != nil {
		// 发送失败只记录，投放保持 Open，单个接收者的重试走网关内部策略
		s.logger.Error("激活后发送邀请失败",
			elog.Any("distributionID", id),
			elog.FieldErr(err))
		return nil
	}
	s.logger.Info("投放已激活",
		elog.Any("distributionID", id),
		elog.Any("invitationsSent", counters.InvitationsSent))
	return nil
}

func (s *service) Close(ctx context.Context, id uint64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = d.ValidateTransition(domain.DistributionStatusClosed); err != nil {
		return err
	}
	d.Status = domain.DistributionStatusClosed
	// 关闭不动提醒配置，在途的提醒照常触发
	return s.repo.CASTransition(ctx, d)
}

func (s *service) Reopen(ctx context.Context, id uint64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch d.Status {
	case domain.DistributionStatusOpen:
		return fmt.Errorf("%w: 投放已处于开放状态", errs.ErrInvalidTransition)
	case domain.DistributionStatusScheduled:
		return fmt.Errorf("%w: 定时投放尚未激活，不能重新开放", errs.ErrInvalidTransition)
	default:
	}
	d.Status = domain.DistributionStatusOpen
	return s.repo.CASTransition(ctx, d)
}

func (s *service) GetByID(ctx context.Context, id uint64) (domain.Distribution, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ReportedCounters(ctx context.Context, id uint64) (domain.Counters, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Counters{}, err
	}
	return d.ReportedCounters(), nil
}

func (s *service) AddReminderConfig(ctx context.Context, id uint64, thresholdDays int, templateID int64) error {
	if thresholdDays <= 0 {
		return fmt.Errorf("%w: thresholdDays = %d", errs.ErrInvalidParameter, thresholdDays)
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	config := domain.ReminderConfig{
		ThresholdDays: thresholdDays,
		TemplateID:    templateID,
	}
	config.Advance(time.Now())
	d.ReminderConfigs = append(d.ReminderConfigs, config)
	return s.repo.CASReminderConfigs(ctx, d)
}

func (s *service) ListRespondents(ctx context.Context, id uint64, status domain.ResponseStatus) ([]domain.Respondent, error) {
	return s.respondentRepo.ListByDistribution(ctx, id, status)
}

func (s *service) ListCommunications(ctx context.Context, id uint64, kind domain.CommunicationKind) ([]domain.CommunicationRecord, error) {
	return s.commRepo.ListByDistribution(ctx, id, kind)
}

func (s *service) UpdateResponseStatus(ctx context.Context, id, respondentID uint64, status domain.ResponseStatus) error {
	if status != domain.ResponseStatusNotTaken &&
		status != domain.ResponseStatusInProgress &&
		status != domain.ResponseStatusCompleted {
		return fmt.Errorf("%w: status = %q", errs.ErrInvalidParameter, status)
	}
	return s.respondentRepo.UpdateResponseStatus(ctx, id, respondentID, status)
}

func (s *service) SoftDeleteRespondent(ctx context.Context, id, respondentID uint64) error {
	return s.respondentRepo.SoftDelete(ctx, id, respondentID)
}

// snapshotConfigs 值拷贝提醒配置
func snapshotConfigs(configs []domain.ReminderConfig) []domain.ReminderConfig {
	if len(configs) == 0 {
		return nil
	}
	snapshot := make([]domain.ReminderConfig, len(configs))
	copy(snapshot, configs)
	now := time.Now()
	for i := range snapshot {
		if snapshot[i].NextExecutionTime.IsZero() {
			snapshot[i].Advance(now)
		}
	}
	return snapshot
}
