package distribution

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	repomocks "gitee.com/flycash/survey-platform/internal/repository/mocks"
	gatewaymocks "gitee.com/flycash/survey-platform/internal/service/gateway/mocks"
	schedulermocks "gitee.com/flycash/survey-platform/internal/service/scheduler/mocks"
	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestDistributionServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DistributionServiceTestSuite))
}

type DistributionServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *repomocks.MockDistributionRepository
	mockRespondentRepo *repomocks.MockRespondentRepository
	mockCommRepo       *repomocks.MockCommunicationRecordRepository
	mockGateway        *gatewaymocks.MockGateway
	mockScheduler      *schedulermocks.MockClient
	svc                Service
}

func (s *DistributionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repomocks.NewMockDistributionRepository(s.ctrl)
	s.mockRespondentRepo = repomocks.NewMockRespondentRepository(s.ctrl)
	s.mockCommRepo = repomocks.NewMockCommunicationRecordRepository(s.ctrl)
	s.mockGateway = gatewaymocks.NewMockGateway(s.ctrl)
	s.mockScheduler = schedulermocks.NewMockClient(s.ctrl)

	idGenerator := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			return 1, nil
		},
	})

	s.svc = NewService(
		s.mockRepo,
		s.mockRespondentRepo,
		s.mockCommRepo,
		s.mockGateway,
		s.mockScheduler,
		idGenerator,
	)
}

func (s *DistributionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DistributionServiceTestSuite) openDistribution() domain.Distribution {
	return domain.Distribution{
		SurveyID:   1,
		Name:       "客户满意度调研",
		TemplateID: 100,
		Status:     domain.DistributionStatusOpen,
	}
}

func (s *DistributionServiceTestSuite) TestCreate_EmptyRecipients() {
	_, err := s.svc.Create(context.Background(), s.openDistribution(), nil)
	assert.ErrorIs(s.T(), err, errs.ErrInvalidParameter)
}

func (s *DistributionServiceTestSuite) TestCreate_OpenSendsInvitationsImmediately() {
	t := s.T()
	recipients := []string{"a@b.com", "c@d.com"}

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) (domain.Distribution, error) {
			assert.NotZero(t, d.ID)
			return d, nil
		})
	s.mockRespondentRepo.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rs []domain.Respondent) ([]domain.Respondent, error) {
			assert.Len(t, rs, 2)
			for i := range rs {
				assert.Equal(t, domain.ResponseStatusNotTaken, rs[i].ResponseStatus)
			}
			return rs, nil
		})
	s.mockRespondentRepo.EXPECT().
		ListByDistribution(gomock.Any(), gomock.Any(), domain.ResponseStatus("")).
		Return([]domain.Respondent{
			{ID: 1, Address: "a@b.com"},
			{ID: 2, Address: "c@d.com"},
		}, nil)
	s.mockGateway.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return([]domain.RecipientOutcome{
			{Address: "a@b.com", Outcome: domain.DeliveryOutcomeDelivered},
			{Address: "c@d.com", Outcome: domain.DeliveryOutcomeBounced},
		}, nil)
	s.mockCommRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.CommunicationRecord) (domain.CommunicationRecord, error) {
			assert.Equal(t, domain.CommunicationKindInvitation, record.Kind)
			assert.Equal(t, 2, record.RecipientCount)
			assert.Equal(t, 1, record.DeliveredCount())
			return record, nil
		})
	s.mockRespondentRepo.EXPECT().
		MarkSent(gomock.Any(), gomock.Any(), []uint64{1}, gomock.Any()).
		Return(nil)
	s.mockRepo.EXPECT().
		UpdateCounters(gomock.Any(), gomock.Any(), domain.Counters{InvitationsSent: 1}).
		Return(nil)

	created, err := s.svc.Create(context.Background(), s.openDistribution(), recipients)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Counters.InvitationsSent)
}

func (s *DistributionServiceTestSuite) TestCreate_ScheduledRegistersJob() {
	t := s.T()
	at := time.Now().Add(time.Hour)
	d := s.openDistribution()
	d.Status = domain.DistributionStatusScheduled
	d.ScheduledTime = at

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) (domain.Distribution, error) {
			return d, nil
		})
	s.mockRespondentRepo.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rs []domain.Respondent) ([]domain.Respondent, error) {
			return rs, nil
		})
	s.mockScheduler.EXPECT().
		Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("job-1", nil)
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) error {
			assert.Equal(t, "job-1", d.ScheduledJobHandle)
			assert.Equal(t, domain.DistributionStatusScheduled, d.Status)
			return nil
		})

	created, err := s.svc.Create(context.Background(), d, []string{"a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "job-1", created.ScheduledJobHandle)
}

func (s *DistributionServiceTestSuite) TestCreate_ScheduleFailureFallsBackToScanner() {
	d := s.openDistribution()
	d.Status = domain.DistributionStatusScheduled
	d.ScheduledTime = time.Now().Add(time.Hour)

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) (domain.Distribution, error) {
			return d, nil
		})
	s.mockRespondentRepo.EXPECT().
		BatchCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rs []domain.Respondent) ([]domain.Respondent, error) {
			return rs, nil
		})
	s.mockScheduler.EXPECT().
		Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("调度器不可用"))

	// 任务挂失败不是创建失败，激活扫描会兜底
	created, err := s.svc.Create(context.Background(), d, []string{"a@b.com"})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), created.ScheduledJobHandle)
}

func (s *DistributionServiceTestSuite) TestActivate_AlreadyOpenIsNoop() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusOpen}, nil)

	err := s.svc.Activate(context.Background(), 1)
	assert.NoError(s.T(), err)
}

func (s *DistributionServiceTestSuite) TestActivate_ClosedIsRejected() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusClosed}, nil)

	err := s.svc.Activate(context.Background(), 1)
	assert.ErrorIs(s.T(), err, errs.ErrInvalidTransition)
}

func (s *DistributionServiceTestSuite) TestActivate_NotFoundSurfaced() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(404)).
		Return(domain.Distribution{}, errs.ErrDistributionNotFound)

	err := s.svc.Activate(context.Background(), 404)
	assert.ErrorIs(s.T(), err, errs.ErrDistributionNotFound)
}

func (s *DistributionServiceTestSuite) TestActivate_ClearsHandleInSameCAS() {
	t := s.T()
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{
			ID:                 1,
			Status:             domain.DistributionStatusScheduled,
			ScheduledJobHandle: "job-1",
			Version:            3,
		}, nil)
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) error {
			// 状态翻转和句柄清空必须在同一次原子更新里
			assert.Equal(t, domain.DistributionStatusOpen, d.Status)
			assert.Empty(t, d.ScheduledJobHandle)
			assert.Equal(t, 3, d.Version)
			return nil
		})
	s.mockRespondentRepo.EXPECT().
		ListByDistribution(gomock.Any(), uint64(1), domain.ResponseStatus("")).
		Return(nil, nil)

	err := s.svc.Activate(context.Background(), 1)
	require.NoError(t, err)
}

// 并发激活同一个投放，邀请批量只能发出一次
func (s *DistributionServiceTestSuite) TestActivate_ConcurrentSingleWinner() {
	t := s.T()
	const goroutines = 8

	scheduled := domain.Distribution{
		ID:      1,
		Status:  domain.DistributionStatusScheduled,
		Version: 1,
	}
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(scheduled, nil).
		Times(goroutines)

	var mu sync.Mutex
	won := false
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Distribution) error {
			mu.Lock()
			defer mu.Unlock()
			if won {
				return errs.ErrDistributionVersionMismatch
			}
			won = true
			return nil
		}).
		Times(goroutines)

	// 赢家恰好触发一次邀请发送
	s.mockRespondentRepo.EXPECT().
		ListByDistribution(gomock.Any(), uint64(1), domain.ResponseStatus("")).
		Return([]domain.Respondent{{ID: 1, Address: "a@b.com"}}, nil).
		Times(1)
	s.mockGateway.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return([]domain.RecipientOutcome{
			{Address: "a@b.com", Outcome: domain.DeliveryOutcomeDelivered},
		}, nil).
		Times(1)
	s.mockCommRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.CommunicationRecord) (domain.CommunicationRecord, error) {
			return record, nil
		}).
		Times(1)
	s.mockRespondentRepo.EXPECT().
		MarkSent(gomock.Any(), uint64(1), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	s.mockRepo.EXPECT().
		UpdateCounters(gomock.Any(), uint64(1), gomock.Any()).
		Return(nil).
		Times(1)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.svc.Activate(context.Background(), 1))
		}()
	}
	wg.Wait()
}

func (s *DistributionServiceTestSuite) TestActivate_SendFailureKeepsOpen() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusScheduled}, nil)
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockRespondentRepo.EXPECT().
		ListByDistribution(gomock.Any(), uint64(1), domain.ResponseStatus("")).
		Return(nil, errors.New("数据库超时"))

	// 发送失败不回滚状态，投放保持 Open
	err := s.svc.Activate(context.Background(), 1)
	assert.NoError(s.T(), err)
}

func (s *DistributionServiceTestSuite) TestClose_FromOpen() {
	t := s.T()
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{
			ID:     1,
			Status: domain.DistributionStatusOpen,
			ReminderConfigs: []domain.ReminderConfig{
				{ThresholdDays: 3, NextExecutionTime: time.Now().Add(time.Hour)},
			},
		}, nil)
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) error {
			assert.Equal(t, domain.DistributionStatusClosed, d.Status)
			return nil
		})

	require.NoError(t, s.svc.Close(context.Background(), 1))
}

func (s *DistributionServiceTestSuite) TestClose_FromScheduledRejected() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusScheduled}, nil)

	err := s.svc.Close(context.Background(), 1)
	assert.ErrorIs(s.T(), err, errs.ErrInvalidTransition)
}

func (s *DistributionServiceTestSuite) TestReopen_FromClosed() {
	t := s.T()
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusClosed}, nil)
	s.mockRepo.EXPECT().
		CASTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) error {
			assert.Equal(t, domain.DistributionStatusOpen, d.Status)
			return nil
		})

	require.NoError(t, s.svc.Reopen(context.Background(), 1))
}

// 两种非法 Reopen 的报错文案必须可区分
func (s *DistributionServiceTestSuite) TestReopen_DistinctErrorMessages() {
	t := s.T()

	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusOpen}, nil)
	errOpen := s.svc.Reopen(context.Background(), 1)
	require.ErrorIs(t, errOpen, errs.ErrInvalidTransition)

	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(2)).
		Return(domain.Distribution{ID: 2, Status: domain.DistributionStatusScheduled}, nil)
	errScheduled := s.svc.Reopen(context.Background(), 2)
	require.ErrorIs(t, errScheduled, errs.ErrInvalidTransition)

	assert.NotEqual(t, errOpen.Error(), errScheduled.Error())
	assert.Contains(t, errOpen.Error(), "已处于开放状态")
	assert.Contains(t, errScheduled.Error(), "尚未激活")
}

func (s *DistributionServiceTestSuite) TestDelete_CancelsScheduledJob() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{
			ID:                 1,
			Status:             domain.DistributionStatusScheduled,
			ScheduledJobHandle: "job-1",
		}, nil)
	s.mockScheduler.EXPECT().
		Cancel(gomock.Any(), "job-1").
		Return(nil)
	s.mockRepo.EXPECT().
		DeleteCascade(gomock.Any(), uint64(1)).
		Return(nil)

	require.NoError(s.T(), s.svc.Delete(context.Background(), 1))
}

func (s *DistributionServiceTestSuite) TestDelete_CancelFailureDoesNotAbort() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{
			ID:                 1,
			Status:             domain.DistributionStatusScheduled,
			ScheduledJobHandle: "job-1",
		}, nil)
	s.mockScheduler.EXPECT().
		Cancel(gomock.Any(), "job-1").
		Return(errs.ErrSchedulerCancellation)
	s.mockRepo.EXPECT().
		DeleteCascade(gomock.Any(), uint64(1)).
		Return(nil)

	// 取消失败只告警，删除照常进行
	require.NoError(s.T(), s.svc.Delete(context.Background(), 1))
}

func (s *DistributionServiceTestSuite) TestDelete_NoJobNoCancel() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusOpen}, nil)
	s.mockRepo.EXPECT().
		DeleteCascade(gomock.Any(), uint64(1)).
		Return(nil)

	require.NoError(s.T(), s.svc.Delete(context.Background(), 1))
}

func (s *DistributionServiceTestSuite) TestDelete_TransactionFailureSurfaced() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusOpen}, nil)
	s.mockRepo.EXPECT().
		DeleteCascade(gomock.Any(), uint64(1)).
		Return(errs.ErrTransactionFailure)

	err := s.svc.Delete(context.Background(), 1)
	assert.ErrorIs(s.T(), err, errs.ErrTransactionFailure)
}

func (s *DistributionServiceTestSuite) TestReportedCounters_ScheduledProjectsZero() {
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{
			ID:       1,
			Status:   domain.DistributionStatusScheduled,
			Counters: domain.Counters{InvitationsSent: 10, CompletedCount: 3},
		}, nil)

	counters, err := s.svc.ReportedCounters(context.Background(), 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.Counters{}, counters)
}

func (s *DistributionServiceTestSuite) TestAddReminderConfig() {
	t := s.T()
	s.mockRepo.EXPECT().
		GetByID(gomock.Any(), uint64(1)).
		Return(domain.Distribution{ID: 1, Status: domain.DistributionStatusOpen}, nil)
	s.mockRepo.EXPECT().
		CASReminderConfigs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.Distribution) error {
			require.Len(t, d.ReminderConfigs, 1)
			cfg := d.ReminderConfigs[0]
			assert.Equal(t, 3, cfg.ThresholdDays)
			assert.Equal(t, int64(200), cfg.TemplateID)
			// 首次执行时间在一个阈值周期之后
			expected := time.Now().Add(3 * 24 * time.Hour)
			assert.WithinDuration(t, expected, cfg.NextExecutionTime, time.Minute)
			return nil
		})

	require.NoError(t, s.svc.AddReminderConfig(context.Background(), 1, 3, 200))
}

func (s *DistributionServiceTestSuite) TestAddReminderConfig_InvalidThreshold() {
	err := s.svc.AddReminderConfig(context.Background(), 1, 0, 200)
	assert.ErrorIs(s.T(), err, errs.ErrInvalidParameter)
}

func (s *DistributionServiceTestSuite) TestUpdateResponseStatus_InvalidStatus() {
	err := s.svc.UpdateResponseStatus(context.Background(), 1, 2, "UNKNOWN")
	assert.ErrorIs(s.T(), err, errs.ErrInvalidParameter)
}
