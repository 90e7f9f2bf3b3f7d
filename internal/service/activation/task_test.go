package activation

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	repomocks "gitee.com/flycash/survey-platform/internal/repository/mocks"
	distributionmocks "gitee.com/flycash/survey-platform/internal/service/distribution/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestActivationTaskSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ActivationTaskTestSuite))
}

type ActivationTaskTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repomocks.MockDistributionRepository
	mockSvc  *distributionmocks.MockService
	task     *Task
}

func (s *ActivationTaskTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repomocks.NewMockDistributionRepository(s.ctrl)
	s.mockSvc = distributionmocks.NewMockService(s.ctrl)

	s.task = NewTask(nil, s.mockRepo, s.mockSvc, &fakeIdempotency{marks: map[string]bool{}})
	s.task.sleepTime = time.Millisecond
}

func (s *ActivationTaskTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ActivationTaskTestSuite) TestScan_ActivatesDueBatch() {
	due := []domain.Distribution{
		{ID: 1, Status: domain.DistributionStatusScheduled},
		{ID: 2, Status: domain.DistributionStatusScheduled},
	}
	s.mockRepo.EXPECT().
		FindDueScheduled(gomock.Any(), gomock.Any(), 0, defaultBatchSize).
		Return(due, nil)
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(1)).Return(nil)
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(2)).Return(nil)

	require.NoError(s.T(), s.task.Scan(context.Background()))
}

// 单个投放激活失败不中断本批其余投放
func (s *ActivationTaskTestSuite) TestScan_IsolatesItemFailures() {
	due := []domain.Distribution{
		{ID: 1, Status: domain.DistributionStatusScheduled},
		{ID: 2, Status: domain.DistributionStatusScheduled},
		{ID: 3, Status: domain.DistributionStatusScheduled},
	}
	s.mockRepo.EXPECT().
		FindDueScheduled(gomock.Any(), gomock.Any(), 0, defaultBatchSize).
		Return(due, nil)
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(1)).Return(errors.New("数据库超时"))
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(2)).Return(errs.ErrDistributionNotFound)
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(3)).Return(nil)

	require.NoError(s.T(), s.task.Scan(context.Background()))
}

func (s *ActivationTaskTestSuite) TestScan_QueryErrorSurfaced() {
	s.mockRepo.EXPECT().
		FindDueScheduled(gomock.Any(), gomock.Any(), 0, defaultBatchSize).
		Return(nil, errors.New("数据库超时"))

	assert.Error(s.T(), s.task.Scan(context.Background()))
}

func (s *ActivationTaskTestSuite) TestOnScheduledCallback_DuplicateAbsorbed() {
	// 同一个投放的重复回调只触发一次激活
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(1)).Return(nil).Times(1)

	s.task.OnScheduledCallback(context.Background(), 1)
	s.task.OnScheduledCallback(context.Background(), 1)
	s.task.OnScheduledCallback(context.Background(), 1)
}

func (s *ActivationTaskTestSuite) TestOnScheduledCallback_RedisDownFallsBackToCAS() {
	task := NewTask(nil, s.mockRepo, s.mockSvc, &fakeIdempotency{err: errors.New("redis不可用")})

	// 快路径失效时退化为直接激活，幂等由状态机CAS兜底
	s.mockSvc.EXPECT().Activate(gomock.Any(), uint64(1)).Return(nil).Times(2)

	task.OnScheduledCallback(context.Background(), 1)
	task.OnScheduledCallback(context.Background(), 1)
}

func (s *ActivationTaskTestSuite) TestOnScheduledCallback_DeletedDistributionAbsorbed() {
	// 删除后漏网的回调静默吸收
	s.mockSvc.EXPECT().
		Activate(gomock.Any(), uint64(404)).
		Return(errs.ErrDistributionNotFound)

	s.task.OnScheduledCallback(context.Background(), 404)
}

type fakeIdempotency struct {
	marks map[string]bool
	err   error
}

func (f *fakeIdempotency) MarkExecuted(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.marks[key] {
		return false, nil
	}
	f.marks[key] = true
	return true, nil
}

func (f *fakeIdempotency) MarkExecutedBatch(ctx context.Context, keys ...string) ([]bool, error) {
	results := make([]bool, 0, len(keys))
	for _, key := range keys {
		first, err := f.MarkExecuted(ctx, key)
		if err != nil {
			return nil, err
		}
		results = append(results, first)
	}
	return results, nil
}
