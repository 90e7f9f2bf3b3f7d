package activation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"
	"gitee.com/flycash/survey-platform/internal/pkg/idempotent"
	"gitee.com/flycash/survey-platform/internal/pkg/loopjob"
	"gitee.com/flycash/survey-platform/internal/repository"
	distributionsvc "gitee.com/flycash/survey-platform/internal/service/distribution"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const (
	defaultBatchSize = 50
	defaultSleepTime = time.Second * 10
	scanTimeout      = time.Second * 3
)

// Task 定时投放的激活扫描
// 两条触发路径汇聚到同一个幂等入口：
// 固定间隔的兜底扫描，和调度器在精确时刻的回调
type Task struct {
	dclient     dlock.Client
	repo        repository.DistributionRepository
	svc         distributionsvc.Service
	idempotency idempotent.IdempotencyService
	batchSize   int
	sleepTime   time.Duration
	logger      *elog.Component
}

func NewTask(
	dclient dlock.Client,
	repo repository.DistributionRepository,
	svc distributionsvc.Service,
	idempotency idempotent.IdempotencyService,
) *Task {
	return &Task{
		dclient:     dclient,
		repo:        repo,
		svc:         svc,
		idempotency: idempotency,
		batchSize:   defaultBatchSize,
		sleepTime:   defaultSleepTime,
		logger:      elog.DefaultLogger,
	}
}

func (t *Task) Start(ctx context.Context) {
	const key = "survey_platform_scheduled_activation"
	lj := loopjob.NewInfiniteLoop(t.dclient, t.Scan, key)
	lj.Run(ctx)
}

// Scan 激活一批已到时间的定时投放
// 单个投放的失败只记录，不影响本批其余投放
func (t *Task) Scan(ctx context.Context) error {
	scanCtx, cancel := context.WithTimeout(ctx, scanTimeout)
	due, err := t.repo.FindDueScheduled(scanCtx, time.Now(), 0, t.batchSize)
	cancel()
	if err != nil {
		return err
	}

	for i := range due {
		t.activate(ctx, due[i].ID)
	}

	// 到期的不多，可以休息一下
	if len(due) < t.batchSize {
		time.Sleep(t.sleepTime)
	}
	return nil
}

// OnScheduledCallback 调度器回调入口
// at-least-once 语义下重复回调先走 redis 快路径吸收，
// redis 不可用时退化为直接走状态机CAS
func (t *Task) OnScheduledCallback(ctx context.Context, distributionID uint64) {
	first, err := t.idempotency.MarkExecuted(ctx, callbackKey(distributionID))
	if err != nil {
		t.logger.Warn("幂等标记失败，降级到CAS兜底",
			elog.Any("distributionID", distributionID),
			elog.FieldErr(err))
	} else if !first {
		t.logger.Debug("吸收重复的调度回调", elog.Any("distributionID", distributionID))
		return
	}
	t.activate(ctx, distributionID)
}

func (t *Task) activate(ctx context.Context, distributionID uint64) {
	err := t.svc.Activate(ctx, distributionID)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrDistributionNotFound):
		// 投放已被删除，漏网回调的设计出口
		t.logger.Debug("投放不存在，吸收激活触发", elog.Any("distributionID", distributionID))
	default:
		t.logger.Error("激活投放失败",
			elog.Any("distributionID", distributionID),
			elog.FieldErr(err))
	}
}

func callbackKey(distributionID uint64) string {
	return fmt.Sprintf("activation:%d", distributionID)
}
