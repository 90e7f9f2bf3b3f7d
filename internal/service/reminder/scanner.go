package reminder

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	"gitee.com/flycash/survey-platform/internal/pkg/loopjob"
	"gitee.com/flycash/survey-platform/internal/repository"

	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const (
	defaultBatchSize = 50
	defaultSleepTime = time.Second * 10
	scanTimeout      = time.Second * 3
	dispatchTimeout  = time.Minute
)

// ScanTask 提醒扫描任务
// 扫出存在到期提醒配置的开放投放，先CAS推进下一次执行时间，
// 再把发送派发到后台。推进在发送之前：宁可漏发一次，不能重复轰炸
type ScanTask struct {
	dclient   dlock.Client
	repo      repository.DistributionRepository
	sender    *Sender
	sem       loopjob.ResourceSemaphore
	batchSize int
	sleepTime time.Duration
	logger    *elog.Component
}

func NewScanTask(
	dclient dlock.Client,
	repo repository.DistributionRepository,
	sender *Sender,
	sem loopjob.ResourceSemaphore,
) *ScanTask {
	return &ScanTask{
		dclient:   dclient,
		repo:      repo,
		sender:    sender,
		sem:       sem,
		batchSize: defaultBatchSize,
		sleepTime: defaultSleepTime,
		logger:    elog.DefaultLogger,
	}
}

func (t *ScanTask) Start(ctx context.Context) {
	const key = "survey_platform_reminder_scan"
	lj := loopjob.NewInfiniteLoop(t.dclient, t.Scan, key)
	lj.Run(ctx)
}

func (t *ScanTask) Scan(ctx context.Context) error {
	scanCtx, cancel := context.WithTimeout(ctx, scanTimeout)
	due, err := t.repo.FindDueReminders(scanCtx, time.Now(), 0, t.batchSize)
	cancel()
	if err != nil {
		return err
	}

	for i := range due {
		t.process(ctx, due[i])
	}

	if len(due) < t.batchSize {
		time.Sleep(t.sleepTime)
	}
	return nil
}

// process 处理单个投放的到期提醒
// 发送走后台协程，慢网关不能拖住下一轮扫描
func (t *ScanTask) process(ctx context.Context, d domain.Distribution) {
	now := time.Now()
	dueConfigs := make([]domain.ReminderConfig, 0, len(d.ReminderConfigs))
	for i := range d.ReminderConfigs {
		if d.ReminderConfigs[i].Due(now) {
			// 保留推进前的快照用于发送
			dueConfigs = append(dueConfigs, d.ReminderConfigs[i])
			d.ReminderConfigs[i].Advance(now)
		}
	}
	if len(dueConfigs) == 0 {
		return
	}

	// 先占发送名额再推进，占不到就留给下一轮，避免推进完却发不出去
	if err := t.sem.Acquire(ctx); err != nil {
		t.logger.Warn("提醒发送并发已满，留待下轮",
			elog.Any("distributionID", d.ID))
		return
	}

	if err := t.repo.CASReminderConfigs(ctx, d); err != nil {
		_ = t.sem.Release(ctx)
		if errors.Is(err, errs.ErrDistributionVersionMismatch) {
			// 并发竞争中输掉的一方，赢家已经推进过了
			t.logger.Debug("推进提醒配置版本冲突，吸收",
				elog.Any("distributionID", d.ID))
			return
		}
		t.logger.Error("推进提醒配置失败",
			elog.Any("distributionID", d.ID),
			elog.FieldErr(err))
		return
	}

	go t.dispatch(ctx, d, dueConfigs)
}

// dispatch 在后台执行实际发送
// 发送失败只记录，日程已经推进，下个周期自然重试
func (t *ScanTask) dispatch(ctx context.Context, d domain.Distribution, configs []domain.ReminderConfig) {
	defer func() {
		_ = t.sem.Release(ctx)
	}()
	sendCtx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()
	for i := range configs {
		if err := t.sender.Send(sendCtx, d, configs[i]); err != nil {
			t.logger.Error("发送提醒失败",
				elog.Any("distributionID", d.ID),
				elog.Any("templateID", configs[i].TemplateID),
				elog.FieldErr(err))
		}
	}
}
