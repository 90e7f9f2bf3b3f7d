package ioc

import (
	"context"
	"time"

	"gitee.com/flycash/survey-platform/internal/pkg/idempotent"
	"gitee.com/flycash/survey-platform/internal/pkg/loopjob"
	"gitee.com/flycash/survey-platform/internal/service/activation"
	"gitee.com/flycash/survey-platform/internal/service/reminder"
	"gitee.com/flycash/survey-platform/internal/service/scheduler"
	"github.com/redis/go-redis/v9"
)

const (
	activationKeyPrefix = "survey:activation"
	activationMarkTTL   = time.Hour * 24
	maxReminderSenders  = 8
)

type Task interface {
	Start(ctx context.Context)
}

func InitIdempotencyService(rdb *redis.Client) idempotent.IdempotencyService {
	return idempotent.NewRedisIdempotencyService(rdb, activationKeyPrefix, activationMarkTTL)
}

func InitReminderSemaphore() loopjob.ResourceSemaphore {
	return loopjob.NewResourceSemaphore(maxReminderSenders)
}

func InitScheduler() *scheduler.TimerScheduler {
	return scheduler.NewTimerScheduler()
}

func InitSchedulerClient(timer *scheduler.TimerScheduler) scheduler.Client {
	return timer
}

// InitTasks 汇总后台任务，并把激活回调挂到调度器上
func InitTasks(
	t1 *activation.Task,
	t2 *reminder.ScanTask,
	timer *scheduler.TimerScheduler,
) []Task {
	timer.Register(t1.OnScheduledCallback)
	return []Task{
		t1,
		t2,
	}
}
