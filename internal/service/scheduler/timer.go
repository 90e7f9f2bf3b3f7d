package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"

	"github.com/gotomicro/ego/core/elog"
)

const defaultCallbackTimeout = time.Second * 30

// TimerScheduler 进程内定时器实现
// 单实例部署时用它，生产多实例部署时换成外部任务调度平台的适配器。
// 回调触发后任务即被移除，进程重启会丢任务，
// 丢掉的激活由激活扫描兜底，所以语义上仍然满足 at-least-once
type TimerScheduler struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	callback Callback
	nextSeq  uint64
	logger   *elog.Component
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[string]*time.Timer),
		logger: elog.DefaultLogger,
	}
}

// Register 注册激活回调
// 调用方在启动阶段注册，注册前触发的任务只会打日志
func (s *TimerScheduler) Register(cb Callback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callback = cb
}

func (s *TimerScheduler) Schedule(_ context.Context, at time.Time, distributionID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	handle := fmt.Sprintf("%d-%d", distributionID, s.nextSeq)

	s.timers[handle] = time.AfterFunc(time.Until(at), func() {
		s.fire(handle, distributionID)
	})
	return handle, nil
}

func (s *TimerScheduler) Cancel(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[handle]
	if !ok {
		return fmt.Errorf("%w: handle=%s", errs.ErrJobNotFound, handle)
	}
	timer.Stop()
	delete(s.timers, handle)
	return nil
}

func (s *TimerScheduler) fire(handle string, distributionID uint64) {
	s.mu.Lock()
	delete(s.timers, handle)
	cb := s.callback
	s.mu.Unlock()

	if cb == nil {
		s.logger.Warn("激活回调未注册，任务空转",
			elog.String("handle", handle),
			elog.Any("distributionID", distributionID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultCallbackTimeout)
	defer cancel()
	cb(ctx, distributionID)
}
