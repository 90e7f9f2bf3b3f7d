package distribution

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// Delete 级联删除投放
// 受访者、发送记录、内嵌的提醒配置和投放本体在一个事务里删除，
// 半途失败整体回滚，调用方看不到部分删除的状态。
// 定时任务的取消是尽力而为：取消失败只告警，
// 漏网的回调触发时会因为查不到投放而被吸收
func (s *service) Delete(ctx context.Context, id uint64) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if d.ScheduledJobHandle != "" {
		if err = s.scheduler.Cancel(ctx, d.ScheduledJobHandle); err != nil {
			s.logger.Warn("取消定时任务失败，删除继续",
				elog.Any("distributionID", id),
				elog.String("handle", d.ScheduledJobHandle),
				elog.FieldErr(err))
		}
	}

	if err = s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.logger.Info("投放已删除",
		elog.Any("distributionID", id),
		elog.String("status", d.Status.String()))
	return nil
}
