//go:build wireinject

package ioc

import (
	"gitee.com/flycash/survey-platform/internal/ioc"
	"gitee.com/flycash/survey-platform/internal/repository"
	"gitee.com/flycash/survey-platform/internal/repository/cache/local"
	"gitee.com/flycash/survey-platform/internal/repository/dao"
	"gitee.com/flycash/survey-platform/internal/service/activation"
	distributionsvc "gitee.com/flycash/survey-platform/internal/service/distribution"
	"gitee.com/flycash/survey-platform/internal/service/reminder"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitDistributedLock,
		ioc.InitIDGenerator,
		ioc.InitGoCache,
		ioc.InitGateway,
		ioc.InitIdempotencyService,
		ioc.InitReminderSemaphore,
		ioc.InitScheduler,
		ioc.InitSchedulerClient,

		local.NewCache,
	)
	distributionSvcSet = wire.NewSet(
		distributionsvc.NewService,
		repository.NewDistributionRepository,
		repository.NewRespondentRepository,
		repository.NewCommunicationRecordRepository,
		dao.NewDistributionDAO,
		dao.NewRespondentDAO,
		dao.NewCommunicationRecordDAO,
	)
	taskSet = wire.NewSet(
		activation.NewTask,
		reminder.NewSender,
		reminder.NewScanTask,
		ioc.InitTasks,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 投放服务
		distributionSvcSet,

		// 后台任务
		taskSet,

		wire.Struct(new(ioc.App), "*"),
	)

	return new(ioc.App)
}
