package ioc

import (
	"context"

	"gitee.com/flycash/survey-platform/internal/repository"
	distributionsvc "gitee.com/flycash/survey-platform/internal/service/distribution"
)

type App struct {
	Tasks []Task

	DistributionSvc   distributionsvc.Service
	DistributionRepo  repository.DistributionRepository
	RespondentRepo    repository.RespondentRepository
	CommunicationRepo repository.CommunicationRecordRepository
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		go func(t Task) {
			t.Start(ctx)
		}(t)
	}
}
