package reminder

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	"gitee.com/flycash/survey-platform/internal/repository"
	"gitee.com/flycash/survey-platform/internal/service/gateway"

	"github.com/gotomicro/ego/core/elog"
)

// Sender 提醒发送者
// 对一个投放的一条提醒配置执行一次发送：
// 筛出目标人群，调网关，落一条审计记录，更新发送簿记
type Sender struct {
	respondentRepo repository.RespondentRepository
	commRepo       repository.CommunicationRecordRepository
	gateway        gateway.Gateway
	logger         *elog.Component
}

func NewSender(
	respondentRepo repository.RespondentRepository,
	commRepo repository.CommunicationRecordRepository,
	gw gateway.Gateway,
) *Sender {
	return &Sender{
		respondentRepo: respondentRepo,
		commRepo:       commRepo,
		gateway:        gw,
		logger:         elog.DefaultLogger,
	}
}

// Send 执行一次提醒发送
// 目标人群为空时不发送也不落审计记录
func (s *Sender) Send(ctx context.Context, d domain.Distribution, cfg domain.ReminderConfig) error {
	now := time.Now()
	cutoff := now.Add(-time.Duration(cfg.ThresholdDays) * 24 * time.Hour)
	eligible, err := s.respondentRepo.FindEligibleForReminder(ctx, d.ID, cutoff)
	if err != nil {
		return fmt.Errorf("%w: 筛选目标人群失败: %w", errs.ErrSendReminderFailed, err)
	}
	if len(eligible) == 0 {
		s.logger.Debug("无符合提醒条件的受访者",
			elog.Any("distributionID", d.ID),
			elog.Any("thresholdDays", cfg.ThresholdDays))
		return nil
	}

	messages := make([]gateway.Message, 0, len(eligible))
	for i := range eligible {
		messages = append(messages, gateway.Message{
			Address: eligible[i].Address,
			Content: renderReminder(d, cfg),
		})
	}
	outcomes, err := s.gateway.Send(ctx, messages)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSendReminderFailed, err)
	}

	record := domain.CommunicationRecord{
		DistributionID: d.ID,
		Kind:           domain.CommunicationKindReminder,
		RecipientCount: len(eligible),
		Outcomes:       outcomes,
	}
	if _, err = s.commRepo.Create(ctx, record); err != nil {
		// 审计记录写失败不回滚发送，只记录
		s.logger.Error("写入提醒审计记录失败",
			elog.Any("distributionID", d.ID),
			elog.FieldErr(err))
	}

	// 发送簿记只统计实际送达的受访者，失败的等下个周期重筛
	delivered := deliveredIDs(eligible, outcomes)
	if err = s.respondentRepo.MarkSent(ctx, d.ID, delivered, now); err != nil {
		s.logger.Warn("更新受访者发送簿记失败",
			elog.Any("distributionID", d.ID),
			elog.FieldErr(err))
	}

	s.logger.Info("提醒发送完成",
		elog.Any("distributionID", d.ID),
		elog.Any("templateID", cfg.TemplateID),
		elog.Any("recipientCount", len(eligible)),
		elog.Any("deliveredCount", len(delivered)))
	return nil
}

// renderReminder 渲染提醒正文
func renderReminder(d domain.Distribution, cfg domain.ReminderConfig) string {
	return fmt.Sprintf("问卷「%s」还在等您作答（模板 %d）", d.Name, cfg.TemplateID)
}

// deliveredIDs 按地址比对出实际送达的受访者ID
func deliveredIDs(respondents []domain.Respondent, outcomes []domain.RecipientOutcome) []uint64 {
	deliveredAddrs := make(map[string]struct{}, len(outcomes))
	for i := range outcomes {
		if outcomes[i].Outcome == domain.DeliveryOutcomeDelivered {
			deliveredAddrs[outcomes[i].Address] = struct{}{}
		}
	}
	ids := make([]uint64, 0, len(deliveredAddrs))
	for i := range respondents {
		if _, ok := deliveredAddrs[respondents[i].Address]; ok {
			ids = append(ids, respondents[i].ID)
		}
	}
	return ids
}
