package distribution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"
	"gitee.com/flycash/survey-platform/internal/errs"
	"gitee.com/flycash/survey-platform/internal/service/gateway"

	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	sendBatchSize      = 100
	maxConcurrentSends = 4
)

// sendInvitations 一次投放的唯一一次邀请批量发送
// 分批并发调网关，汇总成一条审计记录，计数器取实际送达数
func (s *service) sendInvitations(ctx context.Context, d domain.Distribution) (domain.Counters, error) {
	respondents, err := s.respondentRepo.ListByDistribution(ctx, d.ID, "")
	if err != nil {
		return domain.Counters{}, fmt.Errorf("%w: %w", errs.ErrSendInvitationFailed, err)
	}
	if len(respondents) == 0 {
		return domain.Counters{}, nil
	}

	outcomes, err := s.dispatchBatches(ctx, d, respondents)
	if err != nil {
		return domain.Counters{}, fmt.Errorf("%w: %w", errs.ErrSendInvitationFailed, err)
	}

	record := domain.CommunicationRecord{
		DistributionID: d.ID,
		Kind:           domain.CommunicationKindInvitation,
		RecipientCount: len(respondents),
		Outcomes:       outcomes,
	}
	if _, err = s.commRepo.Create(ctx, record); err != nil {
		// 审计记录写失败不回滚发送，只记录
		s.logger.Error("写入邀请审计记录失败",
			elog.Any("distributionID", d.ID),
			elog.FieldErr(err))
	}

	delivered := deliveredIDs(respondents, outcomes)
	now := time.Now()
	if err = s.respondentRepo.MarkSent(ctx, d.ID, delivered, now); err != nil {
		s.logger.Warn("更新受访者发送簿记失败",
			elog.Any("distributionID", d.ID),
			elog.FieldErr(err))
	}

	counters := domain.Counters{InvitationsSent: int64(len(delivered))}
	if err = s.repo.UpdateCounters(ctx, d.ID, counters); err != nil {
		return domain.Counters{}, fmt.Errorf("%w: 更新计数器失败: %w", errs.ErrSendInvitationFailed, err)
	}
	return counters, nil
}

// dispatchBatches 分批并发发送，返回全部接收者结果
func (s *service) dispatchBatches(ctx context.Context, d domain.Distribution, respondents []domain.Respondent) ([]domain.RecipientOutcome, error) {
	var mu sync.Mutex
	outcomes := make([]domain.RecipientOutcome, 0, len(respondents))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentSends)
	for start := 0; start < len(respondents); start += sendBatchSize {
		end := start + sendBatchSize
		if end > len(respondents) {
			end = len(respondents)
		}
		batch := respondents[start:end]

		eg.Go(func() error {
			messages := make([]gateway.Message, 0, len(batch))
			for i := range batch {
				messages = append(messages, gateway.Message{
					Address: batch[i].Address,
					Content: renderInvitation(d),
				})
			}
			batchOutcomes, err := s.gateway.Send(egCtx, messages)
			if err != nil {
				return err
			}
			mu.Lock()
			outcomes = append(outcomes, batchOutcomes...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// renderInvitation 渲染邀请正文
// 题型级的渲染不在这一层，这里只拼投放级的内容
func renderInvitation(d domain.Distribution) string {
	return fmt.Sprintf("您收到一份问卷邀请：%s（模板 %d）", d.Name, d.TemplateID)
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
