package domain

import (
	"testing"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_ValidateTransition(t *testing.T) {
	t.Parallel()

	statuses := []DistributionStatus{
		DistributionStatusScheduled,
		DistributionStatusOpen,
		DistributionStatusClosed,
	}
	legal := map[[2]DistributionStatus]bool{
		{DistributionStatusScheduled, DistributionStatusOpen}: true,
		{DistributionStatusOpen, DistributionStatusClosed}:    true,
		{DistributionStatusClosed, DistributionStatusOpen}:    true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			d := Distribution{Status: from}
			err := d.ValidateTransition(to)
			if legal[[2]DistributionStatus{from, to}] {
				assert.NoError(t, err, "%s -> %s 应当合法", from, to)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s 应当非法", from, to)
			}
		}
	}
}

func TestDistribution_ReportedCounters(t *testing.T) {
	t.Parallel()

	counters := Counters{
		InvitationsSent: 100,
		InProgressCount: 30,
		CompletedCount:  20,
	}

	testCases := []struct {
		name     string
		status   DistributionStatus
		expected Counters
	}{
		{
			name:     "定时状态一律展示零值",
			status:   DistributionStatusScheduled,
			expected: Counters{},
		},
		{
			name:     "开放状态展示真实值",
			status:   DistributionStatusOpen,
			expected: counters,
		},
		{
			name:     "关闭状态展示真实值",
			status:   DistributionStatusClosed,
			expected: counters,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := Distribution{Status: tc.status, Counters: counters}
			assert.Equal(t, tc.expected, d.ReportedCounters())
		})
	}
}

func TestDistribution_NextReminderTime(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	d := Distribution{}
	assert.True(t, d.NextReminderTime().IsZero())

	d.ReminderConfigs = []ReminderConfig{
		{ThresholdDays: 3, NextExecutionTime: t2},
		{ThresholdDays: 1, NextExecutionTime: t1},
	}
	assert.Equal(t, t1, d.NextReminderTime())
}

func TestReminderConfig_Advance(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cfg := ReminderConfig{ThresholdDays: 3, NextExecutionTime: now.Add(-time.Hour)}

	assert.True(t, cfg.Due(now))
	cfg.Advance(now)
	assert.False(t, cfg.Due(now))
	assert.Equal(t, now.Add(3*24*time.Hour), cfg.NextExecutionTime)
}

func TestDistribution_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Distribution {
		return Distribution{
			SurveyID:   1,
			Name:       "客户满意度调研",
			TemplateID: 100,
			Status:     DistributionStatusOpen,
		}
	}

	testCases := []struct {
		name    string
		mutate  func(d *Distribution)
		wantErr error
	}{
		{
			name:   "合法的立即投放",
			mutate: func(*Distribution) {},
		},
		{
			name: "合法的定时投放",
			mutate: func(d *Distribution) {
				d.Status = DistributionStatusScheduled
				d.ScheduledTime = time.Now().Add(time.Hour)
			},
		},
		{
			name:    "缺少问卷ID",
			mutate:  func(d *Distribution) { d.SurveyID = 0 },
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "缺少名称",
			mutate:  func(d *Distribution) { d.Name = "" },
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "缺少模板",
			mutate:  func(d *Distribution) { d.TemplateID = 0 },
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "初始状态不能是关闭",
			mutate:  func(d *Distribution) { d.Status = DistributionStatusClosed },
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "定时投放缺少激活时间",
			mutate:  func(d *Distribution) { d.Status = DistributionStatusScheduled },
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name: "提醒阈值必须为正",
			mutate: func(d *Distribution) {
				d.ReminderConfigs = []ReminderConfig{{ThresholdDays: 0}}
			},
			wantErr: errs.ErrInvalidParameter,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := valid()
			tc.mutate(&d)
			err := d.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRespondent_EligibleForReminder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	const thresholdDays = 3

	testCases := []struct {
		name     string
		r        Respondent
		expected bool
	}{
		{
			name: "未开始且长期不活跃",
			r: Respondent{
				ResponseStatus: ResponseStatusNotTaken,
				LastModified:   now.Add(-4 * 24 * time.Hour),
			},
			expected: true,
		},
		{
			name: "答题中且长期不活跃",
			r: Respondent{
				ResponseStatus: ResponseStatusInProgress,
				LastModified:   now.Add(-5 * 24 * time.Hour),
			},
			expected: true,
		},
		{
			name: "已完成的不提醒",
			r: Respondent{
				ResponseStatus: ResponseStatusCompleted,
				LastModified:   now.Add(-10 * 24 * time.Hour),
			},
			expected: false,
		},
		{
			name: "窗口内有活动的不提醒",
			r: Respondent{
				ResponseStatus: ResponseStatusInProgress,
				LastModified:   now.Add(-2 * 24 * time.Hour),
			},
			expected: false,
		},
		{
			name: "软删除的不提醒",
			r: Respondent{
				ResponseStatus: ResponseStatusNotTaken,
				LastModified:   now.Add(-10 * 24 * time.Hour),
				SoftDeleted:    true,
			},
			expected: false,
		},
		{
			name: "恰好在阈值边界上的不提醒",
			r: Respondent{
				ResponseStatus: ResponseStatusNotTaken,
				LastModified:   now.Add(-thresholdDays * 24 * time.Hour),
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.r.EligibleForReminder(now, thresholdDays))
		})
	}
}

func TestCommunicationRecord_DeliveredCount(t *testing.T) {
	t.Parallel()

	record := CommunicationRecord{
		Outcomes: []RecipientOutcome{
			{Address: "a@b.com", Outcome: DeliveryOutcomeDelivered},
			{Address: "c@d.com", Outcome: DeliveryOutcomeBounced},
			{Address: "e@f.com", Outcome: DeliveryOutcomeFailed, ErrorDetail: "gateway timeout"},
			{Address: "g@h.com", Outcome: DeliveryOutcomeDelivered},
		},
	}
	assert.Equal(t, 2, record.DeliveredCount())
}
