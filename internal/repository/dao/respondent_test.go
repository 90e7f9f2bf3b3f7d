//go:build e2e

package dao

import (
	"context"
	"testing"
	"time"

	"gitee.com/flycash/survey-platform/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	testioc "gitee.com/flycash/survey-platform/internal/test/ioc"
)

func TestRespondentDAOSuite(t *testing.T) {
	suite.Run(t, new(RespondentDAOTestSuite))
}

type RespondentDAOTestSuite struct {
	suite.Suite
	db              *gorm.DB
	dao             RespondentDAO
	distributionDAO DistributionDAO
}

func (s *RespondentDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := s.db.AutoMigrate(&Distribution{}, &Respondent{})
	s.NoError(err)
	s.dao = NewRespondentDAO(s.db)
	s.distributionDAO = NewDistributionDAO(s.db)
}

func (s *RespondentDAOTestSuite) TearDownTest() {
	s.db.Exec("TRUNCATE TABLE `distributions`")
	s.db.Exec("TRUNCATE TABLE `respondents`")
}

func (s *RespondentDAOTestSuite) createDistribution(id uint64) {
	_, err := s.distributionDAO.Create(context.Background(), Distribution{
		ID:         id,
		SurveyID:   1,
		Name:       "客户满意度调研",
		TemplateID: 100,
		Status:     "OPEN",
	})
	s.Require().NoError(err)
}

func (s *RespondentDAOTestSuite) TestBatchCreateAndList() {
	t := s.T()
	ctx := context.Background()
	s.createDistribution(1)

	created, err := s.dao.BatchCreate(ctx, []Respondent{
		{DistributionID: 1, Address: "a@b.com", ResponseStatus: "NOT_TAKEN"},
		{DistributionID: 1, Address: "c@d.com", ResponseStatus: "NOT_TAKEN"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	all, err := s.dao.ListByDistribution(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	notTaken, err := s.dao.ListByDistribution(ctx, 1, "NOT_TAKEN")
	require.NoError(t, err)
	assert.Len(t, notTaken, 2)

	completed, err := s.dao.ListByDistribution(ctx, 1, "COMPLETED")
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func (s *RespondentDAOTestSuite) TestFindEligibleForReminder() {
	t := s.T()
	ctx := context.Background()
	s.createDistribution(1)

	now := time.Now().UnixMilli()
	stale := now - 4*24*3600*1000
	fresh := now - 1*3600*1000

	respondents := []Respondent{
		{DistributionID: 1, Address: "stale@b.com", ResponseStatus: "NOT_TAKEN"},
		{DistributionID: 1, Address: "fresh@b.com", ResponseStatus: "NOT_TAKEN"},
		{DistributionID: 1, Address: "done@b.com", ResponseStatus: "COMPLETED"},
		{DistributionID: 1, Address: "deleted@b.com", ResponseStatus: "NOT_TAKEN", SoftDeleted: true},
	}
	_, err := s.dao.BatchCreate(ctx, respondents)
	require.NoError(t, err)

	// BatchCreate 把 last_modified 设成当下，按地址改回去
	s.db.Model(&Respondent{}).Where("address IN ?", []string{"stale@b.com", "done@b.com", "deleted@b.com"}).
		Update("last_modified", stale)
	s.db.Model(&Respondent{}).Where("address = ?", "fresh@b.com").
		Update("last_modified", fresh)

	cutoff := now - 3*24*3600*1000
	eligible, err := s.dao.FindEligibleForReminder(ctx, 1, cutoff)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "stale@b.com", eligible[0].Address)
}

func (s *RespondentDAOTestSuite) TestMarkSent() {
	t := s.T()
	ctx := context.Background()
	s.createDistribution(1)

	created, err := s.dao.BatchCreate(ctx, []Respondent{
		{DistributionID: 1, Address: "a@b.com", ResponseStatus: "NOT_TAKEN"},
	})
	require.NoError(t, err)

	sentAt := time.Now().UnixMilli()
	require.NoError(t, s.dao.MarkSent(ctx, 1, []uint64{created[0].ID}, sentAt))
	require.NoError(t, s.dao.MarkSent(ctx, 1, []uint64{created[0].ID}, sentAt))

	found, err := s.dao.GetByID(ctx, 1, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.SendCount)
	assert.Equal(t, sentAt, found.LastSentAt)

	// 空列表是no-op
	require.NoError(t, s.dao.MarkSent(ctx, 1, nil, sentAt))
}

func (s *RespondentDAOTestSuite) TestUpdateResponseStatus_MaintainsCounters() {
	t := s.T()
	ctx := context.Background()
	s.createDistribution(1)

	created, err := s.dao.BatchCreate(ctx, []Respondent{
		{DistributionID: 1, Address: "a@b.com", ResponseStatus: "NOT_TAKEN"},
	})
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, s.dao.UpdateResponseStatus(ctx, 1, id, "IN_PROGRESS"))
	d, err := s.distributionDAO.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.InProgressCount)
	assert.Equal(t, int64(0), d.CompletedCount)

	// 答题中到已完成，两个计数器一起动
	require.NoError(t, s.dao.UpdateResponseStatus(ctx, 1, id, "COMPLETED"))
	d, err = s.distributionDAO.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), d.InProgressCount)
	assert.Equal(t, int64(1), d.CompletedCount)

	// 状态不变是no-op
	require.NoError(t, s.dao.UpdateResponseStatus(ctx, 1, id, "COMPLETED"))
	d, err = s.distributionDAO.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.CompletedCount)
}

func (s *RespondentDAOTestSuite) TestSoftDelete() {
	t := s.T()
	ctx := context.Background()
	s.createDistribution(1)
	require.NoError(t, s.distributionDAO.UpdateCounters(ctx, 1, 2, 0, 0))

	created, err := s.dao.BatchCreate(ctx, []Respondent{
		{DistributionID: 1, Address: "a@b.com", ResponseStatus: "NOT_TAKEN"},
		{DistributionID: 1, Address: "c@d.com", ResponseStatus: "NOT_TAKEN"},
	})
	require.NoError(t, err)

	require.NoError(t, s.dao.SoftDelete(ctx, 1, created[0].ID))

	// 软删之后所有核心查询都看不到它
	_, err = s.dao.GetByID(ctx, 1, created[0].ID)
	assert.ErrorIs(t, err, errs.ErrRespondentNotFound)
	all, err := s.dao.ListByDistribution(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// invitations_sent 同步扣减
	d, err := s.distributionDAO.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.InvitationsSent)

	// 重复软删按不存在处理，计数器不会二次扣减
	err = s.dao.SoftDelete(ctx, 1, created[0].ID)
	assert.ErrorIs(t, err, errs.ErrRespondentNotFound)
}
