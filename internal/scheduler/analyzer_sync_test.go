package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/recommending"
	recommendingmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/recommending/mocks"
	"go.uber.org/mock/gomock"
)

func newTestAnalyzer(ctrl *gomock.Controller) (*AnalyzerSyncService, *recommendingmocks.MockRecommender) {
	recommender := recommendingmocks.NewMockRecommender(ctrl)

	service := &AnalyzerSyncService{
		recommender:    recommender,
		timeoutSeconds: 60,
	}

	return service, recommender
}

func TestAnalyzerSyncService_RunAnalysis_WithAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, recommender := newTestAnalyzer(ctrl)

	report := &recommending.AnalysisReport{
		CampaignsAnalyzed: 3,
		ProposalsCreated:  5,
	}
	recommender.EXPECT().AnalyzeAllWithAlerts(gomock.Any()).Return(report, nil)

	service.runAnalysis(true)

	assert.Equal(t, report, service.lastReport)
	assert.False(t, service.lastRunCompletedAt.IsZero())
	assert.NotEmpty(t, service.lastRunID)

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_campaigns_analyzed"])
	assert.Equal(t, 5, status["last_proposals_created"])
}

func TestAnalyzerSyncService_RunAnalysis_AllCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, recommender := newTestAnalyzer(ctrl)

	recommender.EXPECT().AnalyzeAll(gomock.Any()).Return(&recommending.AnalysisReport{}, nil)

	service.runAnalysis(false)

	assert.NotNil(t, service.lastReport)
}

func TestAnalyzerSyncService_RunAnalysis_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, recommender := newTestAnalyzer(ctrl)

	recommender.EXPECT().AnalyzeAll(gomock.Any()).Return(nil, assert.AnError)

	service.runAnalysis(false)

	// Rodada com erro não atualiza o último relatório nem o timestamp
	assert.Nil(t, service.lastReport)
	assert.True(t, service.lastRunCompletedAt.IsZero())

	status := service.GetStatus()
	assert.NotContains(t, status, "last_campaigns_analyzed")
}
