package recommending

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	aimocks "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/ai/mocks"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/usecases/trending"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AI{
			Provider:   "gemini",
			MaxRetries: 3,
		},
		Analysis: config.Analysis{
			LookbackDays:       14,
			MaxProposals:       7,
			TargetCTRMin:       2.0,
			TargetCPCMax:       0.60,
			TargetROASMin:      1.5,
			CriticalROASFloor:  1.0,
			OptScoreWarnFloor:  60,
			OptScoreCritFloor:  40,
			BudgetUsedFraction: 0.95,
		},
	}
}

func latestSnapshot(status domain.CampaignStatus) *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		CampaignID:   42,
		CampaignName: "Campanha Teste",
		Status:       status,
		Cost:         50,
		ConvValue:    100,
		Conversions:  5,
		ROAS:         2.0,
	}
}

type serviceMocks struct {
	snapshotRepo *mocks.MockMetricSnapshotRepository
	alertRepo    *mocks.MockAlertRepository
	actionRepo   *mocks.MockProposedActionRepository
	provider     *aimocks.MockProvider
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		snapshotRepo: mocks.NewMockMetricSnapshotRepository(ctrl),
		alertRepo:    mocks.NewMockAlertRepository(ctrl),
		actionRepo:   mocks.NewMockProposedActionRepository(ctrl),
		provider:     aimocks.NewMockProvider(ctrl),
	}

	service := &Service{
		snapshotRepo: m.snapshotRepo,
		alertRepo:    m.alertRepo,
		actionRepo:   m.actionRepo,
		trender:      trending.NewService(),
		provider:     m.provider,
		cfg:          testConfig(),
	}

	return service, m
}

const validResponse = `[{
	"action_type": "INCREASE_BUDGET",
	"priority": "HIGH",
	"reason": "ROAS alto com budget esgotado",
	"expected_impact": "Mais conversões",
	"confidence": 0.9,
	"current_value": "R$50,00/dia",
	"proposed_value": "R$65,00/dia",
	"target": {"new_budget_micros": 65000000, "current_budget_micros": 50000000}
}]`

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(validResponse, nil)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash")
	m.actionRepo.EXPECT().ListPendingByCampaign(int64(42)).Return(nil, nil)
	m.actionRepo.EXPECT().Create(gomock.Any()).Return(int64(77), nil)

	proposals, err := service.Analyze(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, proposals, 1)
	assert.Equal(t, int64(77), proposals[0].ID)
	assert.Equal(t, domain.ActionIncreaseBudget, proposals[0].ActionType)
	assert.NotEmpty(t, proposals[0].AISummary)
}

func TestService_Analyze_CampaignNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(99)).Return(nil, nil)

	proposals, err := service.Analyze(context.Background(), 99)

	assert.True(t, errors.Is(err, ErrCampaignNotFound))
	assert.Nil(t, proposals)
}

func TestService_Analyze_PausedCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusPaused), nil)

	proposals, err := service.Analyze(context.Background(), 42)

	assert.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestService_Analyze_RetriesOnMalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil)

	// As duas primeiras respostas não têm JSON; a terceira é válida
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("sem json", nil).Times(2)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(validResponse, nil)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash").AnyTimes()
	m.provider.EXPECT().Name().Return("gemini").AnyTimes()

	m.actionRepo.EXPECT().ListPendingByCampaign(int64(42)).Return(nil, nil)
	m.actionRepo.EXPECT().Create(gomock.Any()).Return(int64(1), nil)

	proposals, err := service.Analyze(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, proposals, 1)
}

func TestService_Analyze_MalformedAfterAllRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil)

	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("sem json", nil).Times(3)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash").AnyTimes()
	m.provider.EXPECT().Name().Return("gemini").AnyTimes()

	proposals, err := service.Analyze(context.Background(), 42)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
	assert.Nil(t, proposals)
}

func TestService_Analyze_ProviderErrorIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil)

	// Indisponibilidade do provider sobe na primeira tentativa
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", assert.AnError).Times(1)
	m.provider.EXPECT().Name().Return("gemini")

	proposals, err := service.Analyze(context.Background(), 42)

	assert.Error(t, err)
	assert.Nil(t, proposals)
}

func TestService_Analyze_SkipsTypesAlreadyPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(validResponse, nil)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash")

	// Já existe proposta pendente do mesmo tipo: nada é criado
	m.actionRepo.EXPECT().ListPendingByCampaign(int64(42)).Return([]*domain.ProposedAction{
		{CampaignID: 42, ActionType: domain.ActionIncreaseBudget, Status: domain.StatusPending},
	}, nil)

	proposals, err := service.Analyze(context.Background(), 42)

	assert.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestService_AnalyzeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestAll().Return([]*domain.MetricSnapshot{
		{CampaignID: 1, CampaignName: "Ativa", Status: domain.CampaignStatusEnabled},
		{CampaignID: 2, CampaignName: "Pausada", Status: domain.CampaignStatusPaused},
	}, nil)

	// Analyze roda só para a campanha ativa
	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(1)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(1), false).Return(nil, nil)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("[]", nil)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash")

	report, err := service.AnalyzeAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, report.CampaignsAnalyzed)
	assert.Equal(t, 1, report.CampaignsSkipped)
	assert.Equal(t, 0, report.ProposalsCreated)
	assert.Empty(t, report.Failures)
}

func TestService_AnalyzeAllWithAlerts_DistinctCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	// Dois alertas da mesma campanha geram uma única análise
	m.alertRepo.EXPECT().ListUnresolved().Return([]*domain.Alert{
		{CampaignID: 42, AlertType: domain.AlertLowROAS},
		{CampaignID: 42, AlertType: domain.AlertHighCPC},
	}, nil)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(42)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil).Times(1)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	m.alertRepo.EXPECT().ListByCampaign(int64(42), false).Return(nil, nil).Times(1)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("[]", nil).Times(1)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash").Times(1)

	report, err := service.AnalyzeAllWithAlerts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, report.CampaignsAnalyzed)
}

func TestService_AnalyzeAll_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.snapshotRepo.EXPECT().GetLatestAll().Return([]*domain.MetricSnapshot{
		{CampaignID: 1, Status: domain.CampaignStatusEnabled},
		{CampaignID: 2, Status: domain.CampaignStatusEnabled},
	}, nil)

	// A primeira campanha falha no repositório; a segunda completa
	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(1)).Return(nil, assert.AnError)

	m.snapshotRepo.EXPECT().GetLatestByCampaign(int64(2)).Return(latestSnapshot(domain.CampaignStatusEnabled), nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(2), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alertRepo.EXPECT().ListByCampaign(int64(2), false).Return(nil, nil)
	m.provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("[]", nil)
	m.provider.EXPECT().Model().Return("gemini-1.5-flash")

	report, err := service.AnalyzeAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, report.CampaignsAnalyzed)
	assert.Len(t, report.Failures, 1)
}
