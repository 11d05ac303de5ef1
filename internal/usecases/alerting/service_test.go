package alerting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testTargets() domain.PerformanceTargets {
	return domain.PerformanceTargets{
		CTRMin:                1.0,
		CPCMax:                5.0,
		ROASMin:               1.5,
		ROASCriticalFloor:     1.0,
		OptimizationScoreMin:  60,
		OptimizationScoreCrit: 40,
		BudgetUsedFraction:    0.95,
	}
}

func healthySnapshot() *domain.MetricSnapshot {
	optScore := 85.0
	budget := 100.0
	return &domain.MetricSnapshot{
		CampaignID:        42,
		CampaignName:      "Campanha Saudável",
		Status:            domain.CampaignStatusEnabled,
		Budget:            &budget,
		OptimizationScore: &optScore,
		Cost:              50.0,
		Conversions:       10,
		ConvValue:         150.0,
		Clicks:            100,
		CTR:               2.5,
		Impressions:       4000,
		ROAS:              3.0,
		CPC:               0.5,
	}
}

func TestService_Evaluate(t *testing.T) {
	service := &Service{targets: testTargets()}

	tests := []struct {
		name     string
		snapshot func() *domain.MetricSnapshot
		window   []*domain.MetricSnapshot
		validate func(t *testing.T, alerts []*domain.Alert)
	}{
		{
			name:     "Campanha saudável não gera alertas",
			snapshot: healthySnapshot,
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Campanha pausada nunca gera alertas",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Status = domain.CampaignStatusPaused
				s.ROAS = 0.1
				s.CPC = 50.0
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "ROAS abaixo da meta gera alerta MEDIUM",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.ROAS = 1.2
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertLowROAS, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityMedium, alerts[0].Severity)
				assert.Equal(t, 1.2, alerts[0].Details.CurrentValue)
				assert.Equal(t, 1.5, alerts[0].Details.TargetValue)
			},
		},
		{
			name: "ROAS abaixo do piso crítico gera um único alerta CRITICAL",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.ROAS = 0.8
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertLowROAS, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
				assert.Equal(t, 1.0, alerts[0].Details.TargetValue)
			},
		},
		{
			name: "ROAS baixo sem conversões não gera alerta de ROAS",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Conversions = 0
				s.ROAS = 0
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				for _, alert := range alerts {
					assert.NotEqual(t, domain.AlertLowROAS, alert.AlertType)
				}
			},
		},
		{
			name: "CPC acima do limite gera alerta MEDIUM",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.CPC = 7.5
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertHighCPC, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityMedium, alerts[0].Severity)
				assert.NotNil(t, alerts[0].Details.Clicks)
			},
		},
		{
			name: "CPC alto sem cliques não gera alerta",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Clicks = 0
				s.CPC = 7.5
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				for _, alert := range alerts {
					assert.NotEqual(t, domain.AlertHighCPC, alert.AlertType)
				}
			},
		},
		{
			name: "CTR abaixo da meta gera alerta MEDIUM",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.CTR = 0.4
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertLowCTR, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityMedium, alerts[0].Severity)
			},
		},
		{
			name: "CTR baixo sem impressões não gera alerta",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Impressions = 0
				s.CTR = 0
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				for _, alert := range alerts {
					assert.NotEqual(t, domain.AlertLowCTR, alert.AlertType)
				}
			},
		},
		{
			name: "Optimization score abaixo da meta gera alerta MEDIUM",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				score := 55.0
				s.OptimizationScore = &score
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertLowOptimizationScore, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityMedium, alerts[0].Severity)
			},
		},
		{
			name: "Optimization score abaixo do crítico gera alerta CRITICAL",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				score := 30.0
				s.OptimizationScore = &score
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertLowOptimizationScore, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
			},
		},
		{
			name: "Optimization score ausente não gera alerta",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.OptimizationScore = nil
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Budget quase esgotado gera alerta HIGH",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Cost = 96.0
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertBudgetExhausted, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityHigh, alerts[0].Severity)
				assert.NotNil(t, alerts[0].Details.PercentageUsed)
				assert.InDelta(t, 96.0, *alerts[0].Details.PercentageUsed, 0.01)
			},
		},
		{
			name: "Budget ausente não gera alerta de budget",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Budget = nil
				s.Cost = 500.0
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				for _, alert := range alerts {
					assert.NotEqual(t, domain.AlertBudgetExhausted, alert.AlertType)
				}
			},
		},
		{
			name: "Janela com cliques e zero conversões gera alerta HIGH",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Conversions = 0
				s.ROAS = 0
				return s
			},
			window: []*domain.MetricSnapshot{
				{Cost: 30.0, Clicks: 60, Conversions: 0},
				{Cost: 25.0, Clicks: 45, Conversions: 0},
				{Cost: 40.0, Clicks: 80, Conversions: 0},
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 1)
				assert.Equal(t, domain.AlertZeroConversions, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityHigh, alerts[0].Severity)
				assert.Equal(t, int64(185), *alerts[0].Details.Clicks)
				assert.InDelta(t, 95.0, *alerts[0].Details.Cost, 0.01)
				assert.Equal(t, 3, *alerts[0].Details.WindowDays)
			},
		},
		{
			name: "Janela sem cliques não gera alerta de conversões",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.Conversions = 0
				s.ROAS = 0
				return s
			},
			window: []*domain.MetricSnapshot{
				{Cost: 12.0, Clicks: 0, Conversions: 0},
				{Cost: 8.0, Clicks: 0, Conversions: 0},
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Janela com alguma conversão não gera alerta de conversões",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				return s
			},
			window: []*domain.MetricSnapshot{
				{Cost: 30.0, Clicks: 60, Conversions: 0},
				{Cost: 25.0, Clicks: 45, Conversions: 2},
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Snapshot nil não gera alertas",
			snapshot: func() *domain.MetricSnapshot {
				return nil
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Empty(t, alerts)
			},
		},
		{
			name: "Múltiplos alertas saem ordenados por severidade e tipo",
			snapshot: func() *domain.MetricSnapshot {
				s := healthySnapshot()
				s.ROAS = 0.5 // CRITICAL
				s.CPC = 9.0  // MEDIUM
				s.CTR = 0.2  // MEDIUM
				score := 30.0
				s.OptimizationScore = &score // CRITICAL
				return s
			},
			validate: func(t *testing.T, alerts []*domain.Alert) {
				assert.Len(t, alerts, 4)
				// Empates de severidade resolvem por ordem alfabética do tipo
				assert.Equal(t, domain.AlertLowOptimizationScore, alerts[0].AlertType)
				assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
				assert.Equal(t, domain.AlertLowROAS, alerts[1].AlertType)
				assert.Equal(t, domain.SeverityCritical, alerts[1].Severity)
				assert.Equal(t, domain.AlertHighCPC, alerts[2].AlertType)
				assert.Equal(t, domain.AlertLowCTR, alerts[3].AlertType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := service.Evaluate(tt.snapshot(), tt.window)
			tt.validate(t, alerts)
		})
	}
}

func TestService_EvaluateAndStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := &Service{alertRepo: mockRepo, targets: testTargets()}

	snapshot := healthySnapshot()
	snapshot.ROAS = 0.5 // CRITICAL
	snapshot.CPC = 9.0  // MEDIUM

	// O primeiro alerta é inserido; o segundo já existia e só foi atualizado
	first := mockRepo.EXPECT().Save(gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().Save(gomock.Any()).Return(false, nil).After(first)

	created, err := service.EvaluateAndStore(snapshot, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestService_EvaluateAndStore_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := &Service{alertRepo: mockRepo, targets: testTargets()}

	snapshot := healthySnapshot()
	snapshot.ROAS = 0.5

	mockRepo.EXPECT().Save(gomock.Any()).Return(false, assert.AnError)

	created, err := service.EvaluateAndStore(snapshot, nil)

	assert.Error(t, err)
	assert.Equal(t, 0, created)
}
