package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
	gadsmocks "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/gadsclient/mocks"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	alertingmocks "github.com/vfg2006/campaign-optimizer-api/internal/usecases/alerting/mocks"
	"go.uber.org/mock/gomock"
)

type monitorMocks struct {
	snapshotRepo *mocks.MockMetricSnapshotRepository
	alerter      *alertingmocks.MockAlerter
	client       *gadsmocks.MockClient
}

func newTestMonitor(ctrl *gomock.Controller) (*MonitorSyncService, monitorMocks) {
	m := monitorMocks{
		snapshotRepo: mocks.NewMockMetricSnapshotRepository(ctrl),
		alerter:      alertingmocks.NewMockAlerter(ctrl),
		client:       gadsmocks.NewMockClient(ctrl),
	}

	service := &MonitorSyncService{
		config: MonitorSyncConfig{
			LookbackDays:      14,
			MaxConcurrentJobs: 2,
		},
		snapshotRepo: m.snapshotRepo,
		integrator:   googleads.New(&config.Config{}, m.client),
		alerter:      m.alerter,
	}

	return service, m
}

func monitorSnapshot(campaignID int64) *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		CampaignID: campaignID,
		Timestamp:  time.Now(),
		Status:     domain.CampaignStatusEnabled,
	}
}

func TestMonitorSyncService_ProcessSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestMonitor(ctrl)

	s1 := monitorSnapshot(1)
	s2 := monitorSnapshot(2)
	s3 := monitorSnapshot(3)

	// A campanha 1 gera um alerta, a 2 nenhum e a 3 falha ao salvar
	m.snapshotRepo.EXPECT().Save(s1).Return(nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(1), gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{s1}, nil)
	m.alerter.EXPECT().EvaluateAndStore(s1, gomock.Any()).Return(1, nil)

	m.snapshotRepo.EXPECT().Save(s2).Return(nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(2), gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{s2}, nil)
	m.alerter.EXPECT().EvaluateAndStore(s2, gomock.Any()).Return(0, nil)

	m.snapshotRepo.EXPECT().Save(s3).Return(assert.AnError)

	saved, alertsCreated, failures := service.processSnapshots("run-1", []*domain.MetricSnapshot{s1, s2, s3})

	assert.Equal(t, 2, saved)
	assert.Equal(t, 1, alertsCreated)
	assert.Equal(t, 1, failures)
}

func TestMonitorSyncService_ProcessCampaign_AlerterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestMonitor(ctrl)

	snapshot := monitorSnapshot(1)

	m.snapshotRepo.EXPECT().Save(snapshot).Return(nil)
	m.snapshotRepo.EXPECT().GetByDateRange(int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alerter.EXPECT().EvaluateAndStore(snapshot, gomock.Any()).Return(0, assert.AnError)

	created, err := service.processCampaign("run-1", snapshot)

	assert.Error(t, err)
	assert.Equal(t, 0, created)
}

func TestMonitorSyncService_SyncAllCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestMonitor(ctrl)

	m.client.EXPECT().SearchCampaignMetrics().Return([]gadsdomain.SearchResult{
		{
			Campaign: gadsdomain.Campaign{
				ID:     "42",
				Name:   "Campanha Teste",
				Status: "ENABLED",
			},
			CampaignBudget: gadsdomain.CampaignBudget{AmountMicros: "100000000"},
			Metrics: gadsdomain.Metrics{
				CostMicros:  "50000000",
				Clicks:      "100",
				Impressions: "4000",
				Conversions: 5,
			},
		},
	}, nil)

	m.snapshotRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(snapshot *domain.MetricSnapshot) error {
		assert.Equal(t, int64(42), snapshot.CampaignID)
		assert.InDelta(t, 50.0, snapshot.Cost, 0.001)
		return nil
	})
	m.snapshotRepo.EXPECT().GetByDateRange(int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.alerter.EXPECT().EvaluateAndStore(gomock.Any(), gomock.Any()).Return(0, nil)

	service.syncAllCampaigns()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.NotEmpty(t, service.lastRunID)
}

func TestMonitorSyncService_SyncAllCampaigns_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestMonitor(ctrl)

	m.client.EXPECT().SearchCampaignMetrics().Return(nil, assert.AnError)

	// O ciclo aborta antes de qualquer persistência
	service.syncAllCampaigns()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestMonitorSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestMonitor(ctrl)
	service.config.SyncEnabled = true
	service.config.CronSchedule = "0 */6 * * *"

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, 14, status["sync_lookback_days"])
}
