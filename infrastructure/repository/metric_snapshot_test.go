package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func newMetricSnapshotRepositoryTest(t *testing.T) (MetricSnapshotRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewMetricSnapshotRepository(&postgres.Connection{DB: db}), mock
}

var snapshotColumns = []string{
	"id", "campaign_id", "campaign_name", "timestamp", "budget",
	"status", "bid_strategy_type", "optimization_score", "campaign_type",
	"cost", "avg_cost", "cost_per_conv", "conversions", "conv_value",
	"conv_value_per_cost", "clicks", "ctr", "avg_cpm", "impressions",
	"roas", "cpc", "quality_score", "created_at",
}

func snapshotRow(rows *sqlmock.Rows, id, campaignID int64, roas float64, ts time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, campaignID, "Campanha Teste", ts, 100.0,
		"ENABLED", "MAXIMIZE_CONVERSIONS", 85.0, "SEARCH",
		50.0, 0.5, 10.0, 5.0, 150.0,
		3.0, int64(100), 2.5, 12.5, int64(4000),
		roas, 0.5, nil, ts,
	)
}

func TestMetricSnapshotRepository_Save(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	mock.ExpectExec("INSERT INTO campaign_metrics").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(&domain.MetricSnapshot{
		CampaignID:   42,
		CampaignName: "Campanha Teste",
		Timestamp:    time.Now(),
		Status:       domain.CampaignStatusEnabled,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_Save_DuplicateTimestampIsIgnored(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	// ON CONFLICT DO NOTHING: zero linhas afetadas não é erro
	mock.ExpectExec("INSERT INTO campaign_metrics").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(&domain.MetricSnapshot{CampaignID: 42, Timestamp: time.Now()})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_GetLatestByCampaign(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	now := time.Now()
	rows := snapshotRow(sqlmock.NewRows(snapshotColumns), 1, 42, 3.0, now)

	mock.ExpectQuery("SELECT .+ FROM campaign_metrics cm").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	snapshot, err := repo.GetLatestByCampaign(42)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, int64(42), snapshot.CampaignID)
	assert.Equal(t, 3.0, snapshot.ROAS)
	assert.NotNil(t, snapshot.Budget)
	assert.Equal(t, 100.0, *snapshot.Budget)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_GetLatestByCampaign_NoSnapshots(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	mock.ExpectQuery("SELECT .+ FROM campaign_metrics cm").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(snapshotColumns))

	snapshot, err := repo.GetLatestByCampaign(99)

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_GetByDateRange(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	now := time.Now()
	rows := sqlmock.NewRows(snapshotColumns)
	snapshotRow(rows, 1, 42, 2.0, now.AddDate(0, 0, -1))
	snapshotRow(rows, 2, 42, 3.0, now)

	mock.ExpectQuery("SELECT .+ FROM campaign_metrics cm").
		WillReturnRows(rows)

	snapshots, err := repo.GetByDateRange(42, now.AddDate(0, 0, -14), now)

	assert.NoError(t, err)
	assert.Len(t, snapshots, 2)
	assert.Equal(t, 2.0, snapshots[0].ROAS)
	assert.Equal(t, 3.0, snapshots[1].ROAS)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_AggregateBetween(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"cost", "conversions", "conv_value", "clicks", "impressions"}).
			AddRow(250.0, 20.0, 600.0, int64(500), int64(18000)))

	totals, err := repo.AggregateBetween(time.Now().AddDate(0, 0, -7), time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 250.0, totals.Cost)
	assert.Equal(t, 20.0, totals.Conversions)
	assert.Equal(t, int64(500), totals.Clicks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricSnapshotRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := newMetricSnapshotRepositoryTest(t)

	mock.ExpectExec("DELETE FROM campaign_metrics").
		WillReturnResult(sqlmock.NewResult(0, 12))

	deleted, err := repo.DeleteOlderThan(90)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
