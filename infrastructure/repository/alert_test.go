package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func newAlertRepositoryTest(t *testing.T) (AlertRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewAlertRepository(&postgres.Connection{DB: db}), mock
}

func testAlert() *domain.Alert {
	return &domain.Alert{
		CampaignID: 42,
		AlertType:  domain.AlertLowROAS,
		Severity:   domain.SeverityCritical,
		Message:    "ROAS crítico: 0.80 (piso: 1.00)",
		Details: domain.AlertDetails{
			CampaignName: "Campanha Teste",
			Metric:       "roas",
			CurrentValue: 0.8,
			TargetValue:  1.0,
		},
	}
}

func TestAlertRepository_Save_Insert(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	// xmax = 0 indica que a linha foi inserida, não atualizada
	mock.ExpectQuery("INSERT INTO alerts").
		WithArgs(int64(42), "LOW_ROAS", "CRITICAL", "ROAS crítico: 0.80 (piso: 1.00)", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(true))

	created, err := repo.Save(testAlert())

	assert.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Save_UpdatesExistingOpenAlert(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	mock.ExpectQuery("INSERT INTO alerts").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(false))

	created, err := repo.Save(testAlert())

	assert.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	mock.ExpectQuery("SELECT .+ FROM alerts a").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	alert, err := repo.GetByID(99)

	assert.NoError(t, err)
	assert.Nil(t, alert)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ListUnresolved(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	now := time.Now()
	columns := []string{
		"id", "campaign_id", "alert_type", "severity", "message",
		"details", "resolved", "resolved_at", "created_at",
	}

	mock.ExpectQuery("SELECT .+ FROM alerts a").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(42), "LOW_ROAS", "CRITICAL", "ROAS crítico",
				[]byte(`{"metric": "roas", "current_value": 0.8}`), false, nil, now).
			AddRow(int64(2), int64(43), "HIGH_CPC", "HIGH", "CPC acima da meta",
				[]byte(`{"metric": "cpc"}`), false, nil, now))

	alerts, err := repo.ListUnresolved()

	assert.NoError(t, err)
	assert.Len(t, alerts, 2)
	assert.Equal(t, domain.AlertLowROAS, alerts[0].AlertType)
	assert.Equal(t, 0.8, alerts[0].Details.CurrentValue)
	assert.Equal(t, domain.SeverityHigh, alerts[1].Severity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Resolve(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	mock.ExpectExec("UPDATE alerts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resolved, err := repo.Resolve(1)

	assert.NoError(t, err)
	assert.True(t, resolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_Resolve_AlreadyResolved(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	mock.ExpectExec("UPDATE alerts").
		WillReturnResult(sqlmock.NewResult(0, 0))

	resolved, err := repo.Resolve(1)

	assert.NoError(t, err)
	assert.False(t, resolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_CountUnresolvedBySeverity(t *testing.T) {
	repo, mock := newAlertRepositoryTest(t)

	mock.ExpectQuery("SELECT a.severity, COUNT").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"severity", "count"}).
			AddRow("CRITICAL", 2).
			AddRow("MEDIUM", 5))

	counts, err := repo.CountUnresolvedBySeverity()

	assert.NoError(t, err)
	assert.Equal(t, 2, counts[domain.SeverityCritical])
	assert.Equal(t, 5, counts[domain.SeverityMedium])
	assert.NoError(t, mock.ExpectationsWereMet())
}
