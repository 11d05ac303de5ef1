package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func newProposedActionRepositoryTest(t *testing.T) (ProposedActionRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewProposedActionRepository(&postgres.Connection{DB: db}), mock
}

func TestProposedActionRepository_Create(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	mock.ExpectQuery("INSERT INTO proposed_actions").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	newBudget := int64(65_000_000)
	id, err := repo.Create(&domain.ProposedAction{
		CampaignID: 42,
		ActionType: domain.ActionIncreaseBudget,
		Priority:   domain.PriorityHigh,
		Target:     domain.ActionTarget{NewBudgetMicros: &newBudget},
		Reason:     "ROAS alto com budget esgotado",
		Confidence: 0.9,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_GetByID(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	now := time.Now()
	columns := []string{
		"id", "campaign_id", "campaign_name", "action_type", "priority",
		"target", "reason", "expected_impact", "confidence",
		"current_value", "proposed_value", "ai_summary", "ai_model",
		"status", "created_at", "approved_at", "approved_by", "executed_at",
		"execution_result", "execution_error",
	}

	mock.ExpectQuery("SELECT .+ FROM proposed_actions pa").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), int64(42), "Campanha Teste", "INCREASE_BUDGET", "HIGH",
				[]byte(`{"new_budget_micros": 65000000}`), "ROAS alto", "Mais conversões", 0.9,
				"R$50,00/dia", "R$65,00/dia", "Tendência IMPROVING", "gemini-1.5-flash",
				"PENDING", now, nil, nil, nil,
				nil, nil))

	action, err := repo.GetByID(7)

	assert.NoError(t, err)
	assert.NotNil(t, action)
	assert.Equal(t, domain.ActionIncreaseBudget, action.ActionType)
	assert.Equal(t, domain.StatusPending, action.Status)
	assert.NotNil(t, action.Target.NewBudgetMicros)
	assert.Equal(t, int64(65_000_000), *action.Target.NewBudgetMicros)
	assert.Nil(t, action.ExecutionResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_Claim(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	// Reserva só afeta linha quando a ação está PENDING e sem aprovador
	mock.ExpectExec("UPDATE proposed_actions").
		WithArgs("ana", int64(7), "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.Claim(7, "ana")

	assert.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_Claim_AlreadyTaken(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	mock.ExpectExec("UPDATE proposed_actions").
		WithArgs("ana", int64(7), "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.Claim(7, "ana")

	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_MarkApplied(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	mock.ExpectExec("UPDATE proposed_actions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	transitioned, err := repo.MarkApplied(7, "ana", &domain.ExecutionResult{Status: "SUCCESS"})

	assert.NoError(t, err)
	assert.True(t, transitioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_MarkApplied_LosesRace(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	// O WHERE condicional não encontrou a ação em PENDING
	mock.ExpectExec("UPDATE proposed_actions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	transitioned, err := repo.MarkApplied(7, "ana", nil)

	assert.NoError(t, err)
	assert.False(t, transitioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_MarkDismissed(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	mock.ExpectExec("UPDATE proposed_actions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	transitioned, err := repo.MarkDismissed(7, "ana")

	assert.NoError(t, err)
	assert.True(t, transitioned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposedActionRepository_CountByStatus(t *testing.T) {
	repo, mock := newProposedActionRepositoryTest(t)

	mock.ExpectQuery("SELECT pa.status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PENDING", 3).
			AddRow("APPLIED", 10))

	counts, err := repo.CountByStatus()

	assert.NoError(t, err)
	assert.Equal(t, 3, counts[domain.StatusPending])
	assert.Equal(t, 10, counts[domain.StatusApplied])
	assert.NoError(t, mock.ExpectationsWereMet())
}
