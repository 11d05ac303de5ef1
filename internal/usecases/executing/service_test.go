package executing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
	gadsmocks "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/gadsclient/mocks"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func pendingBudgetAction() *domain.ProposedAction {
	return &domain.ProposedAction{
		ID:         7,
		CampaignID: 42,
		ActionType: domain.ActionIncreaseBudget,
		Target: domain.ActionTarget{
			NewBudgetMicros:     int64Ptr(65_000_000),
			CurrentBudgetMicros: int64Ptr(50_000_000),
		},
		Reason:     "ROAS alto com budget esgotado",
		Confidence: 0.9,
		Status:     domain.StatusPending,
	}
}

func withStatus(action *domain.ProposedAction, status domain.ActionStatus) *domain.ProposedAction {
	copied := *action
	copied.Status = status
	return &copied
}

type executorMocks struct {
	actionRepo *mocks.MockProposedActionRepository
	logRepo    *mocks.MockActionLogRepository
	client     *gadsmocks.MockClient
}

func newTestExecutor(ctrl *gomock.Controller) (Executor, executorMocks) {
	m := executorMocks{
		actionRepo: mocks.NewMockProposedActionRepository(ctrl),
		logRepo:    mocks.NewMockActionLogRepository(ctrl),
		client:     gadsmocks.NewMockClient(ctrl),
	}

	executor := NewService(m.actionRepo, m.logRepo, googleads.New(&config.Config{}, m.client))

	return executor, m
}

func TestService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	claim := m.actionRepo.EXPECT().Claim(int64(7), "ana").Return(true, nil)
	m.client.EXPECT().GetCampaignBudgetResource(int64(42)).
		Return(&gadsdomain.CampaignBudget{ResourceName: "customers/1/campaignBudgets/9"}, nil).
		After(claim)
	m.client.EXPECT().UpdateCampaignBudget("customers/1/campaignBudgets/9", int64(65_000_000)).
		Return(&gadsdomain.MutateResult{ResourceName: "customers/1/campaignBudgets/9"}, nil)
	m.actionRepo.EXPECT().MarkApplied(int64(7), "ana", gomock.Any()).Return(true, nil)

	var logged *domain.ActionLog
	m.logRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *domain.ActionLog) error {
		logged = entry
		return nil
	})

	m.actionRepo.EXPECT().GetByID(int64(7)).Return(withStatus(pending, domain.StatusApplied), nil).After(first)

	applied, err := executor.Apply(7, "ana")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, applied.Status)

	assert.NotNil(t, logged)
	assert.Equal(t, int64(7), logged.ActionID)
	assert.Equal(t, int64(42), logged.CampaignID)
	assert.Equal(t, domain.LogSuccess, logged.Status)
	assert.Nil(t, logged.ErrorMsg)
	assert.NotNil(t, logged.APIResponse)
	assert.Equal(t, "SUCCESS", logged.APIResponse.Status)
}

func TestService_Apply_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	m.actionRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	applied, err := executor.Apply(99, "ana")

	assert.ErrorIs(t, err, ErrActionNotFound)
	assert.Nil(t, applied)
}

func TestService_Apply_TerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	m.actionRepo.EXPECT().GetByID(int64(7)).
		Return(withStatus(pendingBudgetAction(), domain.StatusDismissed), nil)

	applied, err := executor.Apply(7, "ana")

	assert.Nil(t, applied)
	assert.True(t, IsInvalidTransition(err))

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusDismissed, invalid.CurrentStatus)
}

func TestService_Apply_MissingTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	action := pendingBudgetAction()
	action.Target = domain.ActionTarget{}

	m.actionRepo.EXPECT().GetByID(int64(7)).Return(action, nil)

	applied, err := executor.Apply(7, "ana")

	assert.ErrorIs(t, err, ErrActionNotExecutable)
	assert.Nil(t, applied)
}

func TestService_Apply_PlatformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	m.actionRepo.EXPECT().Claim(int64(7), "ana").Return(true, nil)
	m.client.EXPECT().GetCampaignBudgetResource(int64(42)).Return(nil, assert.AnError)
	m.actionRepo.EXPECT().MarkFailed(int64(7), "ana", assert.AnError.Error(), nil).Return(true, nil)

	var logged *domain.ActionLog
	m.logRepo.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *domain.ActionLog) error {
		logged = entry
		return nil
	})

	m.actionRepo.EXPECT().GetByID(int64(7)).Return(withStatus(pending, domain.StatusFailed), nil).After(first)

	// Falha de execução não sobe como erro: o resultado volta na própria ação
	failed, err := executor.Apply(7, "ana")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, failed.Status)

	assert.NotNil(t, logged)
	assert.Equal(t, domain.LogFailure, logged.Status)
	assert.NotNil(t, logged.ErrorMsg)
	assert.Equal(t, assert.AnError.Error(), *logged.ErrorMsg)
}

func TestService_Apply_LosesRaceAfterExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	m.actionRepo.EXPECT().Claim(int64(7), "ana").Return(true, nil)
	m.client.EXPECT().GetCampaignBudgetResource(int64(42)).
		Return(&gadsdomain.CampaignBudget{ResourceName: "customers/1/campaignBudgets/9"}, nil)
	m.client.EXPECT().UpdateCampaignBudget("customers/1/campaignBudgets/9", int64(65_000_000)).
		Return(&gadsdomain.MutateResult{ResourceName: "customers/1/campaignBudgets/9"}, nil)
	m.actionRepo.EXPECT().MarkApplied(int64(7), "ana", gomock.Any()).Return(false, nil)

	// A mutação na plataforma aconteceu, então o log é gravado mesmo perdendo
	// a corrida pela transição
	m.logRepo.EXPECT().Append(gomock.Any()).Return(nil)

	m.actionRepo.EXPECT().GetByID(int64(7)).Return(withStatus(pending, domain.StatusApplied), nil).After(first)

	applied, err := executor.Apply(7, "ana")

	assert.Nil(t, applied)

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusApplied, invalid.CurrentStatus)
}

// Duas aprovações simultâneas: quem perde a reserva nunca chega à plataforma.
// O mock do cliente sem expectativas garante que nenhuma mutação foi tentada.
func TestService_Apply_ClaimLostBeforeExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()
	claimed := pendingBudgetAction()
	claimed.ApprovedBy = stringPtr("bruno")

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	m.actionRepo.EXPECT().Claim(int64(7), "ana").Return(false, nil)
	m.actionRepo.EXPECT().GetByID(int64(7)).Return(claimed, nil).After(first)

	applied, err := executor.Apply(7, "ana")

	assert.Nil(t, applied)
	assert.ErrorIs(t, err, ErrActionAlreadyClaimed)
}

// Reserva perdida para uma execução que já terminou devolve o status vencedor
func TestService_Apply_ClaimLostToFinishedExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	m.actionRepo.EXPECT().Claim(int64(7), "ana").Return(false, nil)
	m.actionRepo.EXPECT().GetByID(int64(7)).Return(withStatus(pending, domain.StatusApplied), nil).After(first)

	applied, err := executor.Apply(7, "ana")

	assert.Nil(t, applied)

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.StatusApplied, invalid.CurrentStatus)
}

func TestService_Dismiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pending := pendingBudgetAction()

	first := m.actionRepo.EXPECT().GetByID(int64(7)).Return(pending, nil)
	m.actionRepo.EXPECT().MarkDismissed(int64(7), "ana").Return(true, nil)
	m.actionRepo.EXPECT().GetByID(int64(7)).Return(withStatus(pending, domain.StatusDismissed), nil).After(first)

	// Nenhuma chamada ao integrador nem ao log: descarte não executa nada
	dismissed, err := executor.Dismiss(7, "ana")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDismissed, dismissed.Status)
}

func TestService_ExecutePending_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	valid := pendingBudgetAction()

	broken := pendingBudgetAction()
	broken.ID = 8
	broken.Target = domain.ActionTarget{}

	m.actionRepo.EXPECT().List(gomock.Any()).DoAndReturn(func(filter repository.ListActionsFilter) ([]*domain.ProposedAction, error) {
		assert.NotNil(t, filter.Status)
		assert.Equal(t, domain.StatusPending, *filter.Status)
		return []*domain.ProposedAction{valid, broken}, nil
	})

	report, err := executor.ExecutePending("ana", true)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.DryRun)
	assert.Equal(t, 0, report.Applied)
	assert.Len(t, report.Failures, 1)
}

func TestService_ExecutePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor, m := newTestExecutor(ctrl)

	pause := &domain.ProposedAction{
		ID:         9,
		CampaignID: 42,
		ActionType: domain.ActionPauseAd,
		Target: domain.ActionTarget{
			AdGroupID: stringPtr("111"),
			AdID:      stringPtr("222"),
		},
		Reason: "anúncio sem cliques",
		Status: domain.StatusPending,
	}

	m.actionRepo.EXPECT().List(gomock.Any()).Return([]*domain.ProposedAction{pause}, nil)

	first := m.actionRepo.EXPECT().GetByID(int64(9)).Return(pause, nil)
	m.actionRepo.EXPECT().Claim(int64(9), "ana").Return(true, nil)
	m.client.EXPECT().PauseAd("111", "222").
		Return(&gadsdomain.MutateResult{ResourceName: "customers/1/adGroupAds/111~222"}, nil)
	m.actionRepo.EXPECT().MarkApplied(int64(9), "ana", gomock.Any()).Return(true, nil)
	m.logRepo.EXPECT().Append(gomock.Any()).Return(nil)
	m.actionRepo.EXPECT().GetByID(int64(9)).Return(withStatus(pause, domain.StatusApplied), nil).After(first)

	report, err := executor.ExecutePending("ana", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Failures)
}
