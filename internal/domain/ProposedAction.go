package domain

import (
	"fmt"
	"time"
)

// ActionType identifica o tipo de otimização proposta para uma campanha
type ActionType string

const (
	ActionIncreaseBudget     ActionType = "INCREASE_BUDGET"
	ActionDecreaseBudget     ActionType = "DECREASE_BUDGET"
	ActionIncreaseBid        ActionType = "INCREASE_BID"
	ActionReduceBid          ActionType = "REDUCE_BID"
	ActionPauseKeyword       ActionType = "PAUSE_KEYWORD"
	ActionPauseAd            ActionType = "PAUSE_AD"
	ActionAddNegativeKeyword ActionType = "ADD_NEGATIVE_KEYWORD"
)

// KnownActionTypes lista os tipos de ação aceitos pelo parser de respostas da
// AI; qualquer outro valor é descartado
var KnownActionTypes = map[ActionType]bool{
	ActionIncreaseBudget:     true,
	ActionDecreaseBudget:     true,
	ActionIncreaseBid:        true,
	ActionReduceBid:          true,
	ActionPauseKeyword:       true,
	ActionPauseAd:            true,
	ActionAddNegativeKeyword: true,
}

// ActionPriority indica a prioridade sugerida para a ação
type ActionPriority string

const (
	PriorityHigh   ActionPriority = "HIGH"
	PriorityMedium ActionPriority = "MEDIUM"
	PriorityLow    ActionPriority = "LOW"
)

// ActionStatus representa o estado de uma ação proposta dentro do ciclo de
// vida PENDING → APPLIED | DISMISSED | FAILED
type ActionStatus string

const (
	StatusPending   ActionStatus = "PENDING"
	StatusApplied   ActionStatus = "APPLIED"
	StatusDismissed ActionStatus = "DISMISSED"
	StatusFailed    ActionStatus = "FAILED"
)

// IsTerminal indica se o status é final (nenhuma transição é permitida a
// partir dele)
func (s ActionStatus) IsTerminal() bool {
	return s == StatusApplied || s == StatusDismissed || s == StatusFailed
}

// ActionTarget descreve o alvo estruturado de uma ação. Os campos exigidos
// dependem do tipo da ação (ver ValidateFor); valores monetários seguem a
// convenção de micros do Google Ads (1 unidade de moeda = 1.000.000 micros).
type ActionTarget struct {
	// Budget (INCREASE_BUDGET / DECREASE_BUDGET)
	NewBudgetMicros     *int64 `json:"new_budget_micros,omitempty"`
	CurrentBudgetMicros *int64 `json:"current_budget_micros,omitempty"`

	// Bid (INCREASE_BID / REDUCE_BID)
	KeywordID        *string `json:"keyword_id,omitempty"`
	AdGroupID        *string `json:"ad_group_id,omitempty"`
	NewBidMicros     *int64  `json:"new_bid_micros,omitempty"`
	CurrentBidMicros *int64  `json:"current_bid_micros,omitempty"`

	// Pausa (PAUSE_AD)
	AdID *string `json:"ad_id,omitempty"`

	// Negative keyword (ADD_NEGATIVE_KEYWORD)
	KeywordText *string `json:"keyword_text,omitempty"`
	MatchType   *string `json:"match_type,omitempty"`
}

// ValidateFor verifica se o alvo contém os campos exigidos pelo tipo da ação
// e se o valor proposto difere do atual (uma ação no-op é inválida)
func (t *ActionTarget) ValidateFor(actionType ActionType) error {
	switch actionType {
	case ActionIncreaseBudget, ActionDecreaseBudget:
		if t.NewBudgetMicros == nil {
			return fmt.Errorf("alvo de %s sem new_budget_micros", actionType)
		}
		if t.CurrentBudgetMicros != nil && *t.NewBudgetMicros == *t.CurrentBudgetMicros {
			return fmt.Errorf("alvo de %s propõe o mesmo budget atual", actionType)
		}

	case ActionIncreaseBid, ActionReduceBid:
		if t.KeywordID == nil || *t.KeywordID == "" {
			return fmt.Errorf("alvo de %s sem keyword_id", actionType)
		}
		if t.NewBidMicros == nil {
			return fmt.Errorf("alvo de %s sem new_bid_micros", actionType)
		}
		if t.CurrentBidMicros != nil && *t.NewBidMicros == *t.CurrentBidMicros {
			return fmt.Errorf("alvo de %s propõe o mesmo bid atual", actionType)
		}

	case ActionPauseKeyword:
		if t.KeywordID == nil || *t.KeywordID == "" {
			return fmt.Errorf("alvo de PAUSE_KEYWORD sem keyword_id")
		}

	case ActionPauseAd:
		if t.AdID == nil || *t.AdID == "" {
			return fmt.Errorf("alvo de PAUSE_AD sem ad_id")
		}

	case ActionAddNegativeKeyword:
		if t.KeywordText == nil || *t.KeywordText == "" {
			return fmt.Errorf("alvo de ADD_NEGATIVE_KEYWORD sem keyword_text")
		}

	default:
		return fmt.Errorf("tipo de ação desconhecido: %s", actionType)
	}

	return nil
}

// ExecutionResult é o resultado estruturado da aplicação de uma ação na
// plataforma de anúncios
type ExecutionResult struct {
	Status       string `json:"status"` // SUCCESS | FAILED | SKIPPED
	ResourceName string `json:"resource_name,omitempty"`
	NewValue     string `json:"new_value,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ProposedAction é uma otimização candidata gerada pela AI, aguardando
// aprovação de um operador antes de ser aplicada na campanha.
//
// Invariantes: confidence ∈ [0,1]; o valor proposto no alvo difere do atual;
// as transições de status são monotônicas e nenhum estado terminal é
// reversível.
type ProposedAction struct {
	ID           int64          `json:"id"`
	CampaignID   int64          `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	ActionType   ActionType     `json:"action_type"`
	Priority     ActionPriority `json:"priority"`

	Target         ActionTarget `json:"target"`
	Reason         string       `json:"reason"`
	ExpectedImpact string       `json:"expected_impact"`
	Confidence     float64      `json:"confidence"`
	CurrentValue   string       `json:"current_value"`
	ProposedValue  string       `json:"proposed_value"`

	AISummary string `json:"ai_summary"`
	AIModel   string `json:"ai_model"`

	Status     ActionStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	ApprovedAt *time.Time   `json:"approved_at"`
	ApprovedBy *string      `json:"approved_by"`
	ExecutedAt *time.Time   `json:"executed_at"`

	ExecutionResult *ExecutionResult `json:"execution_result,omitempty"`
	ExecutionError  *string          `json:"execution_error,omitempty"`
}

// Validate verifica as invariantes de uma ação antes da persistência
func (a *ProposedAction) Validate() error {
	if !KnownActionTypes[a.ActionType] {
		return fmt.Errorf("tipo de ação desconhecido: %s", a.ActionType)
	}
	if a.Reason == "" {
		return fmt.Errorf("ação %s sem justificativa (reason)", a.ActionType)
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return fmt.Errorf("confidence %.2f fora do intervalo [0,1]", a.Confidence)
	}
	if a.CurrentValue != "" && a.CurrentValue == a.ProposedValue {
		return fmt.Errorf("ação %s propõe o mesmo valor atual (%s)", a.ActionType, a.CurrentValue)
	}
	return a.Target.ValidateFor(a.ActionType)
}
