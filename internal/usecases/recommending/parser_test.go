package recommending

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func parserSnapshot() *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		CampaignID:   42,
		CampaignName: "Campanha Teste",
	}
}

func budgetProposalJSON(confidence float64) string {
	return fmt.Sprintf(`{
		"action_type": "INCREASE_BUDGET",
		"priority": "HIGH",
		"reason": "ROAS alto com budget esgotado",
		"expected_impact": "Mais conversões no mesmo ROAS",
		"confidence": %v,
		"current_value": "R$50,00/dia",
		"proposed_value": "R$65,00/dia",
		"target": {"new_budget_micros": 65000000, "current_budget_micros": 50000000}
	}`, confidence)
}

func TestParseProposals(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(t *testing.T, actions []*domain.ProposedAction, err error)
	}{
		{
			name: "Array JSON puro é interpretado",
			raw:  "[" + budgetProposalJSON(0.9) + "]",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
				assert.Equal(t, domain.ActionIncreaseBudget, actions[0].ActionType)
				assert.Equal(t, domain.StatusPending, actions[0].Status)
				assert.Equal(t, "gemini-1.5-flash", actions[0].AIModel)
				assert.Equal(t, int64(42), actions[0].CampaignID)
			},
		},
		{
			name: "Cerca de markdown é removida",
			raw:  "```json\n[" + budgetProposalJSON(0.9) + "]\n```",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
			},
		},
		{
			name: "Texto explicativo em volta do array é ignorado",
			raw:  "Segue a análise solicitada:\n[" + budgetProposalJSON(0.9) + "]\nEspero ter ajudado.",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
			},
		},
		{
			name: "Resposta sem array JSON é malformada",
			raw:  "Não foi possível analisar a campanha.",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.True(t, errors.Is(err, ErrMalformedResponse))
				assert.Nil(t, actions)
			},
		},
		{
			name: "JSON inválido dentro do array é malformado",
			raw:  `[{"action_type": "INCREASE_BUDGET",]`,
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.True(t, errors.Is(err, ErrMalformedResponse))
			},
		},
		{
			name: "Array vazio é resposta válida sem propostas",
			raw:  "[]",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Empty(t, actions)
			},
		},
		{
			name: "Tipo de ação desconhecido é descartado sem invalidar o resto",
			raw: `[
				{"action_type": "DELETE_CAMPAIGN", "reason": "x", "confidence": 0.9},
				` + budgetProposalJSON(0.8) + `
			]`,
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
				assert.Equal(t, domain.ActionIncreaseBudget, actions[0].ActionType)
			},
		},
		{
			name: "Alvo incompleto é descartado",
			raw: `[{
				"action_type": "REDUCE_BID",
				"reason": "CPC alto",
				"confidence": 0.7,
				"target": {"new_bid_micros": 400000}
			}]`,
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Empty(t, actions)
			},
		},
		{
			name: "Proposta igual ao valor atual é descartada",
			raw: `[{
				"action_type": "INCREASE_BUDGET",
				"reason": "sem mudança",
				"confidence": 0.7,
				"current_value": "R$50,00",
				"proposed_value": "R$50,00",
				"target": {"new_budget_micros": 50000000, "current_budget_micros": 50000000}
			}]`,
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Empty(t, actions)
			},
		},
		{
			name: "Confiança em escala 0-100 é normalizada",
			raw:  "[" + budgetProposalJSON(85) + "]",
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
				assert.InDelta(t, 0.85, actions[0].Confidence, 0.001)
			},
		},
		{
			name: "Prioridade desconhecida vira MEDIUM",
			raw: `[{
				"action_type": "PAUSE_AD",
				"priority": "URGENTE",
				"reason": "anúncio sem cliques",
				"confidence": 0.6,
				"target": {"ad_group_id": "111", "ad_id": "222"}
			}]`,
			validate: func(t *testing.T, actions []*domain.ProposedAction, err error) {
				assert.NoError(t, err)
				assert.Len(t, actions, 1)
				assert.Equal(t, domain.PriorityMedium, actions[0].Priority)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, err := parseProposals(tt.raw, parserSnapshot(), "gemini-1.5-flash", 7)
			tt.validate(t, actions, err)
		})
	}
}

func TestParseProposals_SortAndCap(t *testing.T) {
	raw := "[" +
		proposalWithTypeAndConfidence("INCREASE_BUDGET", 0.6) + "," +
		proposalWithTypeAndConfidence("DECREASE_BUDGET", 0.9) + "," +
		proposalWithTypeAndConfidence("PAUSE_AD", 0.8) +
		"]"

	actions, err := parseProposals(raw, parserSnapshot(), "model", 2)

	assert.NoError(t, err)
	assert.Len(t, actions, 2)
	assert.Equal(t, domain.ActionDecreaseBudget, actions[0].ActionType)
	assert.Equal(t, domain.ActionPauseAd, actions[1].ActionType)
}

// Nove candidatas válidas com empates de confiança: só as sete mais
// confiantes sobrevivem e os empates preservam a ordem da resposta
func TestParseProposals_KeepsSevenMostConfidentPreservingTies(t *testing.T) {
	candidates := []struct {
		reason     string
		confidence float64
	}{
		{"primeiro-08", 0.8},
		{"primeiro-09", 0.9},
		{"segundo-08", 0.8},
		{"topo", 0.95},
		{"segundo-09", 0.9},
		{"terceiro-08", 0.8},
		{"setimo", 0.7},
		{"descartado-06", 0.6},
		{"descartado-05", 0.5},
	}

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, proposalWithReason(c.reason, c.confidence))
	}
	raw := "[" + strings.Join(parts, ",") + "]"

	actions, err := parseProposals(raw, parserSnapshot(), "model", 7)

	assert.NoError(t, err)
	assert.Len(t, actions, 7)

	got := make([]string, 0, len(actions))
	for _, action := range actions {
		got = append(got, action.Reason)
	}
	assert.Equal(t, []string{
		"topo",
		"primeiro-09",
		"segundo-09",
		"primeiro-08",
		"segundo-08",
		"terceiro-08",
		"setimo",
	}, got)
}

func proposalWithReason(reason string, confidence float64) string {
	return fmt.Sprintf(`{
		"action_type": "INCREASE_BUDGET",
		"reason": "%s",
		"confidence": %v,
		"target": {"new_budget_micros": 65000000, "current_budget_micros": 50000000}
	}`, reason, confidence)
}

func proposalWithTypeAndConfidence(actionType string, confidence float64) string {
	target := `{"new_budget_micros": 65000000, "current_budget_micros": 50000000}`
	if actionType == "PAUSE_AD" {
		target = `{"ad_group_id": "111", "ad_id": "222"}`
	}

	return fmt.Sprintf(`{
		"action_type": "%s",
		"reason": "motivo",
		"confidence": %v,
		"target": %s
	}`, actionType, confidence, target)
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Array puro",
			raw:      `[{"a": 1}]`,
			expected: `[{"a": 1}]`,
		},
		{
			name:     "Cerca com identificador de linguagem",
			raw:      "```json\n[1, 2]\n```",
			expected: "[1, 2]",
		},
		{
			name:     "Cerca sem identificador",
			raw:      "```\n[1]\n```",
			expected: "[1]",
		},
		{
			name:     "Sem array",
			raw:      "nenhum array aqui",
			expected: "",
		},
		{
			name:     "Colchete sem fechamento",
			raw:      "[1, 2",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.raw))
		})
	}
}
