package recommending

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// ErrMalformedResponse indica que a resposta do modelo não pôde ser
// interpretada como um array JSON de propostas. Erro transitório do ponto de
// vista da análise: o serviço tenta de novo com um novo prompt.
var ErrMalformedResponse = errors.New("resposta da AI em formato inválido")

type aiProposal struct {
	ActionType     string              `json:"action_type"`
	Priority       string              `json:"priority"`
	Reason         string              `json:"reason"`
	ExpectedImpact string              `json:"expected_impact"`
	Confidence     float64             `json:"confidence"`
	CurrentValue   string              `json:"current_value"`
	ProposedValue  string              `json:"proposed_value"`
	Target         domain.ActionTarget `json:"target"`
}

// parseProposals interpreta a resposta crua do modelo e devolve as ações
// válidas, ordenadas por confiança e limitadas a maxProposals.
//
// Propostas individuais inválidas (tipo desconhecido, alvo incompleto,
// proposta igual ao valor atual) são descartadas com log; só a falha em
// extrair o array JSON inteiro é tratada como ErrMalformedResponse.
func parseProposals(raw string, snapshot *domain.MetricSnapshot, model string, maxProposals int) ([]*domain.ProposedAction, error) {
	payload := extractJSONArray(raw)
	if payload == "" {
		return nil, errors.Wrapf(ErrMalformedResponse, "nenhum array JSON encontrado na resposta (%d bytes)", len(raw))
	}

	var proposals []aiProposal
	if err := json.Unmarshal([]byte(payload), &proposals); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	actions := make([]*domain.ProposedAction, 0, len(proposals))
	for _, proposal := range proposals {
		action := &domain.ProposedAction{
			CampaignID:     snapshot.CampaignID,
			CampaignName:   snapshot.CampaignName,
			ActionType:     domain.ActionType(proposal.ActionType),
			Priority:       normalizePriority(proposal.Priority),
			Target:         proposal.Target,
			Reason:         proposal.Reason,
			ExpectedImpact: proposal.ExpectedImpact,
			Confidence:     normalizeConfidence(proposal.Confidence),
			CurrentValue:   proposal.CurrentValue,
			ProposedValue:  proposal.ProposedValue,
			AIModel:        model,
			Status:         domain.StatusPending,
		}

		if err := action.Validate(); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": snapshot.CampaignID,
				"action_type": proposal.ActionType,
			}).Warnf("analyzer: discarding invalid proposal: %v", err)
			continue
		}

		actions = append(actions, action)
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Confidence > actions[j].Confidence
	})

	if maxProposals > 0 && len(actions) > maxProposals {
		actions = actions[:maxProposals]
	}

	return actions, nil
}

// extractJSONArray remove cercas de markdown e isola o array JSON mais
// externo da resposta. Modelos costumam envolver o JSON em ```json ... ```
// ou acrescentar texto explicativo apesar da instrução.
func extractJSONArray(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if end := strings.LastIndex(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return ""
	}

	return cleaned[start : end+1]
}

// normalizeConfidence aceita modelos que respondem em escala 0-100 em vez de
// 0-1
func normalizeConfidence(confidence float64) float64 {
	if confidence > 1 && confidence <= 100 {
		return confidence / 100
	}
	return confidence
}

func normalizePriority(priority string) domain.ActionPriority {
	switch domain.ActionPriority(strings.ToUpper(strings.TrimSpace(priority))) {
	case domain.PriorityHigh:
		return domain.PriorityHigh
	case domain.PriorityLow:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
