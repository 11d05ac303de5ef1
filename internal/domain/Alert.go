package domain

import (
	"time"
)

// AlertType identifica a anomalia detectada em uma campanha
type AlertType string

const (
	AlertLowROAS              AlertType = "LOW_ROAS"
	AlertHighCPC              AlertType = "HIGH_CPC"
	AlertLowCTR               AlertType = "LOW_CTR"
	AlertLowOptimizationScore AlertType = "LOW_OPTIMIZATION_SCORE"
	AlertBudgetExhausted      AlertType = "BUDGET_EXHAUSTED"
	AlertZeroConversions      AlertType = "ZERO_CONVERSIONS"
)

// AlertSeverity indica a gravidade de um alerta
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "CRITICAL"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityLow      AlertSeverity = "LOW"
)

// severityRank define a ordenação CRITICAL > HIGH > MEDIUM > LOW
var severityRank = map[AlertSeverity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// Rank retorna o peso numérico da severidade para ordenação
func (s AlertSeverity) Rank() int {
	return severityRank[s]
}

// AlertDetails carrega os valores que dispararam o alerta. Os campos
// opcionais só são preenchidos quando fazem sentido para o tipo do alerta.
type AlertDetails struct {
	CampaignName   string   `json:"campaign_name"`
	Metric         string   `json:"metric"`
	CurrentValue   float64  `json:"current_value"`
	TargetValue    float64  `json:"target_value"`
	Conversions    *float64 `json:"conversions,omitempty"`
	Cost           *float64 `json:"cost,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	PercentageUsed *float64 `json:"percentage_used,omitempty"`
	Clicks         *int64   `json:"clicks,omitempty"`
	WindowDays     *int     `json:"window_days,omitempty"`
}

// Alert representa uma anomalia detectada em uma campanha. Criado pelo motor
// de alertas; só muda de estado através da operação de resolução.
type Alert struct {
	ID         int64         `json:"id"`
	CampaignID int64         `json:"campaign_id"`
	AlertType  AlertType     `json:"alert_type"`
	Severity   AlertSeverity `json:"severity"`
	Message    string        `json:"message"`
	Details    AlertDetails  `json:"details"`
	Resolved   bool          `json:"resolved"`
	ResolvedAt *time.Time    `json:"resolved_at"`
	CreatedAt  time.Time     `json:"created_at"`
}
