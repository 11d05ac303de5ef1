package domain

import (
	"time"
)

// CampaignStatus representa o status de uma campanha no Google Ads
type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// HealthStatus classifica a saúde geral de uma campanha com base nas metas
type HealthStatus string

const (
	HealthCritical  HealthStatus = "CRITICAL"
	HealthWarning   HealthStatus = "WARNING"
	HealthGood      HealthStatus = "GOOD"
	HealthExcellent HealthStatus = "EXCELLENT"
)

// MetricSnapshot representa uma observação das métricas de uma campanha em um
// instante. Imutável depois de gravado; no máximo um snapshot por
// (campaign_id, timestamp).
type MetricSnapshot struct {
	ID              int64          `json:"id"`
	CampaignID      int64          `json:"campaign_id"`
	CampaignName    string         `json:"campaign_name"`
	Timestamp       time.Time      `json:"timestamp"`
	Budget          *float64       `json:"budget"`
	Status          CampaignStatus `json:"status"`
	BidStrategyType string         `json:"bid_strategy_type"`
	// OptimizationScore vai de 0 a 100; nil quando a API não retorna o campo
	OptimizationScore *float64 `json:"optimization_score"`
	CampaignType      string   `json:"campaign_type"`

	// Métricas de custo
	Cost        float64 `json:"cost"`
	AvgCost     float64 `json:"avg_cost"`
	CostPerConv float64 `json:"cost_per_conv"`

	// Métricas de conversão
	Conversions      float64 `json:"conversions"`
	ConvValue        float64 `json:"conv_value"`
	ConvValuePerCost float64 `json:"conv_value_per_cost"`

	// Métricas de clique
	Clicks int64   `json:"clicks"`
	CTR    float64 `json:"ctr"` // porcentagem
	AvgCPM float64 `json:"avg_cpm"`

	// Métricas de impressão
	Impressions int64 `json:"impressions"`

	// Métricas derivadas
	ROAS float64 `json:"roas"`
	CPC  float64 `json:"cpc"`

	// QualityScore vai de 1 a 10; nil quando indisponível
	QualityScore *float64 `json:"quality_score"`

	CreatedAt time.Time `json:"created_at"`
}

// MetricTotals agrega as métricas de todas as campanhas em um período
type MetricTotals struct {
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	ConvValue   float64 `json:"conv_value"`
	Clicks      int64   `json:"clicks"`
	Impressions int64   `json:"impressions"`
}

// ROAS calcula o retorno agregado do período, 0 quando não houve custo
func (t *MetricTotals) ROAS() float64 {
	if t.Cost == 0 {
		return 0
	}
	return t.ConvValue / t.Cost
}

// PerformanceTargets são as metas de performance usadas para classificar a
// saúde de uma campanha e para disparar alertas
type PerformanceTargets struct {
	CTRMin                float64
	CPCMax                float64
	ROASMin               float64
	ROASCriticalFloor     float64
	OptimizationScoreMin  float64
	OptimizationScoreCrit float64
	BudgetUsedFraction    float64
}

// ComputeDerivedMetrics calcula ROAS, CPC, avg_cost e conv_value_per_cost com
// proteção contra divisão por zero (ROAS = 0 quando custo = 0, CPC = 0 quando
// não há cliques)
func (m *MetricSnapshot) ComputeDerivedMetrics() {
	if m.Cost > 0 {
		m.ROAS = m.ConvValue / m.Cost
	} else {
		m.ROAS = 0
	}
	m.ConvValuePerCost = m.ROAS

	if m.Clicks > 0 {
		m.CPC = m.Cost / float64(m.Clicks)
	} else {
		m.CPC = 0
	}

	if m.Conversions > 0 {
		m.AvgCost = m.Cost / m.Conversions
	} else {
		m.AvgCost = 0
	}
}

// IsWeekend indica se o snapshot foi coletado em um sábado ou domingo
func (m *MetricSnapshot) IsWeekend() bool {
	wd := m.Timestamp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CalculateHealth classifica a campanha de acordo com as metas configuradas
func (m *MetricSnapshot) CalculateHealth(targets PerformanceTargets) HealthStatus {
	optScore := 50.0
	if m.OptimizationScore != nil {
		optScore = *m.OptimizationScore
	}

	if (m.Conversions > 0 && m.ROAS < targets.ROASCriticalFloor) || optScore < targets.OptimizationScoreCrit {
		return HealthCritical
	}

	if m.CTR < targets.CTRMin ||
		m.CPC > targets.CPCMax ||
		(m.Conversions > 0 && m.ROAS < targets.ROASMin) ||
		optScore < targets.OptimizationScoreMin {
		return HealthWarning
	}

	if m.CTR >= 3.0 && m.ROAS >= 2.5 && optScore >= 80 {
		return HealthExcellent
	}

	return HealthGood
}
