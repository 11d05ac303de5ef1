package domain

// TrendDirection indica a tendência de performance de uma campanha dentro da
// janela de análise
type TrendDirection string

const (
	TrendImproving TrendDirection = "IMPROVING"
	TrendDeclining TrendDirection = "DECLINING"
	TrendStable    TrendDirection = "STABLE"
)

// MetricStat agrega o valor atual e as estatísticas de uma métrica numérica
// dentro da janela de análise
type MetricStat struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Best    float64 `json:"best"`
	Worst   float64 `json:"worst"`
}

// TrendSummary é o resultado da agregação do histórico de snapshots de uma
// campanha. Calculado sob demanda, nunca persistido.
//
// Os campos *float64 de média por partição (dias úteis / fim de semana) e os
// deltas ficam nil quando não há snapshots suficientes para calculá-los —
// nil significa "sem sinal", o que é diferente de zero.
type TrendSummary struct {
	CampaignID     int64 `json:"campaign_id"`
	WindowDays     int   `json:"window_days"`
	TotalSnapshots int   `json:"total_snapshots"`

	CTR         MetricStat `json:"ctr"`
	CPC         MetricStat `json:"cpc"`
	ROAS        MetricStat `json:"roas"`
	Cost        MetricStat `json:"cost"`
	Conversions MetricStat `json:"conversions"`

	TotalConversions    float64 `json:"total_conversions"`
	DaysWithConversions int     `json:"days_with_conversions"`

	// Padrão dias úteis vs fim de semana
	WeekdayAvgROAS        *float64 `json:"weekday_avg_roas"`
	WeekendAvgROAS        *float64 `json:"weekend_avg_roas"`
	WeekdayAvgConversions *float64 `json:"weekday_avg_conversions"`
	WeekendAvgConversions *float64 `json:"weekend_avg_conversions"`

	// Deltas de curto prazo (hoje vs ontem e vs 7 dias atrás), em variação
	// percentual relativa
	DailyROASChange    *float64 `json:"daily_roas_change"`
	DailyCTRChange     *float64 `json:"daily_ctr_change"`
	DailyConvDelta     *float64 `json:"daily_conv_delta"`
	WeeklyROASChange   *float64 `json:"weekly_roas_change"`
	WeeklyCTRChange    *float64 `json:"weekly_ctr_change"`
	WeeklyCPCChange    *float64 `json:"weekly_cpc_change"`

	// Direção calculada comparando a média de ROAS do terço mais recente da
	// janela contra o terço mais antigo
	Direction TrendDirection `json:"direction"`
	// DirectionChange é a variação relativa que determinou a direção
	DirectionChange float64 `json:"direction_change"`

	// Referências ao melhor e pior snapshot da janela (por ROAS)
	BestSnapshot  *MetricSnapshot `json:"best_snapshot,omitempty"`
	WorstSnapshot *MetricSnapshot `json:"worst_snapshot,omitempty"`
}

// HasWeekdayPattern indica se há dados suficientes para comparar dias úteis
// com fim de semana
func (t *TrendSummary) HasWeekdayPattern() bool {
	return t.WeekdayAvgROAS != nil && t.WeekendAvgROAS != nil
}
