package trending

import (
	"math"
	"time"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// trendNoiseThreshold é a variação relativa mínima de ROAS para sair de
// STABLE. Abaixo de 5% a mudança é tratada como ruído.
const trendNoiseThreshold = 0.05

// Trender agrega o histórico de snapshots de uma campanha em um resumo de
// tendência. Função pura: não acessa banco nem APIs externas.
type Trender interface {
	Aggregate(campaignID int64, snapshots []*domain.MetricSnapshot, windowDays int) *domain.TrendSummary
}

type Service struct{}

func NewService() Trender {
	return &Service{}
}

// Aggregate calcula o resumo da janela. Os snapshots devem estar em ordem
// cronológica ascendente, como retornados pelo repositório.
//
// Com menos de dois snapshots não há sinal de tendência: a direção fica
// STABLE e as médias por partição e os deltas ficam nil.
func (s *Service) Aggregate(campaignID int64, snapshots []*domain.MetricSnapshot, windowDays int) *domain.TrendSummary {
	summary := &domain.TrendSummary{
		CampaignID:     campaignID,
		WindowDays:     windowDays,
		TotalSnapshots: len(snapshots),
		Direction:      domain.TrendStable,
	}

	if len(snapshots) == 0 {
		return summary
	}

	summary.CTR = metricStat(snapshots, func(m *domain.MetricSnapshot) float64 { return m.CTR }, false)
	summary.CPC = metricStat(snapshots, func(m *domain.MetricSnapshot) float64 { return m.CPC }, true)
	summary.ROAS = metricStat(snapshots, func(m *domain.MetricSnapshot) float64 { return m.ROAS }, false)
	summary.Cost = metricStat(snapshots, func(m *domain.MetricSnapshot) float64 { return m.Cost }, true)
	summary.Conversions = metricStat(snapshots, func(m *domain.MetricSnapshot) float64 { return m.Conversions }, false)

	for _, snapshot := range snapshots {
		summary.TotalConversions += snapshot.Conversions
		if snapshot.Conversions > 0 {
			summary.DaysWithConversions++
		}
	}

	summary.BestSnapshot, summary.WorstSnapshot = bestAndWorstByROAS(snapshots)

	if len(snapshots) < 2 {
		return summary
	}

	s.fillWeekdayPattern(summary, snapshots)
	s.fillDeltas(summary, snapshots)
	s.fillDirection(summary, snapshots)

	return summary
}

// fillDirection compara a média de ROAS do terço mais recente da janela com a
// do terço mais antigo
func (s *Service) fillDirection(summary *domain.TrendSummary, snapshots []*domain.MetricSnapshot) {
	segment := int(math.Ceil(float64(len(snapshots)) / 3.0))

	oldest := snapshots[:segment]
	newest := snapshots[len(snapshots)-segment:]

	oldMean := meanROAS(oldest)
	newMean := meanROAS(newest)

	if oldMean == 0 {
		if newMean > 0 {
			summary.Direction = domain.TrendImproving
			summary.DirectionChange = 1
		}
		return
	}

	change := (newMean - oldMean) / oldMean
	summary.DirectionChange = change

	switch {
	case change > trendNoiseThreshold:
		summary.Direction = domain.TrendImproving
	case change < -trendNoiseThreshold:
		summary.Direction = domain.TrendDeclining
	}
}

func (s *Service) fillWeekdayPattern(summary *domain.TrendSummary, snapshots []*domain.MetricSnapshot) {
	var weekdayROAS, weekendROAS, weekdayConv, weekendConv float64
	var weekdayCount, weekendCount int

	for _, snapshot := range snapshots {
		if snapshot.IsWeekend() {
			weekendROAS += snapshot.ROAS
			weekendConv += snapshot.Conversions
			weekendCount++
		} else {
			weekdayROAS += snapshot.ROAS
			weekdayConv += snapshot.Conversions
			weekdayCount++
		}
	}

	// O padrão só é reportado quando as duas partições têm dados; partições
	// vazias ficam nil, que é diferente de média zero
	if weekdayCount == 0 || weekendCount == 0 {
		return
	}

	summary.WeekdayAvgROAS = ptr(weekdayROAS / float64(weekdayCount))
	summary.WeekendAvgROAS = ptr(weekendROAS / float64(weekendCount))
	summary.WeekdayAvgConversions = ptr(weekdayConv / float64(weekdayCount))
	summary.WeekendAvgConversions = ptr(weekendConv / float64(weekendCount))
}

func (s *Service) fillDeltas(summary *domain.TrendSummary, snapshots []*domain.MetricSnapshot) {
	last := snapshots[len(snapshots)-1]
	previous := snapshots[len(snapshots)-2]

	summary.DailyROASChange = relativeChange(previous.ROAS, last.ROAS)
	summary.DailyCTRChange = relativeChange(previous.CTR, last.CTR)
	summary.DailyConvDelta = ptr(last.Conversions - previous.Conversions)

	weekAgo := findClosestBefore(snapshots, last.Timestamp.Add(-7*24*time.Hour))
	if weekAgo == nil {
		return
	}

	summary.WeeklyROASChange = relativeChange(weekAgo.ROAS, last.ROAS)
	summary.WeeklyCTRChange = relativeChange(weekAgo.CTR, last.CTR)
	summary.WeeklyCPCChange = relativeChange(weekAgo.CPC, last.CPC)
}

// findClosestBefore retorna o snapshot mais recente com timestamp menor ou
// igual ao limite
func findClosestBefore(snapshots []*domain.MetricSnapshot, limit time.Time) *domain.MetricSnapshot {
	for i := len(snapshots) - 1; i >= 0; i-- {
		if !snapshots[i].Timestamp.After(limit) {
			return snapshots[i]
		}
	}
	return nil
}

// relativeChange calcula a variação relativa entre dois valores. Base zero
// não tem variação definida e retorna nil.
func relativeChange(base, current float64) *float64 {
	if base == 0 {
		return nil
	}
	return ptr((current - base) / base)
}

func metricStat(snapshots []*domain.MetricSnapshot, value func(*domain.MetricSnapshot) float64, lowerIsBetter bool) domain.MetricStat {
	stat := domain.MetricStat{
		Current: value(snapshots[len(snapshots)-1]),
		Best:    value(snapshots[0]),
		Worst:   value(snapshots[0]),
	}

	var sum float64
	for _, snapshot := range snapshots {
		v := value(snapshot)
		sum += v

		if lowerIsBetter {
			stat.Best = math.Min(stat.Best, v)
			stat.Worst = math.Max(stat.Worst, v)
		} else {
			stat.Best = math.Max(stat.Best, v)
			stat.Worst = math.Min(stat.Worst, v)
		}
	}

	stat.Average = sum / float64(len(snapshots))

	return stat
}

func bestAndWorstByROAS(snapshots []*domain.MetricSnapshot) (*domain.MetricSnapshot, *domain.MetricSnapshot) {
	best := snapshots[0]
	worst := snapshots[0]

	for _, snapshot := range snapshots {
		if snapshot.ROAS > best.ROAS {
			best = snapshot
		}
		if snapshot.ROAS < worst.ROAS {
			worst = snapshot
		}
	}

	return best, worst
}

func meanROAS(snapshots []*domain.MetricSnapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}

	var sum float64
	for _, snapshot := range snapshots {
		sum += snapshot.ROAS
	}

	return sum / float64(len(snapshots))
}

func ptr(v float64) *float64 {
	return &v
}
