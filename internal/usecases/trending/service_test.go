package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// baseDate é uma segunda-feira, para controlar a partição útil/fim de semana
var baseDate = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

func snapshotAt(day int, roas float64) *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		CampaignID:  42,
		Timestamp:   baseDate.AddDate(0, 0, day),
		ROAS:        roas,
		CTR:         2.0,
		CPC:         1.0,
		Cost:        10.0,
		Conversions: 1,
	}
}

func TestService_Aggregate_EmptyWindow(t *testing.T) {
	service := NewService()

	summary := service.Aggregate(42, nil, 7)

	assert.Equal(t, int64(42), summary.CampaignID)
	assert.Equal(t, 7, summary.WindowDays)
	assert.Equal(t, 0, summary.TotalSnapshots)
	assert.Equal(t, domain.TrendStable, summary.Direction)
	assert.Nil(t, summary.BestSnapshot)
	assert.Nil(t, summary.DailyROASChange)
}

func TestService_Aggregate_SingleSnapshot(t *testing.T) {
	service := NewService()

	summary := service.Aggregate(42, []*domain.MetricSnapshot{snapshotAt(0, 2.0)}, 7)

	assert.Equal(t, 1, summary.TotalSnapshots)
	assert.Equal(t, domain.TrendStable, summary.Direction)
	assert.Equal(t, 2.0, summary.ROAS.Current)
	assert.Equal(t, 2.0, summary.ROAS.Average)
	// Com um único snapshot não há deltas nem padrão de dias
	assert.Nil(t, summary.DailyROASChange)
	assert.Nil(t, summary.WeekdayAvgROAS)
	assert.NotNil(t, summary.BestSnapshot)
}

func TestService_Aggregate_Direction(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		roas     []float64
		expected domain.TrendDirection
	}{
		{
			name:     "ROAS crescente além do ruído é IMPROVING",
			roas:     []float64{1.0, 1.0, 1.0, 1.5, 2.0, 2.0},
			expected: domain.TrendImproving,
		},
		{
			name:     "ROAS decrescente além do ruído é DECLINING",
			roas:     []float64{2.0, 2.0, 2.0, 1.5, 1.0, 1.0},
			expected: domain.TrendDeclining,
		},
		{
			name:     "Variação dentro da banda de 5% é STABLE",
			roas:     []float64{2.0, 2.0, 2.0, 2.0, 2.04, 2.04},
			expected: domain.TrendStable,
		},
		{
			name:     "Base zero com melhora vira IMPROVING",
			roas:     []float64{0, 0, 0, 1.0, 1.5, 1.5},
			expected: domain.TrendImproving,
		},
		{
			name:     "Base zero sem melhora permanece STABLE",
			roas:     []float64{0, 0, 0, 0, 0, 0},
			expected: domain.TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots := make([]*domain.MetricSnapshot, 0, len(tt.roas))
			for i, roas := range tt.roas {
				snapshots = append(snapshots, snapshotAt(i, roas))
			}

			summary := service.Aggregate(42, snapshots, len(tt.roas))

			assert.Equal(t, tt.expected, summary.Direction)
		})
	}
}

func TestService_Aggregate_SegmentIsCeilOfThird(t *testing.T) {
	service := NewService()

	// Com 4 snapshots o segmento é ⌈4/3⌉ = 2: compara a média dos dois
	// primeiros (1.0) com a dos dois últimos (2.0)
	snapshots := []*domain.MetricSnapshot{
		snapshotAt(0, 1.0),
		snapshotAt(1, 1.0),
		snapshotAt(2, 2.0),
		snapshotAt(3, 2.0),
	}

	summary := service.Aggregate(42, snapshots, 4)

	assert.Equal(t, domain.TrendImproving, summary.Direction)
	assert.InDelta(t, 1.0, summary.DirectionChange, 0.001)
}

func TestService_Aggregate_MetricStats(t *testing.T) {
	service := NewService()

	s1 := snapshotAt(0, 1.0)
	s1.CPC = 2.0
	s2 := snapshotAt(1, 3.0)
	s2.CPC = 0.5
	s3 := snapshotAt(2, 2.0)
	s3.CPC = 1.0

	summary := service.Aggregate(42, []*domain.MetricSnapshot{s1, s2, s3}, 3)

	// Para ROAS maior é melhor
	assert.Equal(t, 2.0, summary.ROAS.Current)
	assert.Equal(t, 3.0, summary.ROAS.Best)
	assert.Equal(t, 1.0, summary.ROAS.Worst)
	assert.InDelta(t, 2.0, summary.ROAS.Average, 0.001)

	// Para CPC menor é melhor
	assert.Equal(t, 1.0, summary.CPC.Current)
	assert.Equal(t, 0.5, summary.CPC.Best)
	assert.Equal(t, 2.0, summary.CPC.Worst)

	assert.Equal(t, s2, summary.BestSnapshot)
	assert.Equal(t, s1, summary.WorstSnapshot)
}

func TestService_Aggregate_WeekdayPattern(t *testing.T) {
	service := NewService()

	// Segunda (dia 0) a domingo (dia 6): 5 dias úteis e 2 de fim de semana
	snapshots := make([]*domain.MetricSnapshot, 0, 7)
	for day := 0; day < 7; day++ {
		roas := 2.0
		if day >= 5 { // sábado e domingo
			roas = 4.0
		}
		snapshots = append(snapshots, snapshotAt(day, roas))
	}

	summary := service.Aggregate(42, snapshots, 7)

	assert.True(t, summary.HasWeekdayPattern())
	assert.InDelta(t, 2.0, *summary.WeekdayAvgROAS, 0.001)
	assert.InDelta(t, 4.0, *summary.WeekendAvgROAS, 0.001)
}

func TestService_Aggregate_WeekdayPattern_OnlyWeekdays(t *testing.T) {
	service := NewService()

	// Segunda a sexta: sem partição de fim de semana, o padrão fica nil
	snapshots := make([]*domain.MetricSnapshot, 0, 5)
	for day := 0; day < 5; day++ {
		snapshots = append(snapshots, snapshotAt(day, 2.0))
	}

	summary := service.Aggregate(42, snapshots, 5)

	assert.False(t, summary.HasWeekdayPattern())
	assert.Nil(t, summary.WeekdayAvgROAS)
	assert.Nil(t, summary.WeekendAvgConversions)
}

func TestService_Aggregate_Deltas(t *testing.T) {
	service := NewService()

	snapshots := make([]*domain.MetricSnapshot, 0, 8)
	for day := 0; day < 8; day++ {
		s := snapshotAt(day, 2.0)
		s.CTR = 2.0
		s.Conversions = 5
		snapshots = append(snapshots, s)
	}
	// Ontem e hoje divergem para gerar os deltas diários
	snapshots[6].ROAS = 2.0
	snapshots[7].ROAS = 3.0
	snapshots[7].Conversions = 8

	summary := service.Aggregate(42, snapshots, 8)

	assert.NotNil(t, summary.DailyROASChange)
	assert.InDelta(t, 0.5, *summary.DailyROASChange, 0.001)
	assert.NotNil(t, summary.DailyConvDelta)
	assert.InDelta(t, 3.0, *summary.DailyConvDelta, 0.001)

	// O snapshot de 7 dias atrás existe, então os deltas semanais aparecem
	assert.NotNil(t, summary.WeeklyROASChange)
	assert.InDelta(t, 0.5, *summary.WeeklyROASChange, 0.001)
}

func TestService_Aggregate_DeltaWithZeroBase(t *testing.T) {
	service := NewService()

	s1 := snapshotAt(0, 0)
	s2 := snapshotAt(1, 2.0)

	summary := service.Aggregate(42, []*domain.MetricSnapshot{s1, s2}, 2)

	// Variação relativa sobre base zero não é definida
	assert.Nil(t, summary.DailyROASChange)
}

func TestService_Aggregate_ConversionCounters(t *testing.T) {
	service := NewService()

	s1 := snapshotAt(0, 2.0)
	s1.Conversions = 0
	s2 := snapshotAt(1, 2.0)
	s2.Conversions = 3
	s3 := snapshotAt(2, 2.0)
	s3.Conversions = 2

	summary := service.Aggregate(42, []*domain.MetricSnapshot{s1, s2, s3}, 3)

	assert.Equal(t, 5.0, summary.TotalConversions)
	assert.Equal(t, 2, summary.DaysWithConversions)
}
