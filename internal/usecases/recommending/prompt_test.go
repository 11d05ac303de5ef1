package recommending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

func TestBuildPrompt_IncludesTemporalContext(t *testing.T) {
	snapshot := latestSnapshot(domain.CampaignStatusEnabled)
	targets := testConfig().Analysis.PerformanceTargets()

	// Terça-feira à tarde: sem marcação de fim de semana nem aviso de
	// métricas parciais
	tuesday := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	prompt := BuildPrompt(snapshot, nil, nil, targets, 7, tuesday)

	assert.Contains(t, prompt, "## Contexto temporal")
	assert.Contains(t, prompt, "Dia da semana: terça-feira")
	assert.Contains(t, prompt, "Hora da análise: 15:30")
	assert.NotContains(t, prompt, "(fim de semana)")
	assert.NotContains(t, prompt, "parciais")
}

func TestBuildPrompt_WeekendMorningFlagsPartialData(t *testing.T) {
	snapshot := latestSnapshot(domain.CampaignStatusEnabled)
	targets := testConfig().Analysis.PerformanceTargets()

	saturday := time.Date(2026, time.March, 14, 8, 5, 0, 0, time.UTC)
	prompt := BuildPrompt(snapshot, nil, nil, targets, 7, saturday)

	assert.Contains(t, prompt, "Dia da semana: sábado (fim de semana)")
	assert.Contains(t, prompt, "Hora da análise: 08:05")
	assert.Contains(t, prompt, "métricas de hoje ainda são parciais")
}

func TestBuildPrompt_IncludesCampaignAndTargets(t *testing.T) {
	snapshot := latestSnapshot(domain.CampaignStatusEnabled)
	targets := testConfig().Analysis.PerformanceTargets()

	alerts := []*domain.Alert{
		{Severity: domain.SeverityCritical, AlertType: domain.AlertLowROAS, Message: "ROAS abaixo do piso"},
	}

	prompt := BuildPrompt(snapshot, nil, alerts, targets, 7, time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC))

	assert.Contains(t, prompt, "Campanha Teste")
	assert.Contains(t, prompt, "## Metas de performance")
	assert.Contains(t, prompt, "## Alertas abertos")
	assert.Contains(t, prompt, "ROAS abaixo do piso")
	assert.Contains(t, prompt, "Nunca proponha mais de 7 ações")
}
