package recommending

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

// promptHeader fixa o contrato de saída com o modelo: somente JSON, sem
// markdown e sem texto fora do array
const promptHeader = `Você é um especialista em otimização de campanhas do Google Ads.
Analise os dados da campanha abaixo e proponha ações de otimização.

Responda SOMENTE com um array JSON válido, sem cercas de markdown e sem
nenhum texto antes ou depois do array. Cada elemento do array deve seguir
exatamente este formato:

{
  "action_type": "INCREASE_BUDGET | DECREASE_BUDGET | INCREASE_BID | REDUCE_BID | PAUSE_KEYWORD | PAUSE_AD | ADD_NEGATIVE_KEYWORD",
  "priority": "HIGH | MEDIUM | LOW",
  "reason": "justificativa objetiva baseada nos dados",
  "expected_impact": "impacto esperado da ação",
  "confidence": 0.85,
  "current_value": "valor atual legível",
  "proposed_value": "valor proposto legível",
  "target": { ... campos específicos do tipo da ação ... }
}

Campos do "target" por tipo de ação (valores monetários em micros, onde
1 unidade de moeda = 1000000 micros):
- INCREASE_BUDGET / DECREASE_BUDGET: {"new_budget_micros": 25000000, "current_budget_micros": 20000000}
- INCREASE_BID / REDUCE_BID: {"keyword_id": "123", "ad_group_id": "456", "new_bid_micros": 800000, "current_bid_micros": 1000000}
- PAUSE_KEYWORD: {"keyword_id": "123", "ad_group_id": "456"}
- PAUSE_AD: {"ad_id": "789", "ad_group_id": "456"}
- ADD_NEGATIVE_KEYWORD: {"keyword_text": "gratis", "match_type": "BROAD"}

Regras:
- "confidence" é um número entre 0 e 1.
- O valor proposto deve ser diferente do valor atual.
- Nunca proponha mais de %d ações.
- Prefira poucas ações de alta confiança a muitas ações especulativas.

Exemplo de resposta válida:
[{"action_type":"DECREASE_BUDGET","priority":"HIGH","reason":"ROAS de 0.8 abaixo do piso de 1.0 com budget quase esgotado","expected_impact":"Redução de desperdício de verba até a campanha recuperar retorno","confidence":0.9,"current_value":"R$20.00/dia","proposed_value":"R$14.00/dia","target":{"new_budget_micros":14000000,"current_budget_micros":20000000}}]
`

// BuildPrompt monta o prompt de análise de uma campanha com o snapshot mais
// recente, o resumo de tendência, os alertas abertos, as metas configuradas e
// o momento da análise (dia da semana e hora mudam a leitura das métricas)
func BuildPrompt(
	snapshot *domain.MetricSnapshot,
	trend *domain.TrendSummary,
	alerts []*domain.Alert,
	targets domain.PerformanceTargets,
	maxProposals int,
	now time.Time,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, promptHeader, maxProposals)

	b.WriteString("\n## Campanha\n")
	fmt.Fprintf(&b, "- Nome: %s (ID %d)\n", snapshot.CampaignName, snapshot.CampaignID)
	fmt.Fprintf(&b, "- Status: %s | Tipo: %s | Estratégia de lance: %s\n",
		snapshot.Status, snapshot.CampaignType, snapshot.BidStrategyType)
	if snapshot.Budget != nil {
		fmt.Fprintf(&b, "- Budget diário: R$%.2f\n", *snapshot.Budget)
	}
	if snapshot.OptimizationScore != nil {
		fmt.Fprintf(&b, "- Optimization score: %.0f/100\n", *snapshot.OptimizationScore)
	}

	b.WriteString("\n## Métricas do dia\n")
	fmt.Fprintf(&b, "- Custo: R$%.2f | Conversões: %.1f | Valor de conversão: R$%.2f\n",
		snapshot.Cost, snapshot.Conversions, snapshot.ConvValue)
	fmt.Fprintf(&b, "- ROAS: %.2f | CPC: R$%.2f | CTR: %.2f%%\n",
		snapshot.ROAS, snapshot.CPC, snapshot.CTR)
	fmt.Fprintf(&b, "- Cliques: %d | Impressões: %d | Custo por conversão: R$%.2f\n",
		snapshot.Clicks, snapshot.Impressions, snapshot.CostPerConv)

	writeTemporalSection(&b, now)
	writeTrendSection(&b, trend)
	writeAlertsSection(&b, alerts)

	b.WriteString("\n## Metas de performance\n")
	fmt.Fprintf(&b, "- CTR mínimo: %.2f%%\n", targets.CTRMin)
	fmt.Fprintf(&b, "- CPC máximo: R$%.2f\n", targets.CPCMax)
	fmt.Fprintf(&b, "- ROAS mínimo: %.2f (piso crítico %.2f)\n", targets.ROASMin, targets.ROASCriticalFloor)
	fmt.Fprintf(&b, "- Optimization score mínimo: %.0f\n", targets.OptimizationScoreMin)

	return b.String()
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

func writeTemporalSection(b *strings.Builder, now time.Time) {
	b.WriteString("\n## Contexto temporal\n")

	fmt.Fprintf(b, "- Dia da semana: %s", weekdayNames[now.Weekday()])
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		b.WriteString(" (fim de semana)")
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "- Hora da análise: %02d:%02d\n", now.Hour(), now.Minute())
	if now.Hour() < 12 {
		b.WriteString("- As métricas de hoje ainda são parciais; não conclua queda de desempenho só pelo dia atual\n")
	}
}

func writeTrendSection(b *strings.Builder, trend *domain.TrendSummary) {
	if trend == nil || trend.TotalSnapshots == 0 {
		return
	}

	fmt.Fprintf(b, "\n## Tendência (janela de %d dias, %d snapshots)\n",
		trend.WindowDays, trend.TotalSnapshots)
	fmt.Fprintf(b, "- Direção: %s (variação de ROAS de %.1f%% entre o início e o fim da janela)\n",
		trend.Direction, trend.DirectionChange*100)
	fmt.Fprintf(b, "- ROAS: atual %.2f | média %.2f | melhor %.2f | pior %.2f\n",
		trend.ROAS.Current, trend.ROAS.Average, trend.ROAS.Best, trend.ROAS.Worst)
	fmt.Fprintf(b, "- CTR: atual %.2f%% | média %.2f%%\n", trend.CTR.Current, trend.CTR.Average)
	fmt.Fprintf(b, "- CPC: atual R$%.2f | média R$%.2f\n", trend.CPC.Current, trend.CPC.Average)
	fmt.Fprintf(b, "- Conversões na janela: %.1f (%d dias com conversão)\n",
		trend.TotalConversions, trend.DaysWithConversions)

	if trend.HasWeekdayPattern() {
		fmt.Fprintf(b, "- ROAS médio em dias úteis %.2f vs fim de semana %.2f\n",
			*trend.WeekdayAvgROAS, *trend.WeekendAvgROAS)
	}
	if trend.DailyROASChange != nil {
		fmt.Fprintf(b, "- Variação diária de ROAS: %.1f%%\n", *trend.DailyROASChange*100)
	}
	if trend.WeeklyROASChange != nil {
		fmt.Fprintf(b, "- Variação semanal de ROAS: %.1f%%\n", *trend.WeeklyROASChange*100)
	}
}

func writeAlertsSection(b *strings.Builder, alerts []*domain.Alert) {
	if len(alerts) == 0 {
		return
	}

	b.WriteString("\n## Alertas abertos\n")
	for _, alert := range alerts {
		fmt.Fprintf(b, "- [%s] %s: %s\n", alert.Severity, alert.AlertType, alert.Message)
	}
}
