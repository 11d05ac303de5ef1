package gadsclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
)

// campaignMetricsQuery busca as métricas do dia corrente de todas as
// campanhas não removidas da conta
const campaignMetricsQuery = `
	SELECT
		campaign.id,
		campaign.name,
		campaign.status,
		campaign.advertising_channel_type,
		campaign.bidding_strategy_type,
		campaign.optimization_score,
		campaign_budget.resource_name,
		campaign_budget.amount_micros,
		metrics.cost_micros,
		metrics.average_cost,
		metrics.cost_per_conversion,
		metrics.conversions,
		metrics.conversions_value,
		metrics.clicks,
		metrics.ctr,
		metrics.average_cpc,
		metrics.average_cpm,
		metrics.impressions
	FROM campaign
	WHERE campaign.status != 'REMOVED'
		AND segments.date DURING TODAY`

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchCampaignMetrics executa a consulta GAQL de métricas de campanha,
// paginando até esgotar os resultados
func (c *GoogleAdsClient) SearchCampaignMetrics() ([]gadsdomain.SearchResult, error) {
	return c.search(campaignMetricsQuery)
}

// GetCampaignBudgetResource busca o budget associado a uma campanha
func (c *GoogleAdsClient) GetCampaignBudgetResource(campaignID int64) (*gadsdomain.CampaignBudget, error) {
	query := fmt.Sprintf(`
		SELECT campaign.id, campaign_budget.resource_name, campaign_budget.amount_micros
		FROM campaign
		WHERE campaign.id = %d`, campaignID)

	results, err := c.search(query)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, errors.New("no data found")
	}

	return &results[0].CampaignBudget, nil
}

func (c *GoogleAdsClient) search(query string) ([]gadsdomain.SearchResult, error) {
	path := fmt.Sprintf("customers/%s/googleAds:search", c.Cfg.GoogleAds.CustomerID)

	results := make([]gadsdomain.SearchResult, 0)
	pageToken := ""

	for {
		body, err := c.postJSON(path, searchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, err
		}

		var response gadsdomain.SearchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		results = append(results, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return results, nil
}
