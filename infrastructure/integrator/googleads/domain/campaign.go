package gadsdomain

// Tipos de transporte da API REST do Google Ads. Campos int64 chegam como
// strings no JSON; campos double chegam como números.

type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
}

type SearchResult struct {
	Campaign       Campaign       `json:"campaign"`
	CampaignBudget CampaignBudget `json:"campaignBudget"`
	Metrics        Metrics        `json:"metrics"`
}

type Campaign struct {
	ResourceName           string  `json:"resourceName"`
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Status                 string  `json:"status"`
	AdvertisingChannelType string  `json:"advertisingChannelType"`
	BiddingStrategyType    string  `json:"biddingStrategyType"`
	OptimizationScore      float64 `json:"optimizationScore"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros string `json:"amountMicros"`
}

type Metrics struct {
	CostMicros        string  `json:"costMicros"`
	AverageCost       float64 `json:"averageCost"`
	CostPerConversion float64 `json:"costPerConversion"`
	Conversions       float64 `json:"conversions"`
	ConversionsValue  float64 `json:"conversionsValue"`
	Clicks            string  `json:"clicks"`
	CTR               float64 `json:"ctr"`
	AverageCPC        float64 `json:"averageCpc"`
	AverageCPM        float64 `json:"averageCpm"`
	Impressions       string  `json:"impressions"`
}

// MutateResponse é a resposta comum dos endpoints *:mutate
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}
