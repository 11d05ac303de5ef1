package gadsclient

import (
	"net/http"

	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
)

type Client interface {
	SearchCampaignMetrics() ([]gadsdomain.SearchResult, error)
	GetCampaignBudgetResource(campaignID int64) (*gadsdomain.CampaignBudget, error)
	UpdateCampaignBudget(budgetResourceName string, amountMicros int64) (*gadsdomain.MutateResult, error)
	UpdateAdGroupCriterionBid(adGroupID, criterionID string, bidMicros int64) (*gadsdomain.MutateResult, error)
	PauseAdGroupCriterion(adGroupID, criterionID string) (*gadsdomain.MutateResult, error)
	PauseAd(adGroupID, adID string) (*gadsdomain.MutateResult, error)
	AddCampaignNegativeKeyword(campaignID int64, keywordText, matchType string) (*gadsdomain.MutateResult, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo access token
func (c *GoogleAdsClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *GoogleAdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *GoogleAdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
