package gadsclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
)

// Operações de mutação da API do Google Ads. Cada endpoint *:mutate recebe
// uma lista de operações; aqui cada chamada envia exatamente uma.

type mutateRequest struct {
	Operations []mutateOperation `json:"operations"`
}

type mutateOperation struct {
	Update     map[string]interface{} `json:"update,omitempty"`
	UpdateMask string                 `json:"updateMask,omitempty"`
	Create     map[string]interface{} `json:"create,omitempty"`
}

// UpdateCampaignBudget altera o valor diário do budget da campanha
func (c *GoogleAdsClient) UpdateCampaignBudget(budgetResourceName string, amountMicros int64) (*gadsdomain.MutateResult, error) {
	path := fmt.Sprintf("customers/%s/campaignBudgets:mutate", c.Cfg.GoogleAds.CustomerID)

	request := mutateRequest{
		Operations: []mutateOperation{{
			Update: map[string]interface{}{
				"resourceName": budgetResourceName,
				"amountMicros": strconv.FormatInt(amountMicros, 10),
			},
			UpdateMask: "amount_micros",
		}},
	}

	return c.mutate(path, request)
}

// UpdateAdGroupCriterionBid altera o lance (CPC) de uma palavra-chave
func (c *GoogleAdsClient) UpdateAdGroupCriterionBid(adGroupID, criterionID string, bidMicros int64) (*gadsdomain.MutateResult, error) {
	path := fmt.Sprintf("customers/%s/adGroupCriteria:mutate", c.Cfg.GoogleAds.CustomerID)

	resourceName := fmt.Sprintf("customers/%s/adGroupCriteria/%s~%s", c.Cfg.GoogleAds.CustomerID, adGroupID, criterionID)

	request := mutateRequest{
		Operations: []mutateOperation{{
			Update: map[string]interface{}{
				"resourceName": resourceName,
				"cpcBidMicros": strconv.FormatInt(bidMicros, 10),
			},
			UpdateMask: "cpc_bid_micros",
		}},
	}

	return c.mutate(path, request)
}

// PauseAdGroupCriterion pausa uma palavra-chave
func (c *GoogleAdsClient) PauseAdGroupCriterion(adGroupID, criterionID string) (*gadsdomain.MutateResult, error) {
	path := fmt.Sprintf("customers/%s/adGroupCriteria:mutate", c.Cfg.GoogleAds.CustomerID)

	resourceName := fmt.Sprintf("customers/%s/adGroupCriteria/%s~%s", c.Cfg.GoogleAds.CustomerID, adGroupID, criterionID)

	request := mutateRequest{
		Operations: []mutateOperation{{
			Update: map[string]interface{}{
				"resourceName": resourceName,
				"status":       "PAUSED",
			},
			UpdateMask: "status",
		}},
	}

	return c.mutate(path, request)
}

// PauseAd pausa um anúncio específico do grupo de anúncios
func (c *GoogleAdsClient) PauseAd(adGroupID, adID string) (*gadsdomain.MutateResult, error) {
	path := fmt.Sprintf("customers/%s/adGroupAds:mutate", c.Cfg.GoogleAds.CustomerID)

	resourceName := fmt.Sprintf("customers/%s/adGroupAds/%s~%s", c.Cfg.GoogleAds.CustomerID, adGroupID, adID)

	request := mutateRequest{
		Operations: []mutateOperation{{
			Update: map[string]interface{}{
				"resourceName": resourceName,
				"status":       "PAUSED",
			},
			UpdateMask: "status",
		}},
	}

	return c.mutate(path, request)
}

// AddCampaignNegativeKeyword adiciona uma palavra-chave negativa à campanha
func (c *GoogleAdsClient) AddCampaignNegativeKeyword(campaignID int64, keywordText, matchType string) (*gadsdomain.MutateResult, error) {
	path := fmt.Sprintf("customers/%s/campaignCriteria:mutate", c.Cfg.GoogleAds.CustomerID)

	if matchType == "" {
		matchType = "BROAD"
	}

	campaignResource := fmt.Sprintf("customers/%s/campaigns/%d", c.Cfg.GoogleAds.CustomerID, campaignID)

	request := mutateRequest{
		Operations: []mutateOperation{{
			Create: map[string]interface{}{
				"campaign": campaignResource,
				"negative": true,
				"keyword": map[string]interface{}{
					"text":      keywordText,
					"matchType": matchType,
				},
			},
		}},
	}

	return c.mutate(path, request)
}

func (c *GoogleAdsClient) mutate(path string, request mutateRequest) (*gadsdomain.MutateResult, error) {
	body, err := c.postJSON(path, request)
	if err != nil {
		return nil, err
	}

	var response gadsdomain.MutateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Results) == 0 {
		return nil, errors.New("no data found")
	}

	return &response.Results[0], nil
}
