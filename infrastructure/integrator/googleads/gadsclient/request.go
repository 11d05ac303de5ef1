package gadsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const tokenRenewedMessage = "token expirado e renovado, por favor tente novamente"

// postJSON envia um POST autenticado para a API do Google Ads. Em caso de
// token expirado, renova e repete a requisição uma única vez.
func (c *GoogleAdsClient) postJSON(path string, payload interface{}) ([]byte, error) {
	body, err := c.doPostJSON(path, payload)
	if err != nil && err.Error() == tokenRenewedMessage {
		return c.doPostJSON(path, payload)
	}
	return body, err
}

func (c *GoogleAdsClient) doPostJSON(path string, payload interface{}) ([]byte, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	accessToken, err := c.TokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.Cfg.GoogleAds.URL, path)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)

	client := &http.Client{
		Timeout: 60 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}
