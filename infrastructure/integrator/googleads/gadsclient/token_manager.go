package gadsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/campaign-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
)

// TokenManager gerencia access tokens OAuth da API do Google Ads. O refresh
// token é de longa duração; o access token expira em cerca de uma hora e é
// renovado sob demanda.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex

	accessToken string
	expiresAt   time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// AccessToken retorna o access token atual, renovando antes se necessário
func (tm *TokenManager) AccessToken() (string, error) {
	if err := tm.EnsureValidToken(); err != nil {
		return "", err
	}

	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()
	return tm.accessToken, nil
}

// EnsureValidToken verifica se o token atual é válido e o renova se necessário
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	valid := tm.accessToken != "" && time.Until(tm.expiresAt) > 0
	tm.TokenRefreshMutex.Unlock()

	if valid {
		return nil
	}

	return tm.RefreshToken()
}

// RefreshToken troca o refresh token configurado por um access token novo
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	logrus.Info("Renovando access token do Google Ads...")

	tokenResponse, err := ExchangeRefreshToken(
		tm.cfg.GoogleAds.ClientID,
		tm.cfg.GoogleAds.ClientSecret,
		tm.cfg.GoogleAds.RefreshToken,
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar access token: %w", err)
	}

	tm.accessToken = tokenResponse.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Access token renovado com sucesso. Expira em: %s",
		tm.expiresAt.Format(time.RFC3339))

	return nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(resp.StatusCode, body)
}

// handleErrorResponse processa erros nas respostas da API
func (tm *TokenManager) handleErrorResponse(statusCode int, body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	if parseErr == nil && errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Google Ads. Status: %s", errorResp.Error.Status)

		tm.TokenRefreshMutex.Lock()
		tm.accessToken = ""
		tm.TokenRefreshMutex.Unlock()

		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
}

// ParseErrorResponse tenta parsear um erro da API do Google Ads
func ParseErrorResponse(body []byte) (*gadsdomain.ErrorResponse, error) {
	var errorResp gadsdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}
