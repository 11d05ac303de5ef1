package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
)

// Provider abstrai o modelo de linguagem usado na geração de recomendações.
// Exatamente uma implementação fica ativa por deployment, escolhida pela
// configuração AI_PROVIDER.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

// ErrProviderUnavailable indica uma falha transitória do provider (limite de
// requisições, indisponibilidade). Chamadas podem ser repetidas mais tarde.
var ErrProviderUnavailable = errors.New("provider de AI indisponível")

// NewProvider instancia o provider configurado
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.AI.Provider {
	case "gemini":
		return NewGeminiProvider(cfg), nil
	case "claude":
		return NewAnthropicProvider(cfg), nil
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "bedrock":
		return NewBedrockProvider(cfg)
	default:
		return nil, fmt.Errorf("provider de AI não suportado: %s", cfg.AI.Provider)
	}
}

// httpClient monta o cliente HTTP compartilhado pelos providers REST
func httpClient(cfg *config.Config) *http.Client {
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &http.Client{
		Timeout: timeout,
	}
}

// classifyStatus converte um status HTTP de erro em erro transitório ou
// permanente
func classifyStatus(statusCode int, body []byte) error {
	if statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError {
		return errors.Wrapf(ErrProviderUnavailable, "status %d: %s", statusCode, string(body))
	}
	return fmt.Errorf("erro na resposta do provider. Status: %d, Corpo: %s", statusCode, string(body))
}
