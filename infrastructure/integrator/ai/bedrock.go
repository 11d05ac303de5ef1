package ai

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-optimizer-api/internal/config"
)

// bedrockAnthropicVersion é a versão exigida pelos modelos Anthropic no
// Bedrock
const bedrockAnthropicVersion = "bedrock-2023-05-31"

type BedrockProvider struct {
	cfg    *config.Config
	client *bedrockruntime.Client
}

func NewBedrockProvider(cfg *config.Config) (*BedrockProvider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AI.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}

	return &BedrockProvider{
		cfg:    cfg,
		client: bedrockruntime.NewFromConfig(awsCfg),
	}, nil
}

func (p *BedrockProvider) Name() string  { return "bedrock" }
func (p *BedrockProvider) Model() string { return p.cfg.AI.BedrockModelID }

type bedrockRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Messages         []anthropicMessage `json:"messages"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (p *BedrockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(bedrockRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        p.cfg.AI.MaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	modelID := p.cfg.AI.BedrockModelID
	contentType := "application/json"

	output, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &modelID,
		ContentType: &contentType,
		Body:        requestBody,
	})
	if err != nil {
		return "", errors.Wrap(ErrProviderUnavailable, err.Error())
	}

	var response bedrockResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("resposta do Bedrock sem conteúdo")
	}

	return response.Content[0].Text, nil
}
