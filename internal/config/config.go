package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	GoogleAds   GoogleAds   `mapstructure:",squash"`
	AI          AI          `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	MonitorSync MonitorSync `mapstructure:",squash"`
	Analysis    Analysis    `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	CustomerID     string `mapstructure:"google_ads_customer_id"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	RefreshToken   string `mapstructure:"google_ads_refresh_token"`
}

// AI configura o provider de inteligência artificial usado na geração de
// recomendações. Exatamente um provider fica ativo por deployment.
type AI struct {
	Provider       string `mapstructure:"ai_provider"` // gemini | claude | openai | bedrock
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	GeminiModel    string `mapstructure:"gemini_model"`
	AnthropicKey   string `mapstructure:"anthropic_api_key"`
	AnthropicModel string `mapstructure:"anthropic_model"`
	OpenAIAPIKey   string `mapstructure:"openai_api_key"`
	OpenAIModel    string `mapstructure:"openai_model"`
	BedrockModelID string `mapstructure:"bedrock_model_id"`
	AWSRegion      string `mapstructure:"aws_region"`
	MaxTokens      int    `mapstructure:"ai_max_tokens"`
	TimeoutSeconds int    `mapstructure:"ai_timeout_seconds"`
	MaxRetries     int    `mapstructure:"ai_max_retries"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// MonitorSync configura o ciclo periódico de monitoramento (coleta de
// métricas + avaliação de alertas) e o disparo automático da análise com AI
type MonitorSync struct {
	CronSchedule      string `mapstructure:"monitor_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"monitor_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"monitor_sync_enabled"`
	AnalyzerAutoRun   bool   `mapstructure:"analyzer_auto_run"`
}

// Analysis concentra a janela de análise, o limite de propostas e as metas de
// performance que disparam alertas
type Analysis struct {
	LookbackDays       int     `mapstructure:"analysis_lookback_days"`
	MaxProposals       int     `mapstructure:"analysis_max_proposals"`
	TargetCTRMin       float64 `mapstructure:"target_ctr_min"`
	TargetCPCMax       float64 `mapstructure:"target_cpc_max"`
	TargetROASMin      float64 `mapstructure:"target_roas_min"`
	CriticalROASFloor  float64 `mapstructure:"critical_roas_floor"`
	OptScoreWarnFloor  float64 `mapstructure:"target_optimization_score_min"`
	OptScoreCritFloor  float64 `mapstructure:"critical_optimization_score_floor"`
	BudgetUsedFraction float64 `mapstructure:"budget_used_fraction"`
}

// PerformanceTargets converte as metas configuradas para o tipo de domínio
func (a Analysis) PerformanceTargets() domain.PerformanceTargets {
	return domain.PerformanceTargets{
		CTRMin:                a.TargetCTRMin,
		CPCMax:                a.TargetCPCMax,
		ROASMin:               a.TargetROASMin,
		ROASCriticalFloor:     a.CriticalROASFloor,
		OptimizationScoreMin:  a.OptScoreWarnFloor,
		OptimizationScoreCrit: a.OptScoreCritFloor,
		BudgetUsedFraction:    a.BudgetUsedFraction,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_optimizer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")

	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022")
	viper.SetDefault("OPENAI_MODEL", "gpt-4-turbo-preview")
	viper.SetDefault("BEDROCK_MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AI_MAX_TOKENS", 4000)
	viper.SetDefault("AI_TIMEOUT_SECONDS", 60)
	viper.SetDefault("AI_MAX_RETRIES", 3)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do ciclo de monitoramento
	viper.SetDefault("MONITOR_SYNC_CRON", "0 */6 * * *")       // A cada 6 horas
	viper.SetDefault("MONITOR_SYNC_MAX_CONCURRENT_JOBS", 3)    // 3 jobs concorrentes
	viper.SetDefault("MONITOR_SYNC_ENABLED", false)            // Habilitar o ciclo de monitoramento
	viper.SetDefault("ANALYZER_AUTO_RUN", true)                // Disparar análise com AI após o monitoramento

	// Defaults de análise e metas de performance
	viper.SetDefault("ANALYSIS_LOOKBACK_DAYS", 14)
	viper.SetDefault("ANALYSIS_MAX_PROPOSALS", 7)
	viper.SetDefault("TARGET_CTR_MIN", 2.0)
	viper.SetDefault("TARGET_CPC_MAX", 0.60)
	viper.SetDefault("TARGET_ROAS_MIN", 1.5)
	viper.SetDefault("CRITICAL_ROAS_FLOOR", 1.0)
	viper.SetDefault("TARGET_OPTIMIZATION_SCORE_MIN", 60.0)
	viper.SetDefault("CRITICAL_OPTIMIZATION_SCORE_FLOOR", 40.0)
	viper.SetDefault("BUDGET_USED_FRACTION", 0.95)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.validateAIProvider(); err != nil {
		return nil, err
	}

	return config, nil
}

// validateAIProvider garante que o provider selecionado tem as credenciais
// necessárias configuradas
func (c *Config) validateAIProvider() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY não configurada para o provider gemini")
		}
	case "claude":
		if c.AI.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY não configurada para o provider claude")
		}
	case "openai":
		if c.AI.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY não configurada para o provider openai")
		}
	case "bedrock":
		// Credenciais AWS vêm da cadeia padrão do SDK (env, profile, role)
	default:
		return fmt.Errorf("AI_PROVIDER '%s' não suportado. Use gemini, claude, openai ou bedrock", c.AI.Provider)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
