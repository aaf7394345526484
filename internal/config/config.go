package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Backfill     Backfill     `mapstructure:",squash"`
	SessionsSync SessionsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Analytics struct {
	BaseURL               string `mapstructure:"analytics_base_url"`
	Version               string `mapstructure:"analytics_version"`
	URL                   string `mapstructure:"-"`
	TokenDir              string `mapstructure:"analytics_token_dir"`
	RequestTimeoutSeconds int    `mapstructure:"analytics_request_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Backfill controla o pipeline de busca adaptativa. BaseSpanDays é a largura
// inicial de cada requisição; MinSpanDays é o piso abaixo do qual o span nunca
// desce; MonthLookback define a janela histórica padrão do backfill.
type Backfill struct {
	BaseSpanDays        int `mapstructure:"backfill_base_span_days"`
	MinSpanDays         int `mapstructure:"backfill_min_span_days"`
	MonthLookback       int `mapstructure:"backfill_month_lookback"`
	MaxConcurrentJobs   int `mapstructure:"backfill_max_concurrent_jobs"`
	RequestDelaySeconds int `mapstructure:"backfill_request_delay_seconds"`
}

type SessionsSync struct {
	CronSchedule string `mapstructure:"sessions_sync_cron"`
	LookbackDays int    `mapstructure:"sessions_sync_lookback_days"`
	Enabled      bool   `mapstructure:"sessions_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ga4_sessions")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ANALYTICS_BASE_URL", "https://analyticsdata.googleapis.com")
	viper.SetDefault("ANALYTICS_VERSION", "v1beta")
	viper.SetDefault("ANALYTICS_TOKEN_DIR", "tokens")
	viper.SetDefault("ANALYTICS_REQUEST_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do pipeline de backfill
	viper.SetDefault("BACKFILL_BASE_SPAN_DAYS", 210)    // ~7 meses por requisição
	viper.SetDefault("BACKFILL_MIN_SPAN_DAYS", 31)      // piso: um mês por requisição
	viper.SetDefault("BACKFILL_MONTH_LOOKBACK", 50)     // 50 meses de histórico
	viper.SetDefault("BACKFILL_MAX_CONCURRENT_JOBS", 3) // 3 propriedades em paralelo
	viper.SetDefault("BACKFILL_REQUEST_DELAY_SECONDS", 2)

	// Defaults da sincronização incremental diária
	viper.SetDefault("SESSIONS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SESSIONS_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("SESSIONS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Analytics.URL = fmt.Sprintf("%s/%s", config.Analytics.BaseURL, config.Analytics.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
