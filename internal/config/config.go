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
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Tracking          Tracking          `mapstructure:",squash"`
	GeoIP             GeoIP             `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	RetentionSync     RetentionSync     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	BaseURL  string `mapstructure:"base_url"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Tracking controla os filtros de validade de visualizações e cliques
type Tracking struct {
	BlacklistedUserAgents   []string `mapstructure:"tracking_blacklisted_user_agents"`
	InternalIPs             []string `mapstructure:"tracking_internal_ips"`
	ClickRatelimitPerMinute int      `mapstructure:"tracking_click_ratelimit_per_minute"`
	ViewNonceTTLMinutes     int      `mapstructure:"tracking_view_nonce_ttl_minutes"`
	ClickNonceTTLMinutes    int      `mapstructure:"tracking_click_nonce_ttl_minutes"`
	DoNotTrack              bool     `mapstructure:"tracking_do_not_track"`
	PrivacyPolicyURL        string   `mapstructure:"tracking_privacy_policy_url"`
}

type GeoIP struct {
	Enabled      bool   `mapstructure:"geoip_enabled"`
	DatabasePath string `mapstructure:"geoip_database_path"`
}

type MonthlyReportSync struct {
	CronSchedule  string `mapstructure:"monthly_report_sync_cron"`
	Enabled       bool   `mapstructure:"monthly_report_sync_enabled"`
	MonthLookback int    `mapstructure:"monthly_report_sync_month_lookback"`
}

type RetentionSync struct {
	CronSchedule  string `mapstructure:"retention_sync_cron"`
	Enabled       bool   `mapstructure:"retention_sync_enabled"`
	RetentionDays int    `mapstructure:"retention_sync_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("BASE_URL", "http://localhost:8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adserver")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults dos filtros de rastreio
	viper.SetDefault("TRACKING_BLACKLISTED_USER_AGENTS", "")
	viper.SetDefault("TRACKING_INTERNAL_IPS", "127.0.0.1")
	viper.SetDefault("TRACKING_CLICK_RATELIMIT_PER_MINUTE", 3) // Cliques por IP por minuto
	viper.SetDefault("TRACKING_VIEW_NONCE_TTL_MINUTES", 60)    // Janela para contar a visualização
	viper.SetDefault("TRACKING_CLICK_NONCE_TTL_MINUTES", 240)  // Janela para contar o clique
	viper.SetDefault("TRACKING_DO_NOT_TRACK", false)
	viper.SetDefault("TRACKING_PRIVACY_POLICY_URL", "")

	viper.SetDefault("GEOIP_ENABLED", false)
	viper.SetDefault("GEOIP_DATABASE_PATH", "")

	// Defaults do consolidado mensal
	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *") // Primeiro dia do mês às 5h
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_REPORT_SYNC_MONTH_LOOKBACK", 1)

	// Defaults da limpeza de retenção
	viper.SetDefault("RETENTION_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h
	viper.SetDefault("RETENTION_SYNC_ENABLED", false)
	viper.SetDefault("RETENTION_SYNC_DAYS", 365)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env usando godotenv, tentando os diretórios acima
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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
