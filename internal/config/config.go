package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

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
	Upload            Upload            `mapstructure:",squash"`
	ResetTokenCleanup ResetTokenCleanup `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
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

type Auth struct {
	SecretKey          string        `mapstructure:"secret_key"`
	TokenTTL           time.Duration `mapstructure:"auth_token_ttl"`
	MaxLoginAttempts   int           `mapstructure:"auth_max_login_attempts"`
	LoginAttemptWindow time.Duration `mapstructure:"auth_login_attempt_window"`
	DemoEmail          string        `mapstructure:"auth_demo_email"`
	DemoDisplayName    string        `mapstructure:"auth_demo_display_name"`
	ResetTokenTTL      time.Duration `mapstructure:"auth_reset_token_ttl"`
}

type Upload struct {
	MaxFileSizeBytes int64 `mapstructure:"upload_max_file_size_bytes"`
}

type ResetTokenCleanup struct {
	CronSchedule string `mapstructure:"reset_token_cleanup_cron"`
	Enabled      bool   `mapstructure:"reset_token_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "4000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard?sslmode=disable")

	viper.SetDefault("SECRET_KEY", "change_me")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_MAX_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("AUTH_LOGIN_ATTEMPT_WINDOW", "15m")
	viper.SetDefault("AUTH_DEMO_EMAIL", "demo@example.com")
	viper.SetDefault("AUTH_DEMO_DISPLAY_NAME", "Demo User")
	viper.SetDefault("AUTH_RESET_TOKEN_TTL", "1h")

	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_BYTES", 10*1024*1024) // 10 MiB

	viper.SetDefault("RESET_TOKEN_CLEANUP_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("RESET_TOKEN_CLEANUP_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
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
