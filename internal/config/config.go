package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidTopK = errors.New("recommendation default top_k must be between 1 and max top_k")

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetReload  DatasetReload  `mapstructure:",squash"`
	Recommendation Recommendation `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Dataset struct {
	Path   string `mapstructure:"dataset_path"`
	Strict bool   `mapstructure:"dataset_strict"`
}

type DatasetReload struct {
	CronSchedule string `mapstructure:"dataset_reload_cron"`
	Enabled      bool   `mapstructure:"dataset_reload_enabled"`
}

type Recommendation struct {
	DefaultTopK      int     `mapstructure:"recommendation_default_top_k"`
	MaxTopK          int     `mapstructure:"recommendation_max_top_k"`
	PersonalityBonus float64 `mapstructure:"recommendation_personality_bonus"`
	AlternativesSize int     `mapstructure:"recommendation_alternatives_size"`
}

type Dashboard struct {
	TopN int `mapstructure:"dashboard_top_n"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATASET_PATH", "./data/college_salary_data.csv")
	viper.SetDefault("DATASET_STRICT", true) // Linha inválida interrompe a carga

	viper.SetDefault("DATASET_RELOAD_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATASET_RELOAD_ENABLED", false)

	viper.SetDefault("RECOMMENDATION_DEFAULT_TOP_K", 10)
	viper.SetDefault("RECOMMENDATION_MAX_TOP_K", 50)
	viper.SetDefault("RECOMMENDATION_PERSONALITY_BONUS", 0.3)
	viper.SetDefault("RECOMMENDATION_ALTERNATIVES_SIZE", 5)

	viper.SetDefault("DASHBOARD_TOP_N", 5)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8501"})

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

	if config.Recommendation.DefaultTopK < 1 || config.Recommendation.DefaultTopK > config.Recommendation.MaxTopK {
		return nil, ErrInvalidTopK
	}

	return config, nil
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
