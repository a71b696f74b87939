package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort       int    `mapstructure:"APP_PORT"`
	RAGBackendURL string `mapstructure:"RAG_BACKEND_URL"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	DefaultModel  string `mapstructure:"DEFAULT_MODEL"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8080)
	viper.SetDefault("RAG_BACKEND_URL", "http://localhost:8000")
	viper.SetDefault("DATABASE_PATH", "/data/docurag.db")
	viper.SetDefault("DEFAULT_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "adminpass")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
