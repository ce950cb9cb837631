package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultAddress = "localhost:8080"
)

type Config struct {
	Environment       string `mapstructure:"ENVIRONMENT"`
	APIKey            string `mapstructure:"API_KEY"`
	AIModel           string `mapstructure:"AI_MODEL"`
	AIBaseURL         string `mapstructure:"AI_BASE_URL"`
	HTTPServerAddress string `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	ThemeFile         string `mapstructure:"THEME_FILE"`
	LogPath           string `mapstructure:"LOG_PATH"`
}

var keys = []string{
	"ENVIRONMENT", "API_KEY", "AI_MODEL", "AI_BASE_URL",
	"HTTP_SERVER_ADDRESS", "ALLOWED_ORIGINS", "THEME_FILE", "LOG_PATH",
}

// LoadConfig reads paiban.env from path, if there is one, and the
// environment. Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("paiban")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("AI_MODEL", DefaultModel)
	v.SetDefault("AI_BASE_URL", DefaultBaseURL)
	v.SetDefault("HTTP_SERVER_ADDRESS", DefaultAddress)
	// AutomaticEnv only applies to keys viper knows about
	for _, k := range keys {
		if err = v.BindEnv(k); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("read config: %w", err)
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// Origins returns the comma separated ALLOWED_ORIGINS as a list
func (config *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(config.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (config *Config) IsDevelopment() bool {
	return config.Environment == "development"
}
