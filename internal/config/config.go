package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level string
	File  string
}

type ExportConfig struct {
	Dir string
	// PDFFontFile is a TrueType font embedded in agreement PDFs. Empty means
	// the core cp1252 font.
	PDFFontFile string
}

type AccessConfig struct {
	Role string
}

type Config struct {
	Environment string
	Log         LogConfig
	Export      ExportConfig
	Access      AccessConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		Export: ExportConfig{
			Dir:         v.GetString("EXPORT_DIR"),
			PDFFontFile: strings.TrimSpace(v.GetString("PDF_FONT_FILE")),
		},
		Access: AccessConfig{
			Role: strings.ToLower(strings.TrimSpace(v.GetString("USER_ROLE"))),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "exports"
	}
	if cfg.Access.Role == "" {
		cfg.Access.Role = "manager"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %q", cfg.Log.Level)
	}
	return nil
}
