package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`

	// DataFile es el archivo JSON de la colección. Se usa si no hay DBDSN.
	DataFile      string `mapstructure:"DATA_FILE"`
	WatchDataFile bool   `mapstructure:"WATCH_DATA_FILE"`
	DBDSN         string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	ReadTimeout  time.Duration `mapstructure:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"WRITE_TIMEOUT"`
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Load lee un .env opcional (envFile, "" = ".env") y luego el entorno,
// que tiene prioridad.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) == "" {
		envFile = ".env"
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// sin .env se sigue sólo con env vars
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// AutomaticEnv solo ve claves que viper ya conoce, por eso todas tienen default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATA_FILE", "cats.json")
	v.SetDefault("WATCH_DATA_FILE", true)
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "cat-registry")
	v.SetDefault("READ_TIMEOUT", 5*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
}
