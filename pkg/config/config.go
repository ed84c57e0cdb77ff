package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration. Values come from defaults, an
// optional yaml file and ADMIND_-prefixed environment variables, in that
// order of increasing precedence.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Auth     AuthConfig     `mapstructure:"auth" yaml:"auth"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type StorageConfig struct {
	UploadsDir string `mapstructure:"uploads_dir" yaml:"uploads_dir"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Load reads the configuration. path may be empty, in which case only an
// admind.yaml in the working directory is considered, and its absence is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("ADMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}
	} else {
		v.SetConfigName("admind")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read configuration file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.path", "admin-panel.db")
	v.SetDefault("storage.uploads_dir", "uploads")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("log.debug", false)
}
