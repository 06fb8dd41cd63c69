package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	DatabaseURI    string
	ClientURL      string
	AllowedOrigins string
	LogLevel       string
	LogFormat      string
	GinMode        string
}

// Keys double as environment variable names once upper-cased.
const (
	KeyPort           = "port"
	KeyDatabaseURI    = "db_uri"
	KeyClientURL      = "client_url"
	KeyAllowedOrigins = "allowed_origins"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyGinMode        = "gin_mode"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "5555")
	v.SetDefault(KeyDatabaseURI, "sqlite://app.db")
	v.SetDefault(KeyClientURL, "")
	v.SetDefault(KeyAllowedOrigins, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyGinMode, "release")
}

// LoadDotEnv reads .env files into the process environment. A missing file
// is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Load resolves the configuration from v, which should already have its
// defaults, flags and environment bindings in place.
func Load(v *viper.Viper) Config {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return Config{
		Port:           v.GetString(KeyPort),
		DatabaseURI:    v.GetString(KeyDatabaseURI),
		ClientURL:      v.GetString(KeyClientURL),
		AllowedOrigins: v.GetString(KeyAllowedOrigins),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		GinMode:        v.GetString(KeyGinMode),
	}
}
