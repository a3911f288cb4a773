// Package config resolves the API host and key from a settings file and
// environment variables. Lookups fail with typed errors so call sites can
// decide whether a missing value is fatal; the weather client deliberately
// degrades to an empty string instead of aborting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Key names one configuration value.
type Key string

const (
	// KeyAPIHost is the weather API base URL, e.g. "https://api.weatherapi.com".
	KeyAPIHost Key = "api_host"
	// KeyAPIKey is the weather API access key.
	KeyAPIKey Key = "api_key"
)

const (
	envPrefix     = "TENKI"
	envConfigFile = "TENKI_CONFIG"
	appDirName    = "tenki"
)

// MissingKeyError reports a key with no value in any source.
type MissingKeyError struct {
	Key Key
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("configuration key %q is not set", e.Key)
}

// InvalidValueError reports a key whose value is not a usable string.
type InvalidValueError struct {
	Key Key
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("configuration key %q has an invalid value", e.Key)
}

// IsMissingKey checks if the error is a MissingKeyError.
func IsMissingKey(err error) bool {
	var e *MissingKeyError
	return errors.As(err, &e)
}

// IsInvalidValue checks if the error is an InvalidValueError.
func IsInvalidValue(err error) bool {
	var e *InvalidValueError
	return errors.As(err, &e)
}

type Config struct {
	v *viper.Viper
}

// Load reads the settings file and environment. The file is taken from
// $TENKI_CONFIG when set (and must then be readable), otherwise from
// config.yaml under the user config directory or the working directory; a
// missing default file is not an error. TENKI_-prefixed environment
// variables override file values, e.g. TENKI_API_KEY.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
		return &Config{v: v}, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appDirName))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	return &Config{v: v}, nil
}

// Empty returns a configuration with no values set; every lookup fails
// with MissingKeyError. Used when Load itself fails and the caller wants
// to continue degraded.
func Empty() *Config {
	return &Config{v: viper.New()}
}

// Value resolves one configuration key.
func (c *Config) Value(key Key) (string, error) {
	raw := c.v.Get(string(key))
	if raw == nil {
		return "", &MissingKeyError{Key: key}
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", &InvalidValueError{Key: key}
	}
	return strings.TrimSpace(s), nil
}
