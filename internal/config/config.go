package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Server ServerConfig `mapstructure:"server"`
	Lists  ListsConfig  `mapstructure:"lists"`
}

type APIConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Mode     string        `mapstructure:"mode"` // "live" or "mock"
	Token    string        `mapstructure:"token"`
	TokenEnv string        `mapstructure:"token_env"`
	VendorID string        `mapstructure:"vendor_id"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ListsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// BearerToken resolves the opaque API credential: a directly configured token
// wins, otherwise the environment variable named by token_env is read. The
// console never inspects the token's contents.
func (c *APIConfig) BearerToken() string {
	if c.Token != "" {
		return c.Token
	}
	if c.TokenEnv != "" {
		return os.Getenv(c.TokenEnv)
	}
	return ""
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.vendor-console/")
	v.AddConfigPath("/etc/vendor-console/")

	// Enable environment variable override with NEXODUS_ prefix
	v.SetEnvPrefix("NEXODUS")
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "https://nexodus.tech/api")
	v.SetDefault("api.mode", "live")
	v.SetDefault("api.token_env", "NEXODUS_API_TOKEN")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("server.addr", ":8090")
	v.SetDefault("lists.page_size", 5)

	// A missing config file is fine; defaults and env vars cover everything.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
