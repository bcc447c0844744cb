package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the callback gateway and the outbound
// MoMo client. Values come from config.yaml (optional) overridden by
// MOMO_GATEWAY_* environment variables.
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Callback server.
	ServerHost          string `mapstructure:"SERVER_HOST"`
	ServerPort          int    `mapstructure:"SERVER_PORT"`
	TLSCertFile         string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile          string `mapstructure:"TLS_KEY_FILE"`
	MaxBodyBytes        int64  `mapstructure:"MAX_BODY_BYTES"`
	ChannelCapacity     int    `mapstructure:"CHANNEL_CAPACITY"`
	ShutdownTimeoutSecs int    `mapstructure:"SHUTDOWN_TIMEOUT_SECS"`

	// Event fan-out. Publishing is disabled when NATS_URL is empty.
	NATSUrl string `mapstructure:"NATS_URL"`

	// Outbound MoMo API client. The callback server itself never dials the
	// provider; these feed momo.NewClient for deployments that register
	// custom dispatch handlers or embed this module as a library.
	MomoBaseURL             string `mapstructure:"MOMO_BASE_URL"`
	MomoTargetEnvironment   string `mapstructure:"MOMO_TARGET_ENVIRONMENT"`
	MomoAPIUser             string `mapstructure:"MOMO_API_USER"`
	MomoAPIKey              string `mapstructure:"MOMO_API_KEY"`
	MomoCollectionPrimary   string `mapstructure:"MOMO_COLLECTION_PRIMARY_KEY"`
	MomoCollectionSecondary string `mapstructure:"MOMO_COLLECTION_SECONDARY_KEY"`
	MomoDisbursementPrimary string `mapstructure:"MOMO_DISBURSEMENT_PRIMARY_KEY"`
	MomoRemittancePrimary   string `mapstructure:"MOMO_REMITTANCE_PRIMARY_KEY"`
	MomoCallbackHost        string `mapstructure:"MOMO_CALLBACK_HOST"`
}

// Load reads configuration for the named service. The service name is kept
// for layered per-service overrides later; today every binary shares one file.
func Load(serviceName string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix("MOMO_GATEWAY")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8500)
	v.SetDefault("TLS_CERT_FILE", "")
	v.SetDefault("TLS_KEY_FILE", "")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("CHANNEL_CAPACITY", 100)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECS", 15)
	v.SetDefault("NATS_URL", "")
	v.SetDefault("MOMO_BASE_URL", "https://sandbox.momodeveloper.mtn.com")
	v.SetDefault("MOMO_TARGET_ENVIRONMENT", "sandbox")
	v.SetDefault("MOMO_API_USER", "")
	v.SetDefault("MOMO_API_KEY", "")
	v.SetDefault("MOMO_COLLECTION_PRIMARY_KEY", "")
	v.SetDefault("MOMO_COLLECTION_SECONDARY_KEY", "")
	v.SetDefault("MOMO_DISBURSEMENT_PRIMARY_KEY", "")
	v.SetDefault("MOMO_REMITTANCE_PRIMARY_KEY", "")
	v.SetDefault("MOMO_CALLBACK_HOST", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config for %s: %w", serviceName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return &cfg, nil
}
