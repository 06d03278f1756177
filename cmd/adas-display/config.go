package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/openadas/adas-display/internal/model"
)

// appConfig holds all settings for the display binary.
type appConfig struct {
	TickInterval   time.Duration `mapstructure:"tick-interval"`
	Skin           string        `mapstructure:"skin"`
	APIEnabled     bool          `mapstructure:"api-enabled"`
	APIAddr        string        `mapstructure:"api-addr"`
	UplinkBroker   string        `mapstructure:"uplink-broker"`
	UplinkTopic    string        `mapstructure:"uplink-topic"`
	UplinkClientID string        `mapstructure:"uplink-client-id"`
	UplinkQoS      int           `mapstructure:"uplink-qos"`
	UplinkInterval time.Duration `mapstructure:"uplink-interval"`
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "adas-display")
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ADAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("tick-interval", model.DefaultTickInterval)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", model.DefaultAPIAddr)
	v.SetDefault("uplink-broker", "")
	v.SetDefault("uplink-topic", model.DefaultUplinkTopic)
	v.SetDefault("uplink-client-id", "adas-display")
	v.SetDefault("uplink-qos", 0)
	v.SetDefault("uplink-interval", model.DefaultUplinkInterval)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "adas-display", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
