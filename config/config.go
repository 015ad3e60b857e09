// Package config loads runtime configuration from environment variables and
// optional .env files. Flags on the CLI override anything loaded here.
package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the chart generator.
type Config struct {
	DataFile     string
	OutDir       string
	SurfaceSpeed float64
	MinSpeed     float64
	LineDecays   []float64
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	viper.SetDefault("DATA_FILE", "cleaned_data.csv")
	viper.SetDefault("OUT_DIR", "plots")
	viper.SetDefault("SURFACE_SPEED", 15.0)
	viper.SetDefault("MIN_SPEED", 9.0)
	viper.SetDefault("LINE_DECAYS", "")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // .env is optional

	viper.SetEnvPrefix("DECAYVIZ")
	viper.AutomaticEnv()
	viper.BindEnv("DATA_FILE")
	viper.BindEnv("OUT_DIR")
	viper.BindEnv("SURFACE_SPEED")
	viper.BindEnv("MIN_SPEED")
	viper.BindEnv("LINE_DECAYS")

	cfg := &Config{
		DataFile:     viper.GetString("DATA_FILE"),
		OutDir:       viper.GetString("OUT_DIR"),
		SurfaceSpeed: viper.GetFloat64("SURFACE_SPEED"),
		MinSpeed:     viper.GetFloat64("MIN_SPEED"),
	}

	if raw := viper.GetString("LINE_DECAYS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if v, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil {
				cfg.LineDecays = append(cfg.LineDecays, v)
			}
		}
	}

	return cfg, nil
}
