// Package config provides configuration loading and management.
package config

import (
	"os"
	"time"

	"github.com/user/framecast/pkg/orchestrator"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for framecast.
type Config struct {
	// Output
	OutputDir string `yaml:"output_dir"`

	// Geometry
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Still capture
	HeightOffset int `yaml:"height_offset"`

	// Video capture
	Duration      float64 `yaml:"duration"`
	FPS           float64 `yaml:"fps"`
	SettleDelayMs int     `yaml:"settle_delay_ms"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
	ScaleSpeed    float64 `yaml:"scale_speed"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`

	// Browser
	Headless   bool   `yaml:"headless"`
	ChromePath string `yaml:"chrome_path"`

	// Transcoding
	FFmpegPath string `yaml:"ffmpeg_path"`
	CRF        int    `yaml:"crf"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir: "./output",

		Width:  1024,
		Height: 768,

		HeightOffset: 87,

		Duration:      5.0,
		FPS:           30.0,
		SettleDelayMs: 500,
		RotateSpeed:   1.0,
		ScaleSpeed:    1.0,
		ScrollSpeed:   1.0,

		Headless: true,

		CRF: 23,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		HeightOffset: c.HeightOffset,
		SettleDelay:  time.Duration(c.SettleDelayMs) * time.Millisecond,
		FPS:          c.FPS,
		Duration:     time.Duration(c.Duration * float64(time.Second)),
	}
}
