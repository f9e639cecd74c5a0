package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"blank-video/domain/video"
	"blank-video/infrastructure/logging"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the name of the configuration file inside the config directory
const DefaultFilename = "config.yaml"

// appDirName is the per-user directory holding the configuration
const appDirName = "blank-video"

// Config represents the complete application configuration
type Config struct {
	Tools  ToolsConfig  `yaml:"tools"`
	Canvas CanvasConfig `yaml:"canvas"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// ToolsConfig contains the external executables to invoke
type ToolsConfig struct {
	FFmpeg  string `yaml:"ffmpeg"`
	FFprobe string `yaml:"ffprobe"`
}

// CanvasConfig contains the blank video settings
type CanvasConfig struct {
	Resolution string `yaml:"resolution"`
	Color      string `yaml:"color"`
	Codec      string `yaml:"codec"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	TempExtension string `yaml:"temp_extension"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Canvas: CanvasConfig{
			Resolution: video.DefaultCanvas.Resolution(),
			Color:      video.DefaultCanvas.Color,
			Codec:      video.DefaultCanvas.Codec,
		},
		Audio: AudioConfig{
			TempExtension: video.DefaultTempAudioExtension,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns <user config dir>/blank-video/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", DefaultFilename)
	}
	return filepath.Join(dir, appDirName, DefaultFilename)
}

// Load reads and parses the configuration from the specified YAML file.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills values that were explicitly blanked in the file
func (c *Config) applyDefaults() {
	def := Default()
	if strings.TrimSpace(c.Tools.FFmpeg) == "" {
		c.Tools.FFmpeg = def.Tools.FFmpeg
	}
	if strings.TrimSpace(c.Tools.FFprobe) == "" {
		c.Tools.FFprobe = def.Tools.FFprobe
	}
	if c.Canvas.Resolution == "" {
		c.Canvas.Resolution = def.Canvas.Resolution
	}
	if c.Canvas.Color == "" {
		c.Canvas.Color = def.Canvas.Color
	}
	if c.Canvas.Codec == "" {
		c.Canvas.Codec = def.Canvas.Codec
	}
	if c.Audio.TempExtension == "" {
		c.Audio.TempExtension = def.Audio.TempExtension
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate checks values that would otherwise only fail inside ffmpeg
func (c *Config) Validate() error {
	if _, err := c.VideoCanvas(); err != nil {
		return err
	}
	if strings.ContainsAny(c.Audio.TempExtension, `/\`) {
		return fmt.Errorf("audio temp_extension %q must not contain path separators", c.Audio.TempExtension)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// VideoCanvas converts the canvas section into a video.Canvas
func (c *Config) VideoCanvas() (video.Canvas, error) {
	width, height, err := video.ParseResolution(c.Canvas.Resolution)
	if err != nil {
		return video.Canvas{}, err
	}

	canvas := video.Canvas{
		Width:  width,
		Height: height,
		Color:  c.Canvas.Color,
		Codec:  c.Canvas.Codec,
	}
	if err := canvas.Validate(); err != nil {
		return video.Canvas{}, err
	}
	return canvas, nil
}
