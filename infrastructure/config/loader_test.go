package config

import (
	"os"
	"path/filepath"
	"testing"

	"blank-video/domain/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  ffmpeg: /opt/ffmpeg/bin/ffmpeg
canvas:
  color: white
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.Tools.FFmpeg)
	assert.Equal(t, "ffprobe", cfg.Tools.FFprobe)
	assert.Equal(t, "1280x720", cfg.Canvas.Resolution)
	assert.Equal(t, "white", cfg.Canvas.Color)
	assert.Equal(t, "libx264", cfg.Canvas.Codec)
	assert.Equal(t, ".aac", cfg.Audio.TempExtension)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
tools:
  ffmpeg: ""
audio:
  temp_extension: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ffmpeg", cfg.Tools.FFmpeg)
	assert.Equal(t, ".aac", cfg.Audio.TempExtension)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"malformed yaml", "tools: [", "failed to parse config file"},
		{"bad resolution", "canvas:\n  resolution: big\n", "invalid resolution"},
		{"odd resolution", "canvas:\n  resolution: 1279x720\n", "must be even"},
		{"bad log level", "log:\n  level: chatty\n", "unknown log level"},
		{"temp extension with separator", "audio:\n  temp_extension: ../x.aac\n", "path separators"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault_MalformedFileStillFails(t *testing.T) {
	_, err := LoadOrDefault(writeConfig(t, "canvas: {resolution: x}"))
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Canvas.Resolution = "640x360"
	cfg.Audio.TempExtension = ".m4a"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestVideoCanvas(t *testing.T) {
	canvas, err := Default().VideoCanvas()
	require.NoError(t, err)
	assert.Equal(t, video.DefaultCanvas, canvas)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFilename, filepath.Base(DefaultPath()))
}
