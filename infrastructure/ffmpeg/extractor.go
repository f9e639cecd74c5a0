package ffmpeg

import (
	"context"
	"fmt"

	"blank-video/domain/video"
)

// Extractor implements video.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExtractArgs returns the ffmpeg arguments used to demux the audio stream
func ExtractArgs(sourcePath, audioPath string) []string {
	return []string{
		"-i", sourcePath,
		"-vn",             // No video
		"-acodec", "copy", // Keep the audio bitstream as-is
		"-y",              // Overwrite output file if it exists
		audioPath,
	}
}

// Extract implements video.AudioExtractor
func (e *Extractor) Extract(ctx context.Context, sourcePath, audioPath string) error {
	if err := e.runner.Run(ctx, e.ffmpegPath, ExtractArgs(sourcePath, audioPath)...); err != nil {
		return fmt.Errorf("ffmpeg audio extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	return verifyInstalled(ctx, e.runner, e.ffmpegPath, "ffmpeg")
}

// Ensure Extractor implements video.AudioExtractor
var _ video.AudioExtractor = (*Extractor)(nil)
