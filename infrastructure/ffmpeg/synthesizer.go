package ffmpeg

import (
	"context"
	"fmt"

	"blank-video/domain/video"
)

// Synthesizer implements video.BlankSynthesizer using ffmpeg's lavfi color source
type Synthesizer struct {
	ffmpegPath string
	runner     CommandRunner
}

// SynthesizerOption is a functional option for configuring Synthesizer
type SynthesizerOption func(*Synthesizer)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) SynthesizerOption {
	return func(s *Synthesizer) {
		if path != "" {
			s.ffmpegPath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) SynthesizerOption {
	return func(s *Synthesizer) {
		s.runner = runner
	}
}

// NewSynthesizer creates a new FFmpeg-based blank video synthesizer
func NewSynthesizer(opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SynthesizeArgs returns the ffmpeg arguments that mux audio onto a color canvas
func SynthesizeArgs(req *video.SynthesisRequest) []string {
	return []string{
		"-f", "lavfi",
		"-i", req.Canvas.Filter(),
		"-i", req.AudioPath,
		"-c:v", req.Canvas.Codec,
		"-c:a", "copy",
		"-shortest", // The color source is effectively endless; stop at the audio
		"-y",        // Overwrite output file if it exists
		req.OutputPath,
	}
}

// Synthesize implements video.BlankSynthesizer
func (s *Synthesizer) Synthesize(ctx context.Context, req *video.SynthesisRequest) error {
	if err := req.Canvas.Validate(); err != nil {
		return fmt.Errorf("invalid canvas: %w", err)
	}

	if err := s.runner.Run(ctx, s.ffmpegPath, SynthesizeArgs(req)...); err != nil {
		return fmt.Errorf("ffmpeg blank video synthesis failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (s *Synthesizer) VerifyInstalled(ctx context.Context) error {
	return verifyInstalled(ctx, s.runner, s.ffmpegPath, "ffmpeg")
}

func verifyInstalled(ctx context.Context, runner CommandRunner, path, tool string) error {
	_, err := runner.Output(ctx, path, "-version")
	if err != nil {
		return fmt.Errorf("%s not found or not executable: %w", tool, err)
	}
	return nil
}

// Ensure Synthesizer implements video.BlankSynthesizer
var _ video.BlankSynthesizer = (*Synthesizer)(nil)
