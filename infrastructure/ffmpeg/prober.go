package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"blank-video/domain/video"
)

// ErrInvalidDuration is returned when ffprobe output is not a usable number
var ErrInvalidDuration = errors.New("invalid duration")

// Prober implements video.DurationProber using ffprobe
type Prober struct {
	ffprobePath string
	runner      CommandRunner
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		if path != "" {
			p.ffprobePath = path
		}
	}
}

// WithProberCommandRunner sets a custom command runner (for testing)
func WithProberCommandRunner(runner CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// NewProber creates a new ffprobe-based duration prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ProbeArgs returns the ffprobe arguments requesting only the container duration
func ProbeArgs(path string) []string {
	return []string{
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	}
}

// Duration implements video.DurationProber
func (p *Prober) Duration(ctx context.Context, path string) (video.Duration, error) {
	out, err := p.runner.Output(ctx, p.ffprobePath, ProbeArgs(path)...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration query failed: %w", err)
	}

	return ParseDuration(string(out))
}

// ParseDuration parses ffprobe's csv duration output
func ParseDuration(raw string) (video.Duration, error) {
	s := strings.TrimSpace(raw)
	// Some containers report one value per program; the first is the container's
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, ",")

	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidDuration, s, err)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, fmt.Errorf("%w %q: not a finite non-negative number", ErrInvalidDuration, s)
	}

	return video.Duration(seconds), nil
}

// VerifyInstalled checks that ffprobe is available
func (p *Prober) VerifyInstalled(ctx context.Context) error {
	return verifyInstalled(ctx, p.runner, p.ffprobePath, "ffprobe")
}

// Ensure Prober implements video.DurationProber
var _ video.DurationProber = (*Prober)(nil)
