package blank

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"blank-video/domain/video"

	"go.uber.org/zap"
)

// Files groups the filesystem operations the pipeline needs
type Files interface {
	video.FileChecker
	video.FileSizer
	video.FileRemover
}

// Stage names a step of the pipeline
type Stage string

const (
	StageExtract    Stage = "audio extraction"
	StageSynthesize Stage = "blank video creation"
)

// StageError reports which pipeline step failed
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options tune the pipeline
type Options struct {
	Canvas            video.Canvas
	TempExtension     string
	DurationTolerance video.Duration
}

// Service turns a video into an audio-only blank video
type Service struct {
	extractor   video.AudioExtractor
	synthesizer video.BlankSynthesizer
	prober      video.DurationProber
	files       Files
	opts        Options
	logger      *zap.Logger
	output      io.Writer
}

// NewService creates a new blank video service. prober may be nil, in which
// case durations are not reported.
func NewService(
	extractor video.AudioExtractor,
	synthesizer video.BlankSynthesizer,
	prober video.DurationProber,
	files Files,
	opts Options,
	logger *zap.Logger,
	output io.Writer,
) *Service {
	if opts.Canvas == (video.Canvas{}) {
		opts.Canvas = video.DefaultCanvas
	}
	if opts.TempExtension == "" {
		opts.TempExtension = video.DefaultTempAudioExtension
	}
	if opts.DurationTolerance <= 0 {
		opts.DurationTolerance = video.DefaultDurationTolerance
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if output == nil {
		output = io.Discard
	}
	return &Service{
		extractor:   extractor,
		synthesizer: synthesizer,
		prober:      prober,
		files:       files,
		opts:        opts,
		logger:      logger,
		output:      output,
	}
}

// Input contains the positional arguments of a run
type Input struct {
	SourcePath string
	OutputPath string // Optional, defaults to <stem>_blank<ext>
}

// Result describes a finished run. Sizes and durations are nil when they
// could not be determined.
type Result struct {
	SourcePath     string
	OutputPath     string
	TempAudioPath  string
	Sizes          *video.SizeReport
	AudioDuration  *video.Duration
	OutputDuration *video.Duration
}

// DurationMatches reports whether the output is as long as the extracted audio.
// It returns true when either duration is unknown.
func (r *Result) DurationMatches(tolerance video.Duration) bool {
	if r.AudioDuration == nil || r.OutputDuration == nil {
		return true
	}
	return r.AudioDuration.Within(*r.OutputDuration, tolerance)
}

// Run extracts the audio of input.SourcePath and muxes it onto a blank canvas
func (s *Service) Run(ctx context.Context, input Input) (*Result, error) {
	// Verify source file exists before anything touches the disk
	if !s.files.Exists(input.SourcePath) {
		return nil, fmt.Errorf("%w: %s", video.ErrSourceNotFound, input.SourcePath)
	}

	req, err := video.NewBlankRequest(input.SourcePath, input.OutputPath, s.opts.TempExtension)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("source", req.SourcePath))
	fmt.Fprintf(s.output, "Processing: %s\n", req.SourcePath)

	result := &Result{
		SourcePath:    req.SourcePath,
		OutputPath:    req.OutputPath,
		TempAudioPath: req.TempAudioPath,
	}

	// Step 1: Extract audio
	fmt.Fprintf(s.output, "[1/2] Extracting audio...\n")
	tempExisted := s.files.Exists(req.TempAudioPath)
	if err := s.extractor.Extract(ctx, req.SourcePath, req.TempAudioPath); err != nil {
		log.Debug("audio extraction failed", zap.String("audio", req.TempAudioPath), zap.Error(err))
		if !tempExisted {
			s.discardPartial(req.TempAudioPath, log)
		}
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	releaseTemp := s.scopedTemp(req.TempAudioPath, log)
	defer releaseTemp()
	fmt.Fprintf(s.output, "      Created: %s\n", req.TempAudioPath)

	result.AudioDuration = s.probeWithFallback(ctx, req.TempAudioPath, req.SourcePath, log)

	// Step 2: Create blank video
	fmt.Fprintf(s.output, "[2/2] Creating blank video (%s %s)...\n", s.opts.Canvas.Resolution(), s.opts.Canvas.Color)
	synth := &video.SynthesisRequest{
		AudioPath:  req.TempAudioPath,
		OutputPath: req.OutputPath,
		Canvas:     s.opts.Canvas,
	}
	outputExisted := s.files.Exists(req.OutputPath)
	if err := s.synthesizer.Synthesize(ctx, synth); err != nil {
		log.Debug("blank video synthesis failed", zap.String("output", req.OutputPath), zap.Error(err))
		if !outputExisted {
			s.discardPartial(req.OutputPath, log)
		}
		return nil, &StageError{Stage: StageSynthesize, Err: err}
	}
	fmt.Fprintf(s.output, "      Created: %s\n", req.OutputPath)

	if releaseTemp() {
		fmt.Fprintf(s.output, "Cleaned up temporary file: %s\n", filepath.Base(req.TempAudioPath))
	}

	result.Sizes = s.measure(req, log)
	result.OutputDuration = s.probe(ctx, req.OutputPath, log)

	if !result.DurationMatches(s.opts.DurationTolerance) {
		log.Warn("output duration differs from extracted audio",
			zap.Stringer("audio", *result.AudioDuration),
			zap.Stringer("output", *result.OutputDuration))
	}

	fmt.Fprintln(s.output)
	RenderReport(s.output, result)
	fmt.Fprintf(s.output, "\nDone! Output file: %s\n", req.OutputPath)

	return result, nil
}

// scopedTemp returns a release func that removes the temporary audio file at
// most once. It reports whether this call removed it.
func (s *Service) scopedTemp(path string, log *zap.Logger) func() bool {
	released := false
	return func() bool {
		if released {
			return false
		}
		released = true
		if !s.files.Exists(path) {
			return false
		}
		if err := s.files.Remove(path); err != nil {
			log.Warn("could not remove temporary audio file", zap.String("path", path), zap.Error(err))
			return false
		}
		return true
	}
}

// discardPartial removes whatever a failed ffmpeg run left at path
func (s *Service) discardPartial(path string, log *zap.Logger) {
	if !s.files.Exists(path) {
		return
	}
	if err := s.files.Remove(path); err != nil {
		log.Warn("could not remove partial output", zap.String("path", path), zap.Error(err))
	}
}

func (s *Service) measure(req *video.BlankRequest, log *zap.Logger) *video.SizeReport {
	original, err := s.files.Size(req.SourcePath)
	if err != nil {
		log.Debug("size report skipped", zap.String("path", req.SourcePath), zap.Error(err))
		return nil
	}
	blank, err := s.files.Size(req.OutputPath)
	if err != nil {
		log.Debug("size report skipped", zap.String("path", req.OutputPath), zap.Error(err))
		return nil
	}
	return &video.SizeReport{OriginalBytes: original, BlankBytes: blank}
}

// probe returns the duration of path, or nil if the prober cannot tell
func (s *Service) probe(ctx context.Context, path string, log *zap.Logger) *video.Duration {
	if s.prober == nil {
		return nil
	}
	d, err := s.prober.Duration(ctx, path)
	if err != nil {
		log.Warn("could not read duration", zap.String("path", path), zap.Error(err))
		return nil
	}
	return &d
}

// probeWithFallback reads the audio duration, falling back to the source video
// when the audio container does not report one
func (s *Service) probeWithFallback(ctx context.Context, audioPath, sourcePath string, log *zap.Logger) *video.Duration {
	if d := s.probe(ctx, audioPath, log); d != nil {
		return d
	}
	if s.prober == nil {
		return nil
	}
	log.Info("retrying duration probe on source video", zap.String("path", sourcePath))
	return s.probe(ctx, sourcePath, log)
}
