package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	appblank "blank-video/application/blank"
	"blank-video/domain/video"
	"blank-video/infrastructure/ffmpeg"
	"blank-video/infrastructure/filesystem"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyTimeout bounds the "-version" check of each external tool
const verifyTimeout = 5 * time.Second

func runBlank(cmd *cobra.Command, args []string) error {
	// Argument errors above print usage; pipeline errors below do not
	cmd.SilenceUsage = true

	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	canvas, err := cfg.VideoCanvas()
	if err != nil {
		return err
	}

	sourcePath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	logger := Logger()
	runner := &ffmpeg.ExecCommandRunner{}
	if logger.Core().Enabled(zap.DebugLevel) {
		runner.Stderr = os.Stderr
	}

	// Create dependencies using production implementations
	extractor := ffmpeg.NewExtractor(
		ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpeg),
		ffmpeg.WithExtractorCommandRunner(runner),
	)
	synthesizer := ffmpeg.NewSynthesizer(
		ffmpeg.WithFFmpegPath(cfg.Tools.FFmpeg),
		ffmpeg.WithCommandRunner(runner),
	)
	prober := ffmpeg.NewProber(
		ffmpeg.WithFFprobePath(cfg.Tools.FFprobe),
		ffmpeg.WithProberCommandRunner(runner),
	)

	return RunBlankWithDependencies(
		cmd.Context(),
		extractor,
		synthesizer,
		prober,
		filesystem.NewChecker(),
		appblank.Options{
			Canvas:        canvas,
			TempExtension: cfg.Audio.TempExtension,
		},
		logger,
		sourcePath,
		outputPath,
		os.Stdout,
	)
}

// RunBlankWithDependencies runs the pipeline with injected dependencies (for testing)
func RunBlankWithDependencies(
	ctx context.Context,
	extractor video.AudioExtractor,
	synthesizer video.BlankSynthesizer,
	prober video.DurationProber,
	files appblank.Files,
	opts appblank.Options,
	logger *zap.Logger,
	sourcePath string,
	outputPath string,
	output OutputWriter,
) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// A missing input is reported before anything about the tools
	if !files.Exists(sourcePath) {
		return fmt.Errorf("%w: %s", video.ErrSourceNotFound, sourcePath)
	}

	// Verify ffmpeg is available if the adapters support it. Both are checked
	// since they may be configured with different executables.
	if err := verifyTool(ctx, extractor); err != nil {
		return fmt.Errorf("ffmpeg verification failed: %w", err)
	}
	if err := verifyTool(ctx, synthesizer); err != nil {
		return fmt.Errorf("ffmpeg verification failed: %w", err)
	}

	// A missing ffprobe only costs the duration report
	if err := verifyTool(ctx, prober); err != nil {
		logger.Warn("durations will not be reported", zap.Error(err))
		prober = nil
	}

	service := appblank.NewService(extractor, synthesizer, prober, files, opts, logger, output)

	_, err := service.Run(ctx, appblank.Input{
		SourcePath: sourcePath,
		OutputPath: outputPath,
	})
	if err != nil {
		if stderr := ffmpeg.StderrOf(err); stderr != "" {
			logger.Debug("ffmpeg output", zap.String("stderr", stderr))
		}
		return err
	}
	return nil
}

func verifyTool(ctx context.Context, tool any) error {
	verifiable, ok := tool.(interface{ VerifyInstalled(context.Context) error })
	if !ok {
		return nil
	}
	verifyCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()
	return verifiable.VerifyInstalled(verifyCtx)
}
