//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appblank "blank-video/application/blank"
	"blank-video/cmd"
	"blank-video/infrastructure/ffmpeg"
	"blank-video/infrastructure/filesystem"

	"github.com/cucumber/godog"
)

// recordingRunner stands in for ffmpeg/ffprobe. Successful Run calls create
// the file named by the last argument, the way ffmpeg writes its output.
type recordingRunner struct {
	calls    [][]string
	failOn   string // fail any Run whose arguments contain this value
	stderr   string
	duration string
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if r.failOn != "" {
		for _, arg := range args {
			if arg == r.failOn {
				return &ffmpeg.CommandError{Name: name, Args: args, ExitCode: 1, Stderr: r.stderr}
			}
		}
	}
	out := args[len(args)-1]
	return os.WriteFile(out, []byte("media"), 0644)
}

func (r *recordingRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if len(args) == 1 && args[0] == "-version" {
		return []byte(name + " version test"), nil
	}
	r.calls = append(r.calls, append([]string{name}, args...))
	return []byte(r.duration), nil
}

// blankContext holds test state for blank video scenarios
type blankContext struct {
	dir        string
	sourcePath string
	outputPath string
	runner     *recordingRunner
	output     *bytes.Buffer
	err        error
}

var sharedBlankContext *blankContext

func InitializeBlankScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "blank-video-test-*")
		if err != nil {
			return c, err
		}
		sharedBlankContext = &blankContext{
			dir:    dir,
			runner: &recordingRunner{duration: "12.500000\n"},
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if sharedBlankContext != nil && sharedBlankContext.dir != "" {
			os.RemoveAll(sharedBlankContext.dir)
		}
		sharedBlankContext = nil
		return c, nil
	})

	ctx.Step(`^a source video "([^"]*)"$`, aSourceVideo)
	ctx.Step(`^no source video exists at "([^"]*)"$`, noSourceVideoExistsAt)
	ctx.Step(`^the source video has no audio stream$`, theSourceVideoHasNoAudioStream)
	ctx.Step(`^I create a blank video$`, iCreateABlankVideo)
	ctx.Step(`^I create a blank video named "([^"]*)"$`, iCreateABlankVideoNamed)
	ctx.Step(`^the blank video "([^"]*)" should exist$`, theBlankVideoShouldExist)
	ctx.Step(`^the file "([^"]*)" should not exist$`, theFileShouldNotExist)
	ctx.Step(`^ffmpeg should have been called with arguments:$`, ffmpegShouldHaveBeenCalledWithArguments)
	ctx.Step(`^ffmpeg should have been called (\d+) times?$`, ffmpegShouldHaveBeenCalledTimes)
	ctx.Step(`^I should receive an error containing "([^"]*)"$`, iShouldReceiveAnErrorContaining)
	ctx.Step(`^the output should contain "([^"]*)"$`, theOutputShouldContain)
}

func (b *blankContext) path(name string) string {
	return filepath.Join(b.dir, name)
}

func aSourceVideo(name string) error {
	b := sharedBlankContext
	b.sourcePath = b.path(name)
	return os.WriteFile(b.sourcePath, bytes.Repeat([]byte("v"), 1<<20), 0644)
}

func noSourceVideoExistsAt(name string) error {
	b := sharedBlankContext
	b.sourcePath = b.path(name)
	return nil
}

func theSourceVideoHasNoAudioStream() error {
	b := sharedBlankContext
	b.runner.failOn = "-vn"
	b.runner.stderr = "Output file #0 does not contain any stream\n"
	return nil
}

func iCreateABlankVideo() error {
	return runBlank("")
}

func iCreateABlankVideoNamed(name string) error {
	return runBlank(sharedBlankContext.path(name))
}

func runBlank(outputPath string) error {
	b := sharedBlankContext
	b.outputPath = outputPath

	b.err = cmd.RunBlankWithDependencies(
		context.Background(),
		ffmpeg.NewExtractor(ffmpeg.WithExtractorCommandRunner(b.runner)),
		ffmpeg.NewSynthesizer(ffmpeg.WithCommandRunner(b.runner)),
		ffmpeg.NewProber(ffmpeg.WithProberCommandRunner(b.runner)),
		filesystem.NewChecker(),
		appblank.Options{},
		nil,
		b.sourcePath,
		outputPath,
		b.output,
	)
	return nil
}

func theBlankVideoShouldExist(name string) error {
	b := sharedBlankContext
	if b.err != nil {
		return fmt.Errorf("unexpected error: %v", b.err)
	}
	if _, err := os.Stat(b.path(name)); err != nil {
		return fmt.Errorf("expected %s to exist: %w", name, err)
	}
	return nil
}

func theFileShouldNotExist(name string) error {
	b := sharedBlankContext
	if _, err := os.Stat(b.path(name)); err == nil {
		return fmt.Errorf("expected %s not to exist", name)
	}
	return nil
}

// ffmpegCalls returns only the recorded ffmpeg invocations, without ffprobe
func (b *blankContext) ffmpegCalls() [][]string {
	var calls [][]string
	for _, call := range b.runner.calls {
		if call[0] == "ffmpeg" {
			calls = append(calls, call)
		}
	}
	return calls
}

func ffmpegShouldHaveBeenCalledWithArguments(table *godog.Table) error {
	b := sharedBlankContext
	calls := b.ffmpegCalls()
	if len(calls) == 0 {
		return fmt.Errorf("ffmpeg was not called")
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		expectedArg := row.Cells[0].Value
		found := false
		for _, call := range calls {
			for _, arg := range call {
				if arg == expectedArg {
					found = true
				}
			}
		}
		if !found {
			return fmt.Errorf("expected argument %q not found in ffmpeg calls: %v", expectedArg, calls)
		}
	}
	return nil
}

func ffmpegShouldHaveBeenCalledTimes(n int) error {
	b := sharedBlankContext
	if got := len(b.ffmpegCalls()); got != n {
		return fmt.Errorf("expected %d ffmpeg calls, got %d", n, got)
	}
	return nil
}

func iShouldReceiveAnErrorContaining(text string) error {
	b := sharedBlankContext
	if b.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(b.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got: %v", text, b.err)
	}
	return nil
}

func theOutputShouldContain(text string) error {
	b := sharedBlankContext
	if !strings.Contains(b.output.String(), text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, b.output.String())
	}
	return nil
}
