//go:build integration

package steps

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"blank-video/cmd"
	"blank-video/infrastructure/config"

	"github.com/cucumber/godog"
)

const existingSetupConfig = `tools:
  ffmpeg: "/original/ffmpeg"
canvas:
  resolution: "1920x1080"
  color: "navy"
`

// answeringPrompter answers each question whose message mentions one of its
// keywords; anything else keeps the offered default.
type answeringPrompter struct {
	answers   map[string]string
	overwrite bool
	asked     []string
}

func (p *answeringPrompter) Input(message string, defaultValue string) (string, error) {
	p.asked = append(p.asked, message)
	lower := strings.ToLower(message)
	for keyword, answer := range p.answers {
		if strings.Contains(lower, keyword) {
			return answer, nil
		}
	}
	return defaultValue, nil
}

func (p *answeringPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	p.asked = append(p.asked, message)
	return p.overwrite, nil
}

type setupWorld struct {
	dir        string
	configPath string
	before     []byte
	prompter   *answeringPrompter
	err        error
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	w := &setupWorld{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "blank-video-setup-*")
		if err != nil {
			return c, err
		}
		*w = setupWorld{
			dir:        dir,
			configPath: filepath.Join(dir, "config", "config.yaml"),
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if w.dir != "" {
			os.RemoveAll(w.dir)
		}
		return c, nil
	})

	ctx.Step(`^no config file exists for setup$`, w.noConfigFile)
	ctx.Step(`^a config file already exists for setup$`, w.existingConfigFile)
	ctx.Step(`^I run the setup command with inputs:$`, func(table *godog.Table) error {
		return w.runSetup(false, table)
	})
	ctx.Step(`^I run the setup command with confirmation "(y|n)"$`, func(answer string) error {
		return w.runSetup(answer == "y", nil)
	})
	ctx.Step(`^I run the setup command with confirmation "(y|n)" and inputs:$`, func(answer string, table *godog.Table) error {
		return w.runSetup(answer == "y", table)
	})
	ctx.Step(`^a config file should exist$`, w.configFileExists)
	ctx.Step(`^the config should have (ffmpeg path|canvas resolution|canvas color|temp extension) "([^"]*)"$`, w.configFieldIs)
	ctx.Step(`^the setup should be cancelled$`, w.setupCancelled)
	ctx.Step(`^the existing config should be unchanged$`, w.configUnchanged)
}

func (w *setupWorld) noConfigFile() error {
	return os.MkdirAll(filepath.Dir(w.configPath), 0o755)
}

func (w *setupWorld) existingConfigFile() error {
	if err := os.MkdirAll(filepath.Dir(w.configPath), 0o755); err != nil {
		return err
	}
	w.before = []byte(existingSetupConfig)
	return os.WriteFile(w.configPath, w.before, 0o644)
}

// runSetup answers the prompts named in the table's first column with the
// values of its second column. A nil table answers nothing.
func (w *setupWorld) runSetup(overwrite bool, table *godog.Table) error {
	w.prompter = &answeringPrompter{answers: map[string]string{}, overwrite: overwrite}
	if table != nil {
		for _, row := range table.Rows[1:] {
			w.prompter.answers[strings.ToLower(row.Cells[0].Value)] = row.Cells[1].Value
		}
	}

	w.err = cmd.RunSetupWithPrompter(w.prompter, w.configPath, io.Discard)
	if w.err != nil && table != nil {
		return fmt.Errorf("setup command failed: %w", w.err)
	}
	return nil
}

func (w *setupWorld) configFileExists() error {
	if _, err := os.Stat(w.configPath); err != nil {
		return fmt.Errorf("config file missing at %s: %w", w.configPath, err)
	}
	return nil
}

func (w *setupWorld) configFieldIs(field, expected string) error {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var got string
	switch field {
	case "ffmpeg path":
		got = cfg.Tools.FFmpeg
	case "canvas resolution":
		got = cfg.Canvas.Resolution
	case "canvas color":
		got = cfg.Canvas.Color
	case "temp extension":
		got = cfg.Audio.TempExtension
	}
	if got != expected {
		return fmt.Errorf("expected %s %q, got %q", field, expected, got)
	}
	return nil
}

func (w *setupWorld) setupCancelled() error {
	if w.err != nil {
		return fmt.Errorf("declining should not fail: %w", w.err)
	}
	if w.prompter == nil || w.prompter.overwrite {
		return fmt.Errorf("setup was not declined")
	}
	// Only the overwrite question may have been asked
	if len(w.prompter.asked) != 1 {
		return fmt.Errorf("expected only the overwrite question, got %q", w.prompter.asked)
	}
	return nil
}

func (w *setupWorld) configUnchanged() error {
	content, err := os.ReadFile(w.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if string(content) != string(w.before) {
		return fmt.Errorf("config content was changed")
	}
	return nil
}
