package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"blank-video/domain/video"
	"blank-video/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and writes config.yaml.

Every value has a working default, so the file is optional; run this to point
blank-video at a specific ffmpeg build or to change the blank canvas.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, cfgFile, cmd.OutOrStdout())
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string, out OutputWriter) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Start from the existing file so re-running setup only changes what is edited
	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(configPath)), false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
		if existing, err := config.Load(configPath); err == nil {
			cfg = existing
		}
	}

	fmt.Fprintln(out, "Welcome to blank-video setup!")
	fmt.Fprintln(out)

	if err := promptTools(prompter, cfg); err != nil {
		return err
	}

	if err := promptCanvas(prompter, cfg); err != nil {
		return err
	}

	if err := promptAudio(prompter, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Configuration saved to %s\n", configPath)
	return nil
}

func promptTools(prompter Prompter, cfg *config.Config) error {
	ffmpegPath, err := prompter.Input("Path to the ffmpeg executable?", cfg.Tools.FFmpeg)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if ffmpegPath != "" {
		cfg.Tools.FFmpeg = ffmpegPath
	}

	ffprobePath, err := prompter.Input("Path to the ffprobe executable?", cfg.Tools.FFprobe)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if ffprobePath != "" {
		cfg.Tools.FFprobe = ffprobePath
	}

	return nil
}

func promptCanvas(prompter Prompter, cfg *config.Config) error {
	resolution, err := prompter.Input("Blank video resolution (WIDTHxHEIGHT)?", cfg.Canvas.Resolution)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if resolution != "" {
		if _, _, err := video.ParseResolution(resolution); err != nil {
			return err
		}
		cfg.Canvas.Resolution = resolution
	}

	color, err := prompter.Input("Blank video color?", cfg.Canvas.Color)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if color != "" {
		cfg.Canvas.Color = color
	}

	codec, err := prompter.Input("Video codec for the blank frames?", cfg.Canvas.Codec)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if codec != "" {
		cfg.Canvas.Codec = codec
	}

	return nil
}

func promptAudio(prompter Prompter, cfg *config.Config) error {
	ext, err := prompter.Input("Extension for the temporary audio file?", cfg.Audio.TempExtension)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if ext != "" {
		cfg.Audio.TempExtension = ext
	}
	return nil
}
