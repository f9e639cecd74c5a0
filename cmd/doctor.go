package cmd

import (
	"context"
	"fmt"
	"os"

	"blank-video/infrastructure/ffmpeg"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that ffmpeg and ffprobe can be executed",
	Long: `Runs "-version" against the configured ffmpeg and ffprobe executables
and reports which ones are usable. ffmpeg is required; without ffprobe the
duration report is skipped.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// ToolCheck describes an external executable to verify
type ToolCheck struct {
	Name     string
	Command  string
	Optional bool
	Verifier interface{ VerifyInstalled(context.Context) error }
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := GetConfig()
	if err != nil {
		return err
	}

	checks := []ToolCheck{
		{
			Name:     "ffmpeg",
			Command:  cfg.Tools.FFmpeg,
			Verifier: ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(cfg.Tools.FFmpeg)),
		},
		{
			Name:     "ffprobe",
			Command:  cfg.Tools.FFprobe,
			Optional: true,
			Verifier: ffmpeg.NewProber(ffmpeg.WithFFprobePath(cfg.Tools.FFprobe)),
		},
	}

	return RunDoctorWithDependencies(cmd.Context(), checks, os.Stdout)
}

// RunDoctorWithDependencies verifies each tool and renders a status table.
// It fails only when a required tool is unusable.
func RunDoctorWithDependencies(ctx context.Context, checks []ToolCheck, output OutputWriter) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(output)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tool", "Command", "Status", "Detail"})

	var missing []string
	for _, check := range checks {
		status, detail := "ok", ""
		if err := verifyTool(ctx, check.Verifier); err != nil {
			detail = err.Error()
			if check.Optional {
				status = "missing (optional)"
			} else {
				status = "missing"
				missing = append(missing, check.Name)
			}
		}
		tw.AppendRow(table.Row{check.Name, check.Command, status, detail})
	}
	tw.Render()

	if len(missing) > 0 {
		return fmt.Errorf("required tools unavailable: %v", missing)
	}
	return nil
}
