package video

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBlankRequest(t *testing.T) {
	tests := []struct {
		name        string
		sourcePath  string
		outputPath  string
		tempExt     string
		wantOutput  string
		wantTemp    string
		wantErr     bool
		errContains string
	}{
		{
			name:       "default output path",
			sourcePath: "clip.mp4",
			wantOutput: "clip_blank.mp4",
			wantTemp:   "clip.aac",
		},
		{
			name:       "explicit output path ignores input stem",
			sourcePath: "clip.mp4",
			outputPath: "out.mp4",
			wantOutput: "out.mp4",
			wantTemp:   "clip.aac",
		},
		{
			name:       "nested directory keeps its location",
			sourcePath: "/videos/2025/talk.mkv",
			wantOutput: "/videos/2025/talk_blank.mkv",
			wantTemp:   "/videos/2025/talk.aac",
		},
		{
			name:       "source without extension",
			sourcePath: "/videos/recording",
			wantOutput: "/videos/recording_blank",
			wantTemp:   "/videos/recording.aac",
		},
		{
			name:       "custom temp extension without dot",
			sourcePath: "clip.webm",
			tempExt:    "opus",
			wantOutput: "clip_blank.webm",
			wantTemp:   "clip.opus",
		},
		{
			name:       "source already has the temp extension",
			sourcePath: "song.aac",
			outputPath: "song.mp4",
			wantOutput: "song.mp4",
			wantTemp:   "song_audio.aac",
		},
		{
			name:       "dotfile source has no extension",
			sourcePath: "/videos/.mp4",
			wantOutput: "/videos/.mp4_blank",
			wantTemp:   "/videos/.mp4.aac",
		},
		{
			name:       "dotfile source with extension",
			sourcePath: ".hidden.mkv",
			wantOutput: ".hidden_blank.mkv",
			wantTemp:   ".hidden.aac",
		},
		{
			name:        "empty source path",
			sourcePath:  "",
			wantErr:     true,
			errContains: "source video path is required",
		},
		{
			name:        "output overwrites source",
			sourcePath:  "/videos/clip.mp4",
			outputPath:  "/videos/./clip.mp4",
			wantErr:     true,
			errContains: "must differ from source",
		},
		{
			name:        "output collides with temp audio",
			sourcePath:  "clip.mp4",
			outputPath:  "clip.aac",
			wantErr:     true,
			errContains: "collides with temporary audio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBlankRequest(tt.sourcePath, tt.outputPath, tt.tempExt)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewBlankRequest() expected error, got nil")
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewBlankRequest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("NewBlankRequest() unexpected error: %v", err)
				return
			}

			if got.OutputPath != tt.wantOutput {
				t.Errorf("NewBlankRequest() OutputPath = %q, want %q", got.OutputPath, tt.wantOutput)
			}
			if got.TempAudioPath != tt.wantTemp {
				t.Errorf("NewBlankRequest() TempAudioPath = %q, want %q", got.TempAudioPath, tt.wantTemp)
			}
			if got.SourcePath != tt.sourcePath {
				t.Errorf("NewBlankRequest() SourcePath = %q, want %q", got.SourcePath, tt.sourcePath)
			}
		})
	}
}

func TestNewBlankRequest_OutputIsSourceSentinel(t *testing.T) {
	_, err := NewBlankRequest("clip.mp4", "clip.mp4", "")
	if !errors.Is(err, ErrOutputIsSource) {
		t.Errorf("NewBlankRequest() error = %v, want ErrOutputIsSource", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"clip.mp4", "clip_blank.mp4"},
		{"my.holiday.video.mov", "my.holiday.video_blank.mov"},
		{"/tmp/a b/c.mkv", "/tmp/a b/c_blank.mkv"},
		{".mp4", ".mp4_blank"},
		{"..mp4", "..mp4_blank"},
		{"/videos.d/clip", "/videos.d/clip_blank"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := DefaultOutputPath(tt.source); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}
