package video

import (
	"strings"
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantWidth  int
		wantHeight int
		wantErr    bool
		errMsg     string
	}{
		{name: "hd", input: "1280x720", wantWidth: 1280, wantHeight: 720},
		{name: "tiny", input: "16x16", wantWidth: 16, wantHeight: 16},
		{name: "missing height", input: "1280x", wantErr: true, errMsg: "expected WIDTHxHEIGHT"},
		{name: "star separator", input: "1280*720", wantErr: true, errMsg: "expected WIDTHxHEIGHT"},
		{name: "zero width", input: "0x720", wantErr: true, errMsg: "non-zero"},
		{name: "odd height", input: "1280x719", wantErr: true, errMsg: "must be even"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ParseResolution(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseResolution(%q) expected error, got nil", tt.input)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseResolution(%q) error = %v, want containing %q", tt.input, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResolution(%q) unexpected error: %v", tt.input, err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ParseResolution(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCanvas_Filter(t *testing.T) {
	want := "color=c=black:s=1280x720:d=999999"
	if got := DefaultCanvas.Filter(); got != want {
		t.Errorf("DefaultCanvas.Filter() = %q, want %q", got, want)
	}

	white := Canvas{Width: 640, Height: 360, Color: "white", Codec: "libx264"}
	if got := white.Filter(); got != "color=c=white:s=640x360:d=999999" {
		t.Errorf("Canvas.Filter() = %q", got)
	}
}

func TestCanvas_Validate(t *testing.T) {
	if err := DefaultCanvas.Validate(); err != nil {
		t.Errorf("DefaultCanvas.Validate() unexpected error: %v", err)
	}

	noColor := DefaultCanvas
	noColor.Color = ""
	if err := noColor.Validate(); err == nil {
		t.Error("Validate() expected error for empty color")
	}

	noCodec := DefaultCanvas
	noCodec.Codec = ""
	if err := noCodec.Validate(); err == nil {
		t.Error("Validate() expected error for empty codec")
	}

	negative := DefaultCanvas
	negative.Width = -2
	if err := negative.Validate(); err == nil {
		t.Error("Validate() expected error for negative width")
	}
}
