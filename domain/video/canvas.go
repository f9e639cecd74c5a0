package video

import (
	"fmt"
	"regexp"
	"strconv"
)

// Canvas describes the synthetic solid-color video the audio is muxed onto
type Canvas struct {
	Width  int
	Height int
	Color  string
	Codec  string
}

// unboundedDuration is the nominal length of the color source in seconds;
// the output is cut to the audio by -shortest
const unboundedDuration = 999999

// DefaultCanvas is a 1280x720 black frame encoded with libx264
var DefaultCanvas = Canvas{
	Width:  1280,
	Height: 720,
	Color:  "black",
	Codec:  "libx264",
}

// resolutionRegex matches WIDTHxHEIGHT
var resolutionRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseResolution parses a resolution string in WIDTHxHEIGHT format
func ParseResolution(s string) (width, height int, err error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT", s)
	}

	width, _ = strconv.Atoi(matches[1])
	height, _ = strconv.Atoi(matches[2])

	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("invalid resolution %q: dimensions must be non-zero", s)
	}
	// libx264 with yuv420p rejects odd dimensions
	if width%2 != 0 || height%2 != 0 {
		return 0, 0, fmt.Errorf("invalid resolution %q: dimensions must be even", s)
	}

	return width, height, nil
}

// Resolution returns the canvas size in WIDTHxHEIGHT format
func (c Canvas) Resolution() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Filter returns the lavfi color source description
func (c Canvas) Filter() string {
	return fmt.Sprintf("color=c=%s:s=%s:d=%d", c.Color, c.Resolution(), unboundedDuration)
}

// Validate checks that the canvas can be handed to ffmpeg
func (c Canvas) Validate() error {
	if _, _, err := ParseResolution(c.Resolution()); err != nil {
		return err
	}
	if c.Color == "" {
		return fmt.Errorf("canvas color is required")
	}
	if c.Codec == "" {
		return fmt.Errorf("canvas video codec is required")
	}
	return nil
}

// SynthesisRequest represents a request to mux audio onto a blank canvas
type SynthesisRequest struct {
	AudioPath  string
	OutputPath string
	Canvas     Canvas
}
