package video

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultTempAudioExtension is the extension of the intermediate audio file
const DefaultTempAudioExtension = ".aac"

// blankSuffix is appended to the source stem when no output path is given
const blankSuffix = "_blank"

var (
	// ErrSourceNotFound is returned when the input video does not exist
	ErrSourceNotFound = errors.New("source video does not exist")
	// ErrOutputIsSource is returned when the output would overwrite the input
	ErrOutputIsSource = errors.New("output path must differ from source path")
)

// BlankRequest represents a request to turn a video into an audio-only blank video
type BlankRequest struct {
	SourcePath    string
	OutputPath    string
	TempAudioPath string
}

// NewBlankRequest creates a BlankRequest, deriving the output and temporary audio paths.
// An empty outputPath defaults to <stem>_blank<ext>; an empty tempExt defaults to .aac.
func NewBlankRequest(sourcePath, outputPath, tempExt string) (*BlankRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(sourcePath)
	}

	req := &BlankRequest{
		SourcePath:    sourcePath,
		OutputPath:    outputPath,
		TempAudioPath: TempAudioPath(sourcePath, tempExt),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks that the request will not clobber its own input
func (r *BlankRequest) Validate() error {
	if r.SourcePath == "" {
		return fmt.Errorf("source video path is required")
	}
	if r.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if samePath(r.OutputPath, r.SourcePath) {
		return fmt.Errorf("%w: %s", ErrOutputIsSource, r.OutputPath)
	}
	if samePath(r.TempAudioPath, r.OutputPath) {
		return fmt.Errorf("output path %s collides with temporary audio file", r.OutputPath)
	}
	return nil
}

// DefaultOutputPath returns <stem>_blank<ext> next to the source
func DefaultOutputPath(sourcePath string) string {
	stem, ext := splitExt(sourcePath)
	return stem + blankSuffix + ext
}

// splitExt splits off the extension like filepath.Ext, except that leading
// dots of the file name never start one: ".mp4" is a stem without extension.
func splitExt(path string) (stem, ext string) {
	base := filepath.Base(path)
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return path, ""
	}
	ext = filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}

// TempAudioPath swaps the source extension for ext. When that would name the
// source itself, an _audio suffix is added to the stem.
func TempAudioPath(sourcePath, ext string) string {
	if ext == "" {
		ext = DefaultTempAudioExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	stem, _ := splitExt(sourcePath)
	candidate := stem + ext
	if samePath(candidate, sourcePath) {
		candidate = stem + "_audio" + ext
	}
	return candidate
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
