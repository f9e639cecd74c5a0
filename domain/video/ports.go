package video

import "context"

// AudioExtractor defines the interface for demuxing the audio stream of a video
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract copies the audio stream of sourcePath into audioPath without re-encoding
	Extract(ctx context.Context, sourcePath, audioPath string) error
}

// BlankSynthesizer defines the interface for muxing audio onto a synthetic video
type BlankSynthesizer interface {
	// Synthesize writes req.OutputPath from req.AudioPath and a solid-color canvas
	Synthesize(ctx context.Context, req *SynthesisRequest) error
}

// DurationProber defines the interface for reading a container's duration
type DurationProber interface {
	// Duration returns the container-level duration of path
	Duration(ctx context.Context, path string) (Duration, error)
}

// FileChecker defines the interface for checking file existence
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}

// FileSizer reports the size in bytes of a file
type FileSizer interface {
	Size(path string) (int64, error)
}

// FileRemover deletes a file
type FileRemover interface {
	Remove(path string) error
}
