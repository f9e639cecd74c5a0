package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"blank-video/domain/video"
)

// Checker implements the video file ports using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Size returns the size of a regular file in bytes
func (c *Checker) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	return info.Size(), nil
}

// Remove deletes a file; a file that is already gone is not an error
func (c *Checker) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Ensure Checker implements the file ports
var (
	_ video.FileChecker = (*Checker)(nil)
	_ video.FileSizer   = (*Checker)(nil)
	_ video.FileRemover = (*Checker)(nil)
)
