package blank

import (
	"bytes"
	"testing"

	"blank-video/domain/video"

	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	audio := video.Duration(90)
	output := video.Duration(90.02)

	var buf bytes.Buffer
	RenderReport(&buf, &Result{
		Sizes:          &video.SizeReport{OriginalBytes: 200 * 1024 * 1024, BlankBytes: 5 * 1024 * 1024},
		AudioDuration:  &audio,
		OutputDuration: &output,
	})

	out := buf.String()
	assert.Contains(t, out, "Original video")
	assert.Contains(t, out, "200 MiB")
	assert.Contains(t, out, "5.0 MiB")
	assert.Contains(t, out, "00:01:30.000")
	assert.Contains(t, out, "00:01:30.020")
	assert.Contains(t, out, "Reduced by 97.5%")
}

func TestRenderReport_GrowthAndMissingDurations(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, &Result{
		Sizes: &video.SizeReport{OriginalBytes: 100, BlankBytes: 150},
	})

	out := buf.String()
	assert.Contains(t, out, "Grew by 50.0%")
	assert.Contains(t, out, " - ")
}

func TestRenderReport_NothingKnown(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, &Result{})
	assert.Empty(t, buf.String())
}
