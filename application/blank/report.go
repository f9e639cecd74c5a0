package blank

import (
	"fmt"
	"io"

	"blank-video/domain/video"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderReport writes the before/after comparison of a finished run.
// Nothing is written when neither sizes nor durations are known.
func RenderReport(w io.Writer, r *Result) {
	if r.Sizes == nil && r.AudioDuration == nil && r.OutputDuration == nil {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Size", "Duration"})

	var original, blank string
	if r.Sizes != nil {
		original = formatBytes(r.Sizes.OriginalBytes)
		blank = formatBytes(r.Sizes.BlankBytes)
	}
	tw.AppendRow(table.Row{"Original video", original, formatDuration(r.AudioDuration)})
	tw.AppendRow(table.Row{"Blank video", blank, formatDuration(r.OutputDuration)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()

	if r.Sizes != nil && r.Sizes.OriginalBytes > 0 {
		if r.Sizes.Shrunk() {
			fmt.Fprintf(w, "Reduced by %.1f%%\n", r.Sizes.Reduction())
		} else {
			fmt.Fprintf(w, "Grew by %.1f%%\n", -r.Sizes.Reduction())
		}
	}
}

func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

func formatDuration(d *video.Duration) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
