package video

// SizeReport compares the byte size of the source and the blank video
type SizeReport struct {
	OriginalBytes int64
	BlankBytes    int64
}

// Reduction returns how much smaller the blank video is, in percent.
// Negative when the output grew; zero when the original is empty.
func (r SizeReport) Reduction() float64 {
	if r.OriginalBytes <= 0 {
		return 0
	}
	return float64(r.OriginalBytes-r.BlankBytes) / float64(r.OriginalBytes) * 100
}

// Shrunk returns true if the blank video is not larger than the source
func (r SizeReport) Shrunk() bool {
	return r.BlankBytes <= r.OriginalBytes
}
