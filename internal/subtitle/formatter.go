package subtitle

// Cue is the minimal exchange form handed to downstream writers: a
// 1-based index plus the segment's timing and text, untouched.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// FormatCues numbers segments in input order starting at 1. No timing or
// text transformation is applied.
func FormatCues(segments []Segment) []Cue {
	if len(segments) == 0 {
		return nil
	}
	cues := make([]Cue, len(segments))
	for i, seg := range segments {
		cues[i] = Cue{Index: i + 1, Start: seg.Start, End: seg.End, Text: seg.Text}
	}
	return cues
}
