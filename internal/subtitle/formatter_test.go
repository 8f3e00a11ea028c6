package subtitle

import "testing"

func TestFormatCues(t *testing.T) {
	segments := []Segment{
		{Text: "first", Start: 0, End: 1.5},
		{Text: "second", Start: 1.5, End: 3.0},
		{Text: "third", Start: 2.9, End: 4.2},
	}

	cues := FormatCues(segments)
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(cues))
	}

	for i, cue := range cues {
		if cue.Index != i+1 {
			t.Errorf("cue %d index = %d, want %d", i, cue.Index, i+1)
		}
		if cue.Text != segments[i].Text || cue.Start != segments[i].Start || cue.End != segments[i].End {
			t.Errorf("cue %d = %+v does not match segment %+v", i, cue, segments[i])
		}
	}
}

func TestFormatCues_Empty(t *testing.T) {
	if cues := FormatCues(nil); cues != nil {
		t.Errorf("expected nil for empty input, got %v", cues)
	}
}
