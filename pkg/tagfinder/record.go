package tagfinder

import "fmt"

// RecordSize is the number of integers in the flat form of one tag.
const RecordSize = 15

// Record returns the tag as a fixed-width integer record: kind, flags and
// weight, followed by the codepoint offsets of span, text and extra, followed
// by the byte offsets in the same order. Unset positions are -1.
func (t Tag) Record() [RecordSize]int {
	return [RecordSize]int{
		int(t.Kind),
		int(t.Flags),
		t.Weight,
		t.Span.Start.Codepoint,
		t.Span.End.Codepoint,
		t.Text.Start.Codepoint,
		t.Text.End.Codepoint,
		t.Extra.Start.Codepoint,
		t.Extra.End.Codepoint,
		t.Span.Start.Byte,
		t.Span.End.Byte,
		t.Text.Start.Byte,
		t.Text.End.Byte,
		t.Extra.Start.Byte,
		t.Extra.End.Byte,
	}
}

// Records flattens tags into one integer slice of RecordSize fields per tag.
func Records(tags []Tag) []int {
	out := make([]int, 0, len(tags)*RecordSize)
	for _, tag := range tags {
		record := tag.Record()
		out = append(out, record[:]...)
	}
	return out
}

// FromRecords rebuilds tags from their flat form.
func FromRecords(records []int) ([]Tag, error) {
	if len(records)%RecordSize != 0 {
		return nil, fmt.Errorf("record data has %d fields, not a multiple of %d", len(records), RecordSize)
	}

	tags := make([]Tag, 0, len(records)/RecordSize)
	for offset := 0; offset < len(records); offset += RecordSize {
		rec := records[offset : offset+RecordSize]
		tags = append(tags, Tag{
			Kind:   Kind(rec[0]),
			Flags:  Flags(rec[1]),
			Weight: rec[2],
			Span:   recordSpan(rec, 3), //nolint:mnd // record layout
			Text:   recordSpan(rec, 5), //nolint:mnd // record layout
			Extra:  recordSpan(rec, 7), //nolint:mnd // record layout
		})
	}
	return tags, nil
}

// recordSpan reads a span whose start codepoint is at index idx. The byte
// offsets follow six fields later.
func recordSpan(rec []int, idx int) Span {
	const byteOffset = 6
	return Span{
		Start: Position{Codepoint: rec[idx], Byte: rec[idx+byteOffset]},
		End:   Position{Codepoint: rec[idx+1], Byte: rec[idx+1+byteOffset]},
	}
}
