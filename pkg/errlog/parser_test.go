package errlog

import "testing"

func TestParse_Single(t *testing.T) {
	text := "ERROR 1 [file topol.top, line 4521]:\n  No default U-B types\n"

	records := Parse(text)

	if len(records) != 1 {
		t.Fatalf("Parse returned %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Number != 1 {
		t.Errorf("Number = %d, want 1", rec.Number)
	}
	if rec.SourceLine != 4521 {
		t.Errorf("SourceLine = %d, want 4521", rec.SourceLine)
	}
	if rec.Message != "No default U-B types" {
		t.Errorf("Message = %q, want %q", rec.Message, "No default U-B types")
	}
}

func TestParse_MultipleBlocks(t *testing.T) {
	text := `Processing topology...

ERROR 1 [file topol.top, line 4521]:
  No default U-B types

ERROR 2 [file topol.top, line 9812]:
  No default Proper Dih. types


ERROR 3 [file topol.top, line 10233]:
  No default Improper Dih. types
`

	records := Parse(text)

	if len(records) != 3 {
		t.Fatalf("Parse returned %d records, want 3", len(records))
	}

	wantNumbers := []int{1, 2, 3}
	wantLines := []int{4521, 9812, 10233}
	for i, rec := range records {
		if rec.Number != wantNumbers[i] {
			t.Errorf("records[%d].Number = %d, want %d", i, rec.Number, wantNumbers[i])
		}
		if rec.SourceLine != wantLines[i] {
			t.Errorf("records[%d].SourceLine = %d, want %d", i, rec.SourceLine, wantLines[i])
		}
	}
}

func TestParse_MultilineMessage(t *testing.T) {
	text := "ERROR 5 [file topol.top, line 77]:\n  No default Proper Dih. types\n  for this interaction\n\ntrailing noise"

	records := Parse(text)

	if len(records) != 1 {
		t.Fatalf("Parse returned %d records, want 1", len(records))
	}
	want := "No default Proper Dih. types\n  for this interaction"
	if records[0].Message != want {
		t.Errorf("Message = %q, want %q", records[0].Message, want)
	}
}

func TestParse_MessageAtEndOfInput(t *testing.T) {
	text := "ERROR 9 [file topol.top, line 12]: No default dihedral type"

	records := Parse(text)

	if len(records) != 1 {
		t.Fatalf("Parse returned %d records, want 1", len(records))
	}
	if records[0].Message != "No default dihedral type" {
		t.Errorf("Message = %q, want %q", records[0].Message, "No default dihedral type")
	}
}

func TestParse_NonMatchingTextExcluded(t *testing.T) {
	text := `WARNING 1 [file topol.top, line 5]: not an error

ERROR 2 [file other.top, line 6]: wrong file name

ERROR 3 [file topol.top, line 7]: counted
`

	records := Parse(text)

	// Only the block naming topol.top with the ERROR keyword counts.
	if len(records) != 1 {
		t.Fatalf("Parse returned %d records, want 1: %+v", len(records), records)
	}
	if records[0].Number != 3 {
		t.Errorf("Number = %d, want 3", records[0].Number)
	}
}

func TestParse_Empty(t *testing.T) {
	if records := Parse(""); len(records) != 0 {
		t.Errorf("Parse(\"\") returned %d records, want 0", len(records))
	}
	if records := Parse("no diagnostics here"); len(records) != 0 {
		t.Errorf("Parse(noise) returned %d records, want 0", len(records))
	}
}
