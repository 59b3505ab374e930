package errlog

import (
	"regexp"
	"strconv"
	"strings"

	"topofix-hq/topofix/pkg/topology"
)

// ErrorRecord is one structured diagnostic extracted from preprocessor
// output. The parser fills Number, SourceLine and Message; the correlator
// later enriches the record in place with the owning section and the
// resolved atom fields. Fields are only ever added, never removed.
type ErrorRecord struct {
	// Number is the diagnostic's own sequence number.
	Number int

	// SourceLine is the 1-based topology line the diagnostic points at.
	SourceLine int

	// Message is the trimmed diagnostic text, possibly spanning multiple
	// physical lines in the source.
	Message string

	// Section is the owning topology section, written by the correlator.
	// Empty until correlation, or when no section could be resolved.
	Section topology.SectionName

	// AtomIndices holds the atom numbers extracted from the offending
	// topology line, in file order.
	AtomIndices []int

	// AtomNames, AtomTypes and ResidueLabels hold the resolved metadata
	// for each extracted index, parallel to AtomIndices. Unresolvable
	// indices carry "Unknown-<index>" / "Unknown" placeholders.
	AtomNames     []string
	AtomTypes     []string
	ResidueLabels []string
}

// errorPattern matches one diagnostic block. The message is everything
// after the colon up to the first blank line or end of input; the
// terminator is consumed by the match, which is safe for non-overlapping
// scanning because a new block never starts inside it.
var errorPattern = regexp.MustCompile(`(?s)ERROR (\d+) \[file topol\.top, line (\d+)\]:\s+(.*?)(?:\n\n|\z)`)

// Parse extracts every diagnostic block of the form
//
//	ERROR <n> [file topol.top, line <m>]: <message...>
//
// from raw preprocessor output. Messages may span multiple physical lines
// and end at a blank line or end of input. Text that does not match the
// pattern is skipped; empty input yields no records. Parse never fails, it
// degrades to fewer records.
func Parse(text string) []*ErrorRecord {
	if text == "" {
		return nil
	}

	matches := errorPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	records := make([]*ErrorRecord, 0, len(matches))
	for _, m := range matches {
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		line, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		records = append(records, &ErrorRecord{
			Number:     number,
			SourceLine: line,
			Message:    strings.TrimSpace(m[3]),
		})
	}
	return records
}
