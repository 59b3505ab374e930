package correlate

import (
	"log/slog"
	"strconv"
	"strings"

	"topofix-hq/topofix/pkg/errlog"
	"topofix-hq/topofix/pkg/topology"
)

// unknownMarker labels atoms missing from the atom table. Resolution is
// total over the extracted indices so downstream classification always sees
// lists aligned with AtomIndices.
const unknownMarker = "Unknown"

// Correlator resolves error records against a topology's section index and
// atom table.
type Correlator struct {
	logger *slog.Logger
}

// New creates a Correlator.
func New() *Correlator {
	return &Correlator{
		logger: slog.Default().With("component", "correlate"),
	}
}

// Correlate determines which section owns rec's source line, extracts the
// leading atom indices from that line according to the section's arity, and
// resolves each index through the atom table.
//
// It returns the extracted indices with their resolved names, residue
// labels and types, in file order. The owning section is also written back
// into rec so later stages need not resolve it again.
//
// Correlation failures are expected outcomes, not errors: when no section
// starts at or before the line, when the line is past the end of the text,
// or when a leading token is not an integer, all four results are empty and
// the record is otherwise untouched. A line with fewer tokens than the
// section's arity yields empty results too. Indices missing from the table
// resolve to "Unknown-<index>" placeholders; when the table itself is
// empty, only the indices are returned.
func (c *Correlator) Correlate(rec *errlog.ErrorRecord, index topology.SectionIndex, text string, table map[int]topology.AtomInfo) (indices []int, names, residues, types []string) {
	// Owning section: the largest start line at or before the error line.
	// Section start lines are distinct, so the winner is unambiguous.
	var section topology.SectionName
	best := 0
	for name, start := range index {
		if start <= rec.SourceLine && start > best {
			best = start
			section = name
		}
	}
	if best == 0 {
		c.logger.Debug("no section owns error line",
			"error_number", rec.Number,
			"line", rec.SourceLine,
		)
		return nil, nil, nil, nil
	}

	// The section is recorded even when the remaining steps fail, matching
	// the enrich-in-place contract: fields are added, never removed.
	rec.Section = section

	line, ok := topology.Line(text, rec.SourceLine)
	if !ok {
		c.logger.Debug("error line beyond end of topology",
			"error_number", rec.Number,
			"line", rec.SourceLine,
		)
		return nil, nil, nil, nil
	}

	arity := topology.Arity(section)
	tokens := strings.Fields(line)
	if arity == 0 || len(tokens) < arity {
		c.logger.Debug("no atom indices on error line",
			"error_number", rec.Number,
			"line", rec.SourceLine,
			"section", string(section),
			"tokens", len(tokens),
			"arity", arity,
		)
		return nil, nil, nil, nil
	}

	indices = make([]int, 0, arity)
	for _, tok := range tokens[:arity] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			c.logger.Debug("non-numeric atom index on error line",
				"error_number", rec.Number,
				"line", rec.SourceLine,
				"token", tok,
			)
			return nil, nil, nil, nil
		}
		indices = append(indices, n)
	}

	// An empty atom table resolves nothing; the indices alone are still
	// useful for the report.
	if len(table) > 0 {
		names = make([]string, 0, len(indices))
		residues = make([]string, 0, len(indices))
		types = make([]string, 0, len(indices))
		for _, n := range indices {
			if info, ok := table[n]; ok {
				names = append(names, info.Name)
				residues = append(residues, info.ResidueLabel())
				types = append(types, info.Type)
			} else {
				names = append(names, unknownMarker+"-"+strconv.Itoa(n))
				residues = append(residues, unknownMarker)
				types = append(types, unknownMarker)
			}
		}
	}

	c.logger.Debug("correlated error",
		"error_number", rec.Number,
		"line", rec.SourceLine,
		"section", string(section),
		"atoms", len(indices),
	)

	return indices, names, residues, types
}
