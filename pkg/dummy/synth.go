package dummy

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"topofix-hq/topofix/pkg/errlog"
)

// Placeholder constants baked into every synthesized row. The values are
// deliberately inert: a 120 degree harmonic angle stiff enough to hold shape
// and zeroed dihedral terms, so the preprocessor accepts the topology
// without the placeholders doing real physics.
const (
	angleTheta0 = 120.0
	angleKTheta = 200.0
	angleUB0    = 0.0
	angleKUB    = 0.0

	dihedralPhi0 = 0.0
	dihedralKPhi = 0.0
	dihedralMult = 1
)

// Set holds the synthesized placeholder rows, deduplicated by exact string
// identity and sorted lexicographically.
type Set struct {
	Angles    []string
	Dihedrals []string
}

// Stats counts synthesis outcomes over one batch of records.
type Stats struct {
	// Total is the number of records examined.
	Total int

	// Processed counts records that produced a placeholder row.
	Processed int

	// SkippedNoAtomTypes counts records with no resolved atom types.
	SkippedNoAtomTypes int

	// SkippedUnknown counts records matching neither parameter family.
	SkippedUnknown int

	// SkippedWrongArity counts records whose atom-type count does not fit
	// the matched family.
	SkippedWrongArity int
}

// AngleRow formats a placeholder angle parameter row (harmonic function
// type 1 with zeroed Urey-Bradley terms) for exactly three atom types.
// ok is false when the arity is wrong.
func AngleRow(atomTypes []string) (string, bool) {
	if len(atomTypes) != 3 {
		return "", false
	}
	return fmt.Sprintf("%8s %8s %8s     1   %10.6f   %10.6f   %10.8f   %10.2f ;",
		atomTypes[0], atomTypes[1], atomTypes[2],
		angleTheta0, angleKTheta, angleUB0, angleKUB), true
}

// DihedralRow formats a placeholder proper-dihedral parameter row (function
// type 9, multiplicity 1) for exactly four atom types. ok is false when the
// arity is wrong.
func DihedralRow(atomTypes []string) (string, bool) {
	if len(atomTypes) != 4 {
		return "", false
	}
	return fmt.Sprintf("%8s %8s %8s %8s\t\t9     %10.6f     %10.6f     %d ;",
		atomTypes[0], atomTypes[1], atomTypes[2], atomTypes[3],
		dihedralPhi0, dihedralKPhi, dihedralMult), true
}

// kind is the parameter family a record classifies into.
type kind int

const (
	kindUnknown kind = iota
	kindAngle
	kindDihedral
)

// classifyRules are evaluated in order and the first matching rule wins.
// Within a rule the message markers are checked before the section marker,
// so a message naming the angle family classifies as angle even when the
// record sits in a dihedral-labeled section. The ordering is load-bearing;
// keep it a rule list, not independent conditions.
var classifyRules = []struct {
	kind           kind
	messageMarkers []string
	sectionMarker  string
}{
	{kindAngle, []string{"no default u-b types", "angle type"}, "angle"},
	{kindDihedral, []string{"no default dihedral type", "dihedral type"}, "dihedral"},
}

func classify(rec *errlog.ErrorRecord) kind {
	msg := strings.ToLower(rec.Message)
	section := strings.ToLower(string(rec.Section))

	for _, rule := range classifyRules {
		for _, marker := range rule.messageMarkers {
			if strings.Contains(msg, marker) {
				return rule.kind
			}
		}
		if section != "" && strings.Contains(section, rule.sectionMarker) {
			return rule.kind
		}
	}
	return kindUnknown
}

// Synthesizer turns correlated error records into placeholder parameter
// rows.
type Synthesizer struct {
	logger *slog.Logger
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		logger: slog.Default().With("component", "dummy"),
	}
}

// Synthesize classifies each enriched record as angle- or dihedral-related
// and generates one placeholder row per match. Rows are deduplicated across
// the whole batch and returned sorted, so output is deterministic no matter
// how many errors reference the same atom-type tuple. Records without atom
// types, with an unrecognized message, or with the wrong atom-type count
// are counted and skipped, never fatal.
func (s *Synthesizer) Synthesize(records []*errlog.ErrorRecord) (Set, Stats) {
	stats := Stats{Total: len(records)}
	angles := make(map[string]struct{})
	dihedrals := make(map[string]struct{})

	for _, rec := range records {
		if len(rec.AtomTypes) == 0 {
			stats.SkippedNoAtomTypes++
			continue
		}

		switch classify(rec) {
		case kindAngle:
			row, ok := AngleRow(rec.AtomTypes)
			if !ok {
				stats.SkippedWrongArity++
				s.logger.Debug("skipped angle error, wrong atom count",
					"line", rec.SourceLine,
					"atom_types", len(rec.AtomTypes),
				)
				continue
			}
			angles[row] = struct{}{}
			stats.Processed++
			s.logger.Debug("generated angle placeholder",
				"line", rec.SourceLine,
				"types", strings.Join(rec.AtomTypes, " "),
			)

		case kindDihedral:
			row, ok := DihedralRow(rec.AtomTypes)
			if !ok {
				stats.SkippedWrongArity++
				s.logger.Debug("skipped dihedral error, wrong atom count",
					"line", rec.SourceLine,
					"atom_types", len(rec.AtomTypes),
				)
				continue
			}
			dihedrals[row] = struct{}{}
			stats.Processed++
			s.logger.Debug("generated dihedral placeholder",
				"line", rec.SourceLine,
				"types", strings.Join(rec.AtomTypes, " "),
			)

		default:
			stats.SkippedUnknown++
			s.logger.Debug("skipped unrecognized error",
				"line", rec.SourceLine,
				"message", messagePreview(rec.Message),
			)
		}
	}

	return Set{Angles: sortedRows(angles), Dihedrals: sortedRows(dihedrals)}, stats
}

// Synthesize runs a batch through a default Synthesizer.
func Synthesize(records []*errlog.ErrorRecord) (Set, Stats) {
	return NewSynthesizer().Synthesize(records)
}

func sortedRows(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	rows := make([]string, 0, len(set))
	for row := range set {
		rows = append(rows, row)
	}
	sort.Strings(rows)
	return rows
}

func messagePreview(msg string) string {
	if len(msg) <= 50 {
		return msg
	}
	return msg[:50] + "..."
}
