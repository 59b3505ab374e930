package analysis

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"topofix-hq/topofix/pkg/correlate"
	"topofix-hq/topofix/pkg/dummy"
	"topofix-hq/topofix/pkg/errlog"
	"topofix-hq/topofix/pkg/report"
	"topofix-hq/topofix/pkg/topology"
)

// Config contains the file paths and console settings for analysis runs.
type Config struct {
	// ErrorFile is the diagnostic text input.
	ErrorFile string

	// TopologyFile is the topology the diagnostics point into.
	TopologyFile string

	// ReportFile is where the human-readable analysis report is written.
	ReportFile string

	// ParamsFile is where the dummy parameter file is written.
	ParamsFile string

	// DisplayCount caps how many correlated errors are echoed to the
	// console. Zero echoes none; the config layer supplies the default.
	DisplayCount int

	// Console receives the progress narration (default: os.Stdout).
	Console io.Writer
}

// Result carries everything one analysis run produced.
type Result struct {
	// Errors are the parsed diagnostic records in input order, enriched
	// in place by correlation.
	Errors []*errlog.ErrorRecord

	// Sections is the topology section index.
	Sections topology.SectionIndex

	// Atoms is the atom metadata table keyed by 1-based atom index.
	Atoms map[int]topology.AtomInfo

	// Dummies holds the synthesized placeholder rows, sorted.
	Dummies dummy.Set

	// Stats counts the synthesis outcomes.
	Stats dummy.Stats

	// Duration is the wall-clock time of the run.
	Duration time.Duration

	// UnreadableInputs lists input paths that could not be read. Their
	// consumers ran on empty input instead of failing.
	UnreadableInputs []string
}

// Degraded reports whether any input file could not be read.
func (r *Result) Degraded() bool {
	return len(r.UnreadableInputs) > 0
}

// Runner orchestrates one analysis: parse diagnostics, index the
// topology, correlate every error, synthesize placeholder parameters and
// write the output files.
type Runner struct {
	config      *Config
	console     io.Writer
	logger      *slog.Logger
	correlator  *correlate.Correlator
	synthesizer *dummy.Synthesizer
}

// NewRunner creates a Runner for the given configuration.
func NewRunner(config *Config) *Runner {
	console := config.Console
	if console == nil {
		console = os.Stdout
	}

	return &Runner{
		config:      config,
		console:     console,
		logger:      slog.Default().With("component", "analysis"),
		correlator:  correlate.New(),
		synthesizer: dummy.NewSynthesizer(),
	}
}

// Run executes the full pipeline once. Unreadable inputs degrade the run
// to empty results for their consumers and are listed on the Result; a
// non-nil error means an output file could not be written. The Result is
// returned in both cases.
func (r *Runner) Run() (*Result, error) {
	started := time.Now()
	result := &Result{}

	fmt.Fprintln(r.console, "Starting analysis of topology errors...")

	fmt.Fprintf(r.console, "\nExtracting error information from %s...\n", r.config.ErrorFile)
	errorText := r.readInput(result, r.config.ErrorFile)
	result.Errors = errlog.Parse(errorText)
	fmt.Fprintf(r.console, "Found %d errors in the file.\n", len(result.Errors))
	r.logger.Info("parsed error diagnostics",
		"file", r.config.ErrorFile,
		"errors", len(result.Errors),
	)

	fmt.Fprintf(r.console, "\nFinding sections in %s...\n", r.config.TopologyFile)
	topologyText := r.readInput(result, r.config.TopologyFile)
	result.Sections = topology.IndexSections(topologyText)
	r.narrateSections(result.Sections)

	fmt.Fprintf(r.console, "\nExtracting atom information from %s...\n", r.config.TopologyFile)
	result.Atoms = topology.BuildAtomTable(topologyText, result.Sections)
	if _, ok := result.Sections[topology.SectionAtoms]; !ok {
		fmt.Fprintln(r.console, "Atoms section not found in topology file")
	}

	fmt.Fprintf(r.console, "\nProcessing %d errors...\n", len(result.Errors))
	for i, rec := range result.Errors {
		indices, names, residues, types := r.correlator.Correlate(rec, result.Sections, topologyText, result.Atoms)
		rec.AtomIndices = indices
		rec.AtomNames = names
		rec.ResidueLabels = residues
		rec.AtomTypes = types

		if i < r.config.DisplayCount {
			displayError(r.console, rec)
		}
	}

	var writeErr error

	fmt.Fprintf(r.console, "\nSaving results to %s...\n", r.config.ReportFile)
	if err := report.SaveAnalysis(r.config.ReportFile, result.Errors); err != nil {
		fmt.Fprintf(r.console, "Error saving results: %v\n", err)
		r.logger.Error("analysis report write failed",
			"file", r.config.ReportFile,
			"error", err,
		)
		writeErr = err
	}

	fmt.Fprintln(r.console, "\nGenerating dummy parameters...")
	result.Dummies, result.Stats = r.synthesizer.Synthesize(result.Errors)
	narrateStats(r.console, result.Stats, result.Dummies)
	fmt.Fprintf(r.console, "Generated %d angle dummy parameters and %d dihedral dummy parameters.\n",
		len(result.Dummies.Angles), len(result.Dummies.Dihedrals))

	fmt.Fprintf(r.console, "\nSaving dummy parameters to %s...\n", r.config.ParamsFile)
	if err := report.SaveParams(r.config.ParamsFile, result.Dummies); err != nil {
		fmt.Fprintf(r.console, "Error saving dummy parameters: %v\n", err)
		r.logger.Error("parameter file write failed",
			"file", r.config.ParamsFile,
			"error", err,
		)
		if writeErr == nil {
			writeErr = err
		}
	}

	result.Duration = time.Since(started)

	if writeErr != nil {
		return result, writeErr
	}

	fmt.Fprintln(r.console, "\nAnalysis completed!")
	r.logger.Info("analysis run completed",
		"errors", len(result.Errors),
		"angle_dummies", len(result.Dummies.Angles),
		"dihedral_dummies", len(result.Dummies.Dihedrals),
		"degraded", result.Degraded(),
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}

// readInput reads one input file. An unreadable input is narrated,
// recorded on the result and replaced by empty text so the stage that
// consumes it degrades instead of failing.
func (r *Runner) readInput(result *Result, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.console, "Error reading %s: %v\n", path, err)
		r.logger.Warn("input file unreadable",
			"file", path,
			"error", err,
		)
		result.UnreadableInputs = append(result.UnreadableInputs, path)
		return ""
	}
	return string(data)
}

// sectionDisplayOrder fixes the console listing order for the section
// narration.
var sectionDisplayOrder = []topology.SectionName{
	topology.SectionAtoms,
	topology.SectionBonds,
	topology.SectionPairs,
	topology.SectionAngles,
	topology.SectionProperDihedrals,
	topology.SectionImproperDihedrals,
}

func (r *Runner) narrateSections(index topology.SectionIndex) {
	fmt.Fprintf(r.console, "Found %d sections in the topology file:\n", len(index))
	for _, name := range sectionDisplayOrder {
		if line, ok := index[name]; ok {
			fmt.Fprintf(r.console, "  %s: Line %d\n", name.Header(), line)
		} else {
			fmt.Fprintf(r.console, "  %s: Not found\n", name.Header())
		}
	}
}

// displayError echoes one correlated error to the console in the same
// block layout the analysis report uses.
func displayError(w io.Writer, rec *errlog.ErrorRecord) {
	fmt.Fprintf(w, "Error %d:\n", rec.Number)
	fmt.Fprintf(w, "  Line: %d\n", rec.SourceLine)
	fmt.Fprintf(w, "  Message: %s\n", rec.Message)

	if len(rec.AtomIndices) > 0 {
		fmt.Fprintf(w, "  Atoms involved: %s\n", joinInts(rec.AtomIndices))
		if len(rec.AtomNames) > 0 {
			fmt.Fprintf(w, "  Atom names: %s\n", strings.Join(rec.AtomNames, ", "))
		}
		if len(rec.AtomTypes) > 0 {
			fmt.Fprintf(w, "  Atom types: %s\n", strings.Join(rec.AtomTypes, ", "))
		}
		if len(rec.ResidueLabels) > 0 {
			fmt.Fprintf(w, "  Residues: %s\n", strings.Join(rec.ResidueLabels, ", "))
		}
	} else {
		fmt.Fprintln(w, "  No atoms identified")
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// narrateStats prints the synthesis outcome counters.
func narrateStats(w io.Writer, stats dummy.Stats, set dummy.Set) {
	fmt.Fprintln(w, "\nDummy parameter generation statistics:")
	fmt.Fprintf(w, "  Total errors: %d\n", stats.Total)
	fmt.Fprintf(w, "  Processed errors: %d\n", stats.Processed)
	fmt.Fprintf(w, "  Skipped (no atom types): %d\n", stats.SkippedNoAtomTypes)
	fmt.Fprintf(w, "  Skipped (unknown error type): %d\n", stats.SkippedUnknown)
	fmt.Fprintf(w, "  Skipped (wrong atom count): %d\n", stats.SkippedWrongArity)
	fmt.Fprintf(w, "  Generated angle dummies: %d\n", len(set.Angles))
	fmt.Fprintf(w, "  Generated dihedral dummies: %d\n", len(set.Dihedrals))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
