package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"topofix-hq/topofix/pkg/errlog"
)

// WriteAnalysis writes the human-readable analysis report for records to w.
// Each error gets one block with its line, message and, when resolved, the
// involved atoms with their names, types and residues.
func WriteAnalysis(w io.Writer, records []*errlog.ErrorRecord) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Topology Error Analysis Results")
	fmt.Fprintln(bw, strings.Repeat("=", 30))
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Total errors found: %d\n\n", len(records))

	for _, rec := range records {
		fmt.Fprintf(bw, "Error %d:\n", rec.Number)
		fmt.Fprintf(bw, "  Line: %d\n", rec.SourceLine)
		fmt.Fprintf(bw, "  Message: %s\n", rec.Message)

		if len(rec.AtomIndices) > 0 {
			fmt.Fprintf(bw, "  Atoms involved: %s\n", joinInts(rec.AtomIndices))
			if len(rec.AtomNames) > 0 {
				fmt.Fprintf(bw, "  Atom names: %s\n", strings.Join(rec.AtomNames, ", "))
			}
			if len(rec.AtomTypes) > 0 {
				fmt.Fprintf(bw, "  Atom types: %s\n", strings.Join(rec.AtomTypes, ", "))
			}
			if len(rec.ResidueLabels) > 0 {
				fmt.Fprintf(bw, "  Residues: %s\n", strings.Join(rec.ResidueLabels, ", "))
			}
		} else {
			fmt.Fprintln(bw, "  No atoms identified")
		}

		fmt.Fprintf(bw, "\n%s\n\n", strings.Repeat("-", 30))
	}

	fmt.Fprint(bw, "\nAnalysis completed.\n")

	return bw.Flush()
}

// SaveAnalysis writes the analysis report to path, creating the parent
// directory when missing.
func SaveAnalysis(path string, records []*errlog.ErrorRecord) error {
	f, err := createOutputFile(path)
	if err != nil {
		return err
	}
	if err := WriteAnalysis(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write analysis report: %w", err)
	}
	return f.Close()
}

// createOutputFile creates path for writing, making the parent directory
// first when it does not exist.
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
