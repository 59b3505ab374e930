package report

import (
	"bufio"
	"fmt"
	"io"

	"topofix-hq/topofix/pkg/dummy"
)

// Column header comments for the generated parameter blocks, aligned with
// the fixed-width rows the synthesizer emits.
const (
	angleColumns    = ";      i        j        k  func       theta0       ktheta          ub0          kub"
	dihedralColumns = ";      i        j        k        l  func         phi0         kphi  mult"
)

// WriteParams writes the placeholder parameter file for set to w. The
// angletypes and dihedraltypes blocks appear only when their sets are
// non-empty; the surrounding header and footer comments are always written
// so downstream tooling can recognize the file even when no parameters were
// generated.
func WriteParams(w io.Writer, set dummy.Set) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "; Dummy parameters generated for topology errors\n\n")

	if len(set.Angles) > 0 {
		fmt.Fprintln(bw, "[ angletypes ]")
		fmt.Fprintln(bw, angleColumns)
		for _, row := range set.Angles {
			fmt.Fprintln(bw, row)
		}
		fmt.Fprintln(bw)
	}

	if len(set.Dihedrals) > 0 {
		fmt.Fprintln(bw, "[ dihedraltypes ]")
		fmt.Fprintln(bw, dihedralColumns)
		for _, row := range set.Dihedrals {
			fmt.Fprintln(bw, row)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "; End of dummy parameters")

	return bw.Flush()
}

// SaveParams writes the parameter file to path, creating the parent
// directory when missing.
func SaveParams(path string, set dummy.Set) error {
	f, err := createOutputFile(path)
	if err != nil {
		return err
	}
	if err := WriteParams(f, set); err != nil {
		f.Close()
		return fmt.Errorf("failed to write parameter file: %w", err)
	}
	return f.Close()
}
