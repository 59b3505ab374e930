package topology

import (
	"bufio"
	"strconv"
	"strings"
)

// AtomInfo holds the metadata parsed from one atom record.
type AtomInfo struct {
	// Name is the atom name (fifth column of the atoms section).
	Name string

	// Type is the force-field atom type (second column).
	Type string

	// ResidueNumber is the residue sequence number, kept as raw token text.
	ResidueNumber string

	// ResidueName is the residue name (e.g. "ALA").
	ResidueName string
}

// ResidueLabel returns the residue name and number joined in display form,
// e.g. "ALA1".
func (a AtomInfo) ResidueLabel() string {
	return a.ResidueName + a.ResidueNumber
}

// BuildAtomTable parses the atoms section span of the topology text into a
// table keyed by atom index. The span starts on the line after the atoms
// header and ends just before the nearest section that starts below it (or
// at end of input when the atoms section is last).
//
// Blank lines and comment lines starting with ";" are skipped. A data line
// must have at least five whitespace-separated tokens, read positionally as
// index, type, residue number, residue name and atom name; extra columns
// (charge, mass, ...) are ignored. Lines whose index token is not an
// integer are dropped. Duplicate indices overwrite earlier entries.
//
// A missing atoms section yields an empty table, not an error.
func BuildAtomTable(text string, index SectionIndex) map[int]AtomInfo {
	table := make(map[int]AtomInfo)

	start, ok := index[SectionAtoms]
	if !ok {
		return table
	}

	// Exclusive end of the atoms span: the smallest section start line
	// strictly after the atoms header.
	end := 0
	for _, line := range index {
		if line > start && (end == 0 || line < end) {
			end = line
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= start {
			continue
		}
		if end != 0 && lineNo >= end {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 5 {
			continue
		}
		atomNum, err := strconv.Atoi(tokens[0])
		if err != nil {
			continue
		}

		table[atomNum] = AtomInfo{
			Name:          tokens[4],
			Type:          tokens[1],
			ResidueNumber: tokens[2],
			ResidueName:   tokens[3],
		}
	}

	return table
}
