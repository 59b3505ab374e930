package topology

import (
	"bufio"
	"strings"
)

// SectionName identifies a recognized topology section.
type SectionName string

const (
	SectionAtoms             SectionName = "atoms"
	SectionBonds             SectionName = "bonds"
	SectionPairs             SectionName = "pairs"
	SectionAngles            SectionName = "angles"
	SectionProperDihedrals   SectionName = "proper dihedrals"
	SectionImproperDihedrals SectionName = "improper dihedrals"
)

// Header returns the bracketed form of the section name as it would appear
// in a topology file (e.g. "[ atoms ]").
func (s SectionName) Header() string {
	return "[ " + string(s) + " ]"
}

// SectionIndex maps each recognized section to the line number (1-based)
// where it first appears in the topology text.
type SectionIndex map[SectionName]int

// recognizedHeaders lists the raw bracketed headers the indexer matches,
// after trimming and case folding. The dihedrals header is special: it
// appears twice in a molecule definition, first for proper and then for
// improper dihedrals.
var recognizedHeaders = []string{
	"[ atoms ]",
	"[ bonds ]",
	"[ pairs ]",
	"[ angles ]",
	"[ dihedrals ]",
}

// headerSections maps a raw header and its occurrence count (1-based) to a
// logical section identity. Headers without an entry for a given occurrence
// are ignored, so a third dihedrals block or a repeated atoms block never
// overwrites an earlier line number.
func headerSection(header string, occurrence int) (SectionName, bool) {
	if header == "[ dihedrals ]" {
		switch occurrence {
		case 1:
			return SectionProperDihedrals, true
		case 2:
			return SectionImproperDihedrals, true
		}
		return "", false
	}
	if occurrence != 1 {
		return "", false
	}
	switch header {
	case "[ atoms ]":
		return SectionAtoms, true
	case "[ bonds ]":
		return SectionBonds, true
	case "[ pairs ]":
		return SectionPairs, true
	case "[ angles ]":
		return SectionAngles, true
	}
	return "", false
}

// IndexSections scans topology text once, counting physical lines from 1,
// and records where each recognized section starts. Lines are trimmed and
// compared case-insensitively against the recognized headers. Missing
// sections are not an error; the returned index is partial.
func IndexSections(text string) SectionIndex {
	index := make(SectionIndex)
	counts := make(map[string]int)

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		for _, header := range recognizedHeaders {
			if !strings.EqualFold(line, header) {
				continue
			}
			counts[header]++
			if section, ok := headerSection(header, counts[header]); ok {
				index[section] = lineNo
			}
			break
		}
	}

	return index
}

// Arity returns the number of leading atom-index tokens expected on a data
// line of the given section, or 0 for sections whose rows do not reference
// other atoms by index.
func Arity(s SectionName) int {
	return sectionArity[s]
}

// sectionArity is the single source of truth for how many atom indices lead
// a data line in each section kind.
var sectionArity = map[SectionName]int{
	SectionBonds:             2,
	SectionPairs:             2,
	SectionAngles:            3,
	SectionProperDihedrals:   4,
	SectionImproperDihedrals: 4,
}

// Line returns the physical line (1-based) at lineNo within text, without
// its trailing newline. ok is false when lineNo is out of range.
func Line(text string, lineNo int) (string, bool) {
	if lineNo < 1 {
		return "", false
	}
	scanner := bufio.NewScanner(strings.NewReader(text))
	current := 0
	for scanner.Scan() {
		current++
		if current == lineNo {
			return scanner.Text(), true
		}
	}
	return "", false
}
