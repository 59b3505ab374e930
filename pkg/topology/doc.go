// Package topology indexes molecular topology text by section and extracts
// atom metadata.
//
// A topology file is a tabular description of a molecular system in which
// each table is introduced by a bracketed header line such as "[ atoms ]"
// or "[ bonds ]". This package does not parse the full topology grammar; it
// only locates the recognized section headers by line number and reads the
// columns of the atoms section that identify each atom.
//
// # Section Indexing
//
// IndexSections performs a single pass over the text and records the line
// number where each recognized section first appears:
//
//	index := topology.IndexSections(text)
//	if line, ok := index[topology.SectionAngles]; ok {
//	    fmt.Printf("[ angles ] starts at line %d\n", line)
//	}
//
// The "[ dihedrals ]" header is occurrence-counted rather than
// first-match-won: molecule definitions list proper dihedrals in a first
// dihedrals block and improper dihedrals in a second block under the same
// header, so occurrence one maps to SectionProperDihedrals and occurrence
// two to SectionImproperDihedrals. Any further occurrence is ignored.
//
// # Atom Table
//
// BuildAtomTable reads the atoms section span and returns a map from atom
// index to AtomInfo (name, type, residue). Malformed rows are skipped, not
// fatal, so a partially valid topology still yields a usable table.
package topology
