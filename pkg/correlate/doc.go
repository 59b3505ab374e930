// Package correlate maps parsed error records to their topology context.
//
// Each diagnostic points at a line of the topology file. The correlator
// finds the section owning that line (the last section header starting at
// or before it), reads the line, takes its leading tokens as atom indices
// according to the section's arity (two for bonds and pairs, three for
// angles, four for dihedrals) and resolves every index through the atom
// table, substituting "Unknown-<index>" placeholders for misses.
//
// Correlation never fails a run: unresolvable records simply come back with
// empty results and the next record is processed.
package correlate
