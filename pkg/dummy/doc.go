// Package dummy synthesizes placeholder force-field parameter rows from
// correlated error records.
//
// Missing-parameter diagnostics fall into two families: angles (including
// Urey-Bradley terms) and dihedrals. Classification combines the diagnostic
// message with the owning section name through a priority-ordered rule
// list; the matched family dictates the expected atom-type arity (three for
// angles, four for dihedrals) and the fixed default constants baked into
// the generated row.
//
// Rows are plain preformatted strings so deduplication is exact textual
// identity. The synthesizer accumulates them into sets and returns each set
// lexicographically sorted, making output deterministic across runs and
// insertion orders. Many errors typically collapse onto the same atom-type
// tuple.
package dummy
