// Package report writes the two analysis artifacts: the human-readable
// error report and the placeholder parameter (.itp) file.
//
// Both writers work against io.Writer for testability, with Save wrappers
// that create the output file and its parent directory. Formats are fixed;
// the parameter file is consumed verbatim by the simulation preprocessor,
// so its block headers, column comments and row layout must not drift.
package report
