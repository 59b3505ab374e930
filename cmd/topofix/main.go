// Topofix correlates molecular topology preprocessor diagnostics with the
// topology they point into.
//
// It reads the free-text error log a topology preprocessor leaves behind,
// locates each complaint inside the topology file, and produces:
//   - An analysis report naming the section, atoms, residues, and atom
//     types behind every diagnostic
//   - A placeholder parameter file with dummy angle and dihedral rows for
//     the missing interactions
//   - An archive of past runs for trend inspection
//
// Usage:
//
//	# Run one analysis with default input locations
//	topofix analyze
//
//	# Analyze specific files
//	topofix analyze --errors run7/errors.txt --topology run7/topol.top
//
//	# Re-run automatically whenever an input changes
//	topofix watch
//
//	# Inspect archived runs
//	topofix history list
//
//	# Show version information
//	topofix version
//
// For complete documentation, see: https://github.com/topofix-hq/topofix
package main

func main() {
	Execute()
}
