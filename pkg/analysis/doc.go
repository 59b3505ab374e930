// Package analysis orchestrates the full error correlation pipeline over
// one pair of input files.
//
// # Pipeline
//
// A Runner executes the stages in fixed order: parse the diagnostic file
// into error records, index the topology's sections, build the atom
// metadata table, correlate every record in input order (each enriched
// in place), echo the first N correlated errors to the console,
// synthesize deduplicated placeholder parameter rows, and write the
// analysis report and the parameter file.
//
// Unreadable inputs never abort a run: their consumers see empty input,
// the paths are recorded on the Result, and the run completes degraded.
// Output files are written best-effort; only a write failure is returned
// as an error.
//
// # Usage
//
//	runner := analysis.NewRunner(&analysis.Config{
//		ErrorFile:    "input/errors.txt",
//		TopologyFile: "input/topol.top",
//		ReportFile:   "output/analysis_results.txt",
//		ParamsFile:   "output/dummy_parameters.itp",
//		DisplayCount: 10,
//	})
//	result, err := runner.Run()
//
// The Result carries the enriched records, the section index, the atom
// table, the synthesized parameter rows with their statistics, and the
// run duration.
//
// # Console Narration
//
// Progress narration goes to Config.Console (stdout by default). Runs
// are sequential and ordered, so the narration is deterministic for a
// given input pair. Per-record diagnostics (unresolvable sections,
// skipped records) are structured log lines, not console output.
package analysis
