// Package errlog parses free-form topology preprocessor output into
// structured error records.
//
// The preprocessor reports missing-parameter diagnostics in blocks like
//
//	ERROR 17 [file topol.top, line 4521]:
//	  No default U-B types
//
// separated by blank lines. Parse extracts every block into an ErrorRecord
// carrying the error number, the topology line the diagnostic points at and
// the trimmed message text. Anything that does not match the block grammar
// is ignored, so truncated or noisy logs degrade to fewer records instead
// of failing the run.
package errlog
