// Package packaging runs the theme pipeline end to end.
//
// A run moves through INIT (reset the output locations), SCAN (discover
// theme folders), a per-theme stage (structure, schema, history, archive) and
// FINALIZE (write the catalog). Themes are processed concurrently up to the
// configured limit; each worker writes only its own result slot and the slots
// are merged once every worker has finished, so the catalog does not depend
// on scheduling.
//
// A theme that fails any check is reported and skipped; the rest of the run
// continues and its outputs are persisted. Failing to write an archive is
// different: it is an I/O failure of the run, which stops before the catalog
// is written.
package packaging
