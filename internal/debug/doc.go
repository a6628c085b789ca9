// Package debug provides optional file-based debug logging.
//
// When the SAFEAREA_DEBUG environment variable is set to a file path, the
// logger returned by [Logger] appends debug-level records to that file.
// Otherwise it discards everything. Components fall back to this logger
// when the caller does not inject one.
package debug
