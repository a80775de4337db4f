package domain

// TimestampLayout is used both for the bundle filename and for every
// history record emitted during an invocation.
const TimestampLayout = "20060102_150405"

// Job describes one archival invocation. It is constructed once from the
// command line, threaded through every component and never mutated.
type Job struct {
	// Canonical absolute path of the directory being archived.
	SourceDir string

	// Canonical absolute path of the directory receiving bundles and the
	// history file.
	OutputDir string

	// Capture-time timestamp, generated once per invocation. Two runs within
	// the same second produce the same bundle name and the later one
	// overwrites the earlier: accepted behavior at this granularity.
	Timestamp string

	// Bundles older than this many days are deleted after archiving.
	// Negative means retention is disabled.
	RetainDays int
}

// Retention reports whether a sweep should run after archiving.
func (j Job) Retention() bool {
	return j.RetainDays >= 0
}

// Bundle is the persistent artifact of a successful run.
type Bundle struct {
	Path      string
	SizeBytes int64
	SizeHuman string
}

// Result summarizes a finished (possibly partially successful) run.
type Result struct {
	Bundle      Bundle
	HistoryPath string

	// Number of aged bundles deleted by the retention sweep.
	SweptCount int
}
