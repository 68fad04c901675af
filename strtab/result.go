package strtab

// Result is the closed outcome type for store operations.
type Result int

const (
	// Found reports that the operation succeeded or located an entry.
	Found Result = iota
	// NotFound is reserved for lookup-style APIs; the mutating
	// operations resolve to Found or Failed.
	NotFound
	// Failed reports invalid input or an index refusing an insert.
	Failed
)

// Display labels for Result values. These exact literals are the
// interchange form used by UI and logging layers.
const (
	foundLabel    = "FOUND"
	notFoundLabel = "NOT FOUND"
	failedLabel   = "FAILED"
)

// String returns the display label for r. Unknown values collapse to
// the Failed label.
func (r Result) String() string {
	switch r {
	case Found:
		return foundLabel
	case NotFound:
		return notFoundLabel
	default:
		return failedLabel
	}
}

// ParseResult maps a display label back to its Result. Anything that is
// not a known label parses as Failed.
func ParseResult(s string) Result {
	switch s {
	case foundLabel:
		return Found
	case notFoundLabel:
		return NotFound
	default:
		return Failed
	}
}
