package strtab

// Record describes one interned string: its text, the id assigned at
// creation, and the number of times the text has been submitted since.
//
// Text is immutable once the record exists. ID changes only during
// Renumber. RefCnt is authoritative on the copy reachable through the
// text index (see the package documentation).
type Record struct {
	Text   string
	ID     uint32
	RefCnt uint32
}

// clone returns an independent copy of r. Go strings are immutable, so
// sharing the text backing array still yields fully independent records.
func (r *Record) clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// releaseRecord is the index release hook. It mirrors the reference
// semantics of the store: the index reports it no longer holds the
// record, and the count of live references drops by one. A record may be
// released once per index copy, so the hook never assumes it is the
// last holder.
func releaseRecord(r *Record) {
	if r == nil || r.RefCnt == 0 {
		return
	}
	r.RefCnt--
}
