package strtab

// Renumber reassigns contiguous ids 0..n-1 in ascending text order and
// rebuilds the id index from scratch. The text index's record set is
// untouched apart from the id fields, which are rewritten in place —
// the only point in a record's life where its id changes.
//
// The rebuild is two-phase: the replacement id index is populated on
// the side while the text index is walked, then installed once the walk
// completes. A record's ordering key is never mutated while the record
// is live inside the index ordered by that key.
func (s *Store) Renumber() {
	if s == nil {
		return
	}

	s.byID.Teardown()

	fresh := s.newIDIndex()
	var next uint32
	s.byText.Walk(func(r *Record) error {
		r.ID = next
		if !fresh.Insert(r.clone()) {
			// Only reachable if the fresh index refuses an insert;
			// skip the record rather than abort the rebuild.
			return nil
		}
		next++
		return nil
	})

	s.byID = fresh
	s.lastID = next
}
