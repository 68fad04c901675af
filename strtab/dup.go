package strtab

import "fmt"

// Dup deep-copies the store. The source is walked in ascending id order
// and every text is re-submitted through the ordinary Add path on a
// fresh store with the same comparator, so the duplicate shares no
// memory with the source, its ids are contiguous from 0 in the source's
// id order, and every RefCnt restarts at 1. For a store whose ids are
// already contiguous and whose texts were each added once, the
// duplicate is field-for-field identical to the source.
//
// If an individual Add fails the walk stops and the partially built
// duplicate is returned along with the error; the source is never
// modified.
func (s *Store) Dup() (*Store, error) {
	if s == nil {
		return nil, fmt.Errorf("strtab: dup of nil store")
	}

	dst := New(WithComparator(s.cmp))
	err := s.Walk(ByID, func(r *Record) error {
		if res := dst.Add(r.Text); res != Found {
			return fmt.Errorf("strtab: dup add %q: %s", r.Text, res)
		}
		return nil
	})
	if err != nil {
		return dst, err
	}
	return dst, nil
}
