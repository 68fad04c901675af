package strtab

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/PatrickHead/libstrings/strtab/index"
)

// Key selects which index an operation reads.
type Key int

const (
	// ByText selects the lexical index.
	ByText Key = iota
	// ByID selects the numeric index.
	ByID
)

// CompareFunc orders two texts. It returns a negative value when a sorts
// before b, zero when they are equal keys, and a positive value
// otherwise.
type CompareFunc func(a, b string) int

// Option configures a Store at construction time.
type Option func(*Store)

// WithComparator replaces the default byte-order text comparator.
func WithComparator(cmp CompareFunc) Option {
	return func(s *Store) {
		if cmp != nil {
			s.cmp = cmp
		}
	}
}

// WithCollator orders the text index by the collation rules of the given
// language instead of byte order. Texts that collate equal are
// deduplicated into one record.
func WithCollator(tag language.Tag) Option {
	c := collate.New(tag)
	return func(s *Store) {
		s.cmp = c.CompareString
	}
}

// Store is a deduplicating string table. It owns two ordered indexes
// over independent copies of the same logical record set, one keyed by
// text and one by id, plus the id counter for fresh records.
//
// The zero value is not usable; call New.
type Store struct {
	lastID uint32
	cmp    CompareFunc
	byText *index.Tree[*Record]
	byID   *index.Tree[*Record]
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{cmp: strings.Compare}
	for _, opt := range opts {
		opt(s)
	}
	s.byText = s.newTextIndex()
	s.byID = s.newIDIndex()
	return s
}

// recordHooks are shared by both indexes: deep copy on duplication,
// reference decrement on discard.
func recordHooks() index.Hooks[*Record] {
	return index.Hooks[*Record]{
		Clone:   (*Record).clone,
		Release: releaseRecord,
	}
}

func (s *Store) newTextIndex() *index.Tree[*Record] {
	return index.New(func(a, b *Record) bool {
		return s.cmp(a.Text, b.Text) < 0
	}, recordHooks())
}

func (s *Store) newIDIndex() *index.Tree[*Record] {
	return index.New(func(a, b *Record) bool {
		return a.ID < b.ID
	}, recordHooks())
}

// Add interns text. If a record with that text already exists its
// RefCnt is incremented (on the text index's copy); otherwise a new
// record is created with a fresh id and RefCnt 1 and inserted into both
// indexes. Add returns Found on either outcome and Failed on empty text
// or an index refusing the insert. A refused id-index insert unwinds
// the text-index insert so the indexes never disagree on membership.
func (s *Store) Add(text string) Result {
	if s == nil || text == "" {
		return Failed
	}

	if found, ok := s.byText.Find(&Record{Text: text}); ok {
		found.RefCnt++
		return Found
	}

	rec := &Record{Text: text, ID: s.lastID, RefCnt: 1}
	s.lastID++

	if !s.byText.Insert(rec) {
		return Failed
	}
	if !s.byID.Insert(rec.clone()) {
		s.byText.Delete(rec)
		return Failed
	}
	return Found
}

// Remove deletes the record with the given text from both indexes.
// Removal is unconditional: the record is destroyed even when RefCnt is
// greater than one, so RefCnt is informational rather than a
// reservation count. Remove returns Failed when text is empty or not
// present.
func (s *Store) Remove(text string) Result {
	if s == nil || text == "" {
		return Failed
	}

	found, ok := s.byText.Find(&Record{Text: text})
	if !ok {
		return Failed
	}

	probe := &Record{Text: text, ID: found.ID}
	s.byText.Delete(probe)
	s.byID.Delete(probe)
	return Found
}

// FindByText returns the record with the given text, or nil when absent.
// The returned record is the text index's stored copy; treat it as
// read-only.
func (s *Store) FindByText(text string) *Record {
	if s == nil || text == "" {
		return nil
	}
	found, ok := s.byText.Find(&Record{Text: text})
	if !ok {
		return nil
	}
	return found
}

// FindByID returns the record with the given id, or nil when absent.
// The returned record is the id index's stored copy; its RefCnt can lag
// behind the text index's (see the package documentation).
func (s *Store) FindByID(id uint32) *Record {
	if s == nil {
		return nil
	}
	found, ok := s.byID.Find(&Record{ID: id})
	if !ok {
		return nil
	}
	return found
}

// Walk invokes visit once per record in ascending order of the selected
// key. It stops at the first visit error and returns it. A Key outside
// ByText and ByID selects no index, so nothing is visited. The visitor
// must not mutate the store.
func (s *Store) Walk(key Key, visit func(*Record) error) error {
	if s == nil || visit == nil {
		return nil
	}
	switch key {
	case ByText:
		return s.byText.Walk(visit)
	case ByID:
		return s.byID.Walk(visit)
	default:
		return nil
	}
}

// Len returns the number of distinct interned texts.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.byText.Len()
}

// Stats reports store metrics.
type Stats struct {
	Records     int    // distinct interned texts
	TextEntries int    // entries held by the text index
	IDEntries   int    // entries held by the id index
	LastID      uint32 // next id Add will assign
	Impl        string // index implementation name
}

// Stats returns a snapshot of store metrics. TextEntries and IDEntries
// are equal whenever the store's invariants hold; reporting both makes
// drift visible in diagnostics.
func (s *Store) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return Stats{
		Records:     s.byText.Len(),
		TextEntries: s.byText.Len(),
		IDEntries:   s.byID.Len(),
		LastID:      s.lastID,
		Impl:        s.byText.Stats().Impl,
	}
}

// Close tears down both indexes, releasing every record. The store is
// unusable afterwards: Add and Remove report Failed, lookups miss.
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.byText.Teardown()
	s.byID.Teardown()
}
