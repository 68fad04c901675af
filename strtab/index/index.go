package index

import "github.com/google/btree"

// defaultDegree is the btree branching factor. 16 keeps nodes within a
// cache line budget for pointer-sized payloads and is the value the
// google/btree README recommends for general workloads.
const defaultDegree = 16

// LessFunc reports whether a sorts strictly before b.
// Items for which neither Less(a, b) nor Less(b, a) holds are considered
// equal keys; Insert refuses the second one.
type LessFunc[T any] func(a, b T) bool

// Hooks bundles the payload lifecycle callbacks a Tree needs.
//
// Clone must return an independent deep copy of an item. It is used by
// Tree.Clone so that no payload is ever shared between two trees.
//
// Release is invoked exactly once for every item the tree discards
// (Delete, Teardown). It may be nil. Release must tolerate being called
// on an item that is still referenced elsewhere: the tree only reports
// that it no longer holds the item.
type Hooks[T any] struct {
	Clone   func(T) T
	Release func(T)
}

// Tree is an ordered index over payloads of type T.
// It is not safe for concurrent use.
type Tree[T any] struct {
	less  LessFunc[T]
	hooks Hooks[T]
	bt    *btree.BTreeG[T]
}

// New creates an empty Tree ordered by less.
func New[T any](less LessFunc[T], hooks Hooks[T]) *Tree[T] {
	if less == nil {
		return nil
	}
	return &Tree[T]{
		less:  less,
		hooks: hooks,
		bt:    btree.NewG(defaultDegree, btree.LessFunc[T](less)),
	}
}

// Find returns the stored item whose key equals probe's key.
// The probe only needs its key fields populated. Find never mutates
// the tree.
func (t *Tree[T]) Find(probe T) (T, bool) {
	var zero T
	if t == nil || t.bt == nil {
		return zero, false
	}
	return t.bt.Get(probe)
}

// Insert adds item to the tree. It returns false without taking
// ownership when an item with an equal key is already present or the
// tree has been torn down; the caller must dispose of the rejected item.
func (t *Tree[T]) Insert(item T) bool {
	if t == nil || t.bt == nil {
		return false
	}
	if _, dup := t.bt.Get(item); dup {
		return false
	}
	t.bt.ReplaceOrInsert(item)
	return true
}

// Delete removes the item whose key equals probe's key and passes it to
// the Release hook. It reports whether an item was removed.
func (t *Tree[T]) Delete(probe T) bool {
	if t == nil || t.bt == nil {
		return false
	}
	removed, ok := t.bt.Delete(probe)
	if !ok {
		return false
	}
	if t.hooks.Release != nil {
		t.hooks.Release(removed)
	}
	return true
}

// Walk invokes visit once per item in ascending key order. It stops at
// the first visit error and returns it. The visitor must not insert into
// or delete from this tree.
func (t *Tree[T]) Walk(visit func(T) error) error {
	if t == nil || t.bt == nil || visit == nil {
		return nil
	}
	var err error
	t.bt.Ascend(func(item T) bool {
		err = visit(item)
		return err == nil
	})
	return err
}

// Clone returns a new Tree with the same ordering and hooks holding a
// deep copy of every item, produced by the Clone hook. Without a Clone
// hook the items themselves are reused.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil || t.bt == nil {
		return nil
	}
	nt := New(t.less, t.hooks)
	t.bt.Ascend(func(item T) bool {
		if t.hooks.Clone != nil {
			item = t.hooks.Clone(item)
		}
		nt.bt.ReplaceOrInsert(item)
		return true
	})
	return nt
}

// Teardown releases every item and leaves the tree unusable. Any later
// Insert or Delete reports failure; Find and Walk see an empty tree.
func (t *Tree[T]) Teardown() {
	if t == nil || t.bt == nil {
		return
	}
	if t.hooks.Release != nil {
		t.bt.Ascend(func(item T) bool {
			t.hooks.Release(item)
			return true
		})
	}
	t.bt.Clear(false)
	t.bt = nil
}

// Len returns the number of items currently held.
func (t *Tree[T]) Len() int {
	if t == nil || t.bt == nil {
		return 0
	}
	return t.bt.Len()
}

// Stats reports index metrics.
type Stats struct {
	Items int    // number of items held
	Impl  string // implementation name
}

// Stats returns metrics for this tree.
func (t *Tree[T]) Stats() Stats {
	return Stats{Items: t.Len(), Impl: "btree"}
}
