// Package index provides an ordered in-memory index with caller-supplied
// ordering and payload lifecycle hooks.
//
// # Overview
//
// A Tree is an ordered map over opaque payloads. The caller supplies the
// comparator at construction time, so the same payload type can be indexed
// under different orderings by independent Tree instances. The strtab
// package uses exactly this: one Tree ordered by text and one ordered by
// numeric id, both holding record payloads.
//
// Balancing is delegated to github.com/google/btree; this package only adds
// the ownership contract the store relies on:
//
//   - Insert refuses duplicate keys. On refusal the item is NOT owned by
//     the tree and remains the caller's to dispose of.
//   - Delete and Teardown invoke the Release hook exactly once per item
//     the tree discards.
//   - Clone produces a deep copy via the Clone hook, so two trees never
//     share payloads.
//
// # Walk Re-entrancy
//
// Walk visits items in ascending key order. The visitor must not insert
// into or delete from the tree being walked. Callers that need to mutate
// during a traversal build a side structure instead (see
// strtab.Store.Renumber, which populates a fresh Tree while walking the
// text index and swaps it in afterwards).
package index
