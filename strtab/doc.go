// Package strtab implements a deduplicating string table with dual
// ordered indexes.
//
// # Overview
//
// A Store assigns a stable numeric id to every distinct text submitted
// through Add, coalescing repeated submissions into a single record with
// a reference count. The record set is exposed through two independent
// total orders: lexical (by text) and numeric (by id), each backed by its
// own ordered index, so a record can be located by either key in
// logarithmic time.
//
// # Dual-Copy Design
//
// The two indexes hold physically separate copies of each record rather
// than sharing one: every index exclusively owns the payloads it stores.
// This keeps index lifecycles independent (Renumber can discard and
// rebuild the id index without touching the text index) at the cost of a
// known consistency gap: Add's dedup branch bumps RefCnt only on the
// text index's copy, so the copy read through FindByID can report a
// stale count. The text index is authoritative for RefCnt.
//
// # Result Signaling
//
// Mutating operations report a closed three-valued Result (Found,
// NotFound, Failed) rather than errors; callers branch on it explicitly.
// Pure lookups return nil on a miss and never fail.
//
// # Concurrency
//
// A Store is single-threaded: no operation blocks, spawns work, or
// performs I/O, and the store is not safe for concurrent mutation. Wrap
// all access in one external lock if sharing across goroutines; a lock
// per index is not enough, since Add and Renumber pass through states
// where only one index has been updated.
package strtab
