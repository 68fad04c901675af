package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/PatrickHead/libstrings/strtab"
)

// tableEntry is the JSON/display projection of one record.
type tableEntry struct {
	ID   uint32 `json:"id"`
	Refs uint32 `json:"refs"`
	Text string `json:"text"`
}

// loadTable reads whitespace-separated words from path ("-" or "" for
// stdin) and interns each into a fresh store. It returns the store and
// the number of words submitted.
func loadTable(path string) (*strtab.Store, int, error) {
	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, fmt.Errorf("open word list: %w", err)
		}
		defer f.Close()
		in = f
	}

	store := strtab.New()
	submitted := 0

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		if res := store.Add(word); res != strtab.Found {
			return nil, 0, fmt.Errorf("add %q: %s", word, res)
		}
		submitted++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read word list: %w", err)
	}

	return store, submitted, nil
}

// collectEntries walks the store in the given order into display rows.
func collectEntries(store *strtab.Store, key strtab.Key) []tableEntry {
	var entries []tableEntry
	store.Walk(key, func(r *strtab.Record) error {
		entries = append(entries, tableEntry{ID: r.ID, Refs: r.RefCnt, Text: r.Text})
		return nil
	})
	return entries
}

// printEntries renders rows as a fixed-width table.
func printEntries(entries []tableEntry) {
	printInfo("%6s  %6s  %s\n", "ID", "REFS", "TEXT")
	for _, e := range entries {
		printInfo("%6d  %6d  %s\n", e.ID, e.Refs, e.Text)
	}
}
