package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDedupCommand(t *testing.T) {
	tests := []struct {
		name        string
		words       string
		byID        bool
		renumber    bool
		wantJSON    bool
		wantOrder   []string
		wantContain []string
	}{
		{
			name:        "text order with counts",
			words:       "pear apple pear plum apple pear",
			wantOrder:   []string{"apple", "pear", "plum"},
			wantContain: []string{"TEXT", "apple", "pear", "plum"},
		},
		{
			name:      "id order follows submission",
			words:     "pear apple plum",
			byID:      true,
			wantOrder: []string{"pear", "apple", "plum"},
		},
		{
			name:      "renumber compacts into text order",
			words:     "pear apple plum",
			byID:      true,
			renumber:  true,
			wantOrder: []string{"apple", "pear", "plum"},
		},
		{
			name:        "json output",
			words:       "b a b",
			wantJSON:    true,
			wantContain: []string{`"text": "a"`, `"refs": 2`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWordFile(t, tt.words)

			dedupByID = tt.byID
			dedupRenumber = tt.renumber
			jsonOut = tt.wantJSON
			quiet = false
			defer func() {
				dedupByID = false
				dedupRenumber = false
				jsonOut = false
			}()

			out, err := captureOutput(t, func() error {
				return runDedup(path)
			})
			if err != nil {
				t.Fatalf("runDedup: %v", err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}

			if tt.wantJSON {
				var entries []tableEntry
				if err := json.Unmarshal([]byte(out), &entries); err != nil {
					t.Fatalf("output is not valid JSON: %v\n%s", err, out)
				}
			}

			// Verify row order when specified.
			last := -1
			for _, word := range tt.wantOrder {
				idx := strings.Index(out, word)
				if idx < 0 {
					t.Fatalf("output missing %q:\n%s", word, out)
				}
				if idx < last {
					t.Errorf("%q out of order:\n%s", word, out)
				}
				last = idx
			}
		})
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeWordFile(t, "a b a c a")

	jsonOut = true
	defer func() { jsonOut = false }()

	out, err := captureOutput(t, func() error {
		return runStats(path)
	})
	if err != nil {
		t.Fatalf("runStats: %v", err)
	}

	var st tableStats
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if st.Submitted != 5 {
		t.Errorf("Submitted = %d; want 5", st.Submitted)
	}
	if st.Records != 3 {
		t.Errorf("Records = %d; want 3", st.Records)
	}
	if st.NextID != 3 {
		t.Errorf("NextID = %d; want 3", st.NextID)
	}
}

func TestLookupCommand(t *testing.T) {
	path := writeWordFile(t, "hello world hello")

	out, err := captureOutput(t, func() error {
		return runLookup(path, "hello")
	})
	if err != nil {
		t.Fatalf("runLookup: %v", err)
	}
	if !strings.Contains(out, "FOUND") || !strings.Contains(out, "refs=2") {
		t.Errorf("unexpected lookup output:\n%s", out)
	}

	out, err = captureOutput(t, func() error {
		return runLookup(path, "absent")
	})
	if err != nil {
		t.Fatalf("runLookup: %v", err)
	}
	if !strings.Contains(out, "NOT FOUND") {
		t.Errorf("unexpected miss output:\n%s", out)
	}
}
