package main

import (
	"github.com/spf13/cobra"

	"github.com/PatrickHead/libstrings/strtab"
)

var (
	dedupByID     bool
	dedupRenumber bool
)

func init() {
	cmd := newDedupCmd()
	cmd.Flags().BoolVar(&dedupByID, "by-id", false, "List records in id order instead of text order")
	cmd.Flags().BoolVar(&dedupRenumber, "renumber", false, "Compact ids to 0..n-1 in text order before listing")
	rootCmd.AddCommand(cmd)
}

func newDedupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedup [file]",
		Short: "Deduplicate a word list and print the table",
		Long: `The dedup command reads whitespace-separated words from a file (or
stdin when no file is given), interns them into a string table, and
prints one row per distinct word with its id and submission count.

Example:
  strtabctl dedup words.txt
  strtabctl dedup words.txt --by-id
  strtabctl dedup words.txt --renumber --json
  cat words.txt | strtabctl dedup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDedup(path)
		},
	}
	return cmd
}

func runDedup(path string) error {
	store, _, err := loadTable(path)
	if err != nil {
		printError("%v\n", err)
		return err
	}
	defer store.Close()

	if dedupRenumber {
		store.Renumber()
	}

	key := strtab.ByText
	if dedupByID {
		key = strtab.ByID
	}
	entries := collectEntries(store, key)

	if jsonOut {
		return printJSON(entries)
	}
	printEntries(entries)
	return nil
}
