package main

import (
	"github.com/spf13/cobra"

	"github.com/PatrickHead/libstrings/strtab"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <file> <text>",
		Short: "Look up one text in a deduplicated word list",
		Long: `The lookup command builds a string table from a word list and looks
up a single text, printing the record and the lookup outcome label.

Example:
  strtabctl lookup words.txt hello
  strtabctl lookup words.txt hello --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args[0], args[1])
		},
	}
	return cmd
}

// lookupOutput is the JSON projection of a lookup outcome.
type lookupOutput struct {
	Result string      `json:"result"`
	Record *tableEntry `json:"record,omitempty"`
}

func runLookup(path, text string) error {
	store, _, err := loadTable(path)
	if err != nil {
		printError("%v\n", err)
		return err
	}
	defer store.Close()

	out := lookupOutput{Result: strtab.NotFound.String()}
	if rec := store.FindByText(text); rec != nil {
		out.Result = strtab.Found.String()
		out.Record = &tableEntry{ID: rec.ID, Refs: rec.RefCnt, Text: rec.Text}
	}

	if jsonOut {
		return printJSON(out)
	}

	if out.Record == nil {
		printInfo("%s\n", out.Result)
		return nil
	}
	printInfo("%s  id=%d refs=%d text=%s\n", out.Result, out.Record.ID, out.Record.Refs, out.Record.Text)
	return nil
}
