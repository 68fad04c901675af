package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show string table statistics",
		Long: `The stats command builds a string table from a word list and reports
how many words were submitted, how many distinct records resulted, and
the next id the table would assign.

Example:
  strtabctl stats words.txt
  strtabctl stats words.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runStats(path)
		},
	}
	return cmd
}

// tableStats is the display projection of store statistics.
type tableStats struct {
	Submitted int    `json:"submitted"`
	Records   int    `json:"records"`
	NextID    uint32 `json:"next_id"`
	Impl      string `json:"impl"`
}

func runStats(path string) error {
	store, submitted, err := loadTable(path)
	if err != nil {
		printError("%v\n", err)
		return err
	}
	defer store.Close()

	st := store.Stats()
	out := tableStats{
		Submitted: submitted,
		Records:   st.Records,
		NextID:    st.LastID,
		Impl:      st.Impl,
	}

	if jsonOut {
		return printJSON(out)
	}

	printInfo("Submitted: %d\n", out.Submitted)
	printInfo("Records:   %d\n", out.Records)
	printInfo("Next id:   %d\n", out.NextID)
	printInfo("Index:     %s\n", out.Impl)
	return nil
}
