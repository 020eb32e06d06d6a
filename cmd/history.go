package cmd

import (
	"fmt"
	"strings"

	"github.com/ghostwriter-ai/ghostwriter/internal/history"
	"github.com/ghostwriter-ai/ghostwriter/internal/prompt"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := history.DefaultDBPath()
			if err != nil {
				return err
			}
			store, err := history.NewSQLiteStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No generations recorded yet.")
				return nil
			}

			for _, r := range records {
				preview := strings.ReplaceAll(r.Response, "\n", " ")
				preview = prompt.Truncate(preview, 60, prompt.TruncateEnd, prompt.DefaultIndicator)
				fmt.Printf("%s  %-45s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Directive, preview)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of records to show")

	return cmd
}
