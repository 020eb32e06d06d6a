package cmd

import (
	"fmt"
	"math"

	"github.com/ghostwriter-ai/ghostwriter/internal/note"
	"github.com/spf13/cobra"
)

func newContinueCmd() *cobra.Command {
	var (
		line      int
		col       int
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "continue <note.md>",
		Short: "Continue the note from the cursor position",
		Long: "Sends the note text before the cursor to the completion service and\n" +
			"inserts the continuation as a fenced block on the line after the cursor.\n" +
			"Without --line the cursor defaults to the end of the note.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := note.Load(args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("line") {
				line = doc.LineCount() - 1
			}
			if col < 0 {
				col = math.MaxInt32 // end of line; BeforeCursor clamps
			}

			cfg := initConfig()
			a, err := buildAssistant(cfg)
			if err != nil {
				return err
			}

			result, err := a.ContinueText(cmd.Context(), doc.BeforeCursor(line, col), doc.Frontmatter())
			if err != nil {
				return err
			}

			if printOnly {
				fmt.Println(result)
				return nil
			}

			doc.InsertGenerated(line, result)
			if err := doc.Save(); err != nil {
				return err
			}
			fmt.Printf("Continuation inserted into %s\n", doc.Path)
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "cursor line (0-based; default: last line)")
	cmd.Flags().IntVar(&col, "col", -1, "cursor column (default: end of line)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the continuation instead of editing the note")

	return cmd
}
