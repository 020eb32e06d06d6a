package cmd

import (
	"fmt"

	"github.com/ghostwriter-ai/ghostwriter/internal/note"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "tags <note.md>",
		Short: "Suggest tags for the note",
		Long: "Sends the note to the completion service and inserts the suggested\n" +
			"tags as a fenced block at the top of the document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := note.Load(args[0])
			if err != nil {
				return err
			}

			cfg := initConfig()
			a, err := buildAssistant(cfg)
			if err != nil {
				return err
			}

			result, err := a.SuggestTags(cmd.Context(), doc.String(), doc.Frontmatter())
			if err != nil {
				return err
			}

			if printOnly {
				fmt.Println(result)
				return nil
			}

			doc.InsertGeneratedAtStart(result)
			if err := doc.Save(); err != nil {
				return err
			}
			fmt.Printf("Tags inserted into %s\n", doc.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the tags instead of editing the note")

	return cmd
}
