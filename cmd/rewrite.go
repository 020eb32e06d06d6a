package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghostwriter-ai/ghostwriter/internal/assist"
	"github.com/spf13/cobra"
)

// newRewriteCmd builds one command per rewrite directive: the selection text
// comes from the arguments or stdin, the rewritten text goes to stdout so an
// editor integration can replace the selection with it.
func newRewriteCmd(r assist.Rewrite) *cobra.Command {
	return &cobra.Command{
		Use:   r.ID + " [text]",
		Short: r.Name,
		Example: fmt.Sprintf(`  ghostwriter %s "the quick brown fox"
  echo "selection" | ghostwriter %s`, r.ID, r.ID),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := selectionText(args)
			if err != nil {
				return err
			}

			cfg := initConfig()
			a, err := buildAssistant(cfg)
			if err != nil {
				return err
			}

			result, err := a.RewriteText(cmd.Context(), r, text)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}

// selectionText joins the arguments, falling back to stdin for piped input.
func selectionText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no text: pass it as an argument or pipe it on stdin")
	}
	return text, nil
}
