package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <directive...>",
		Short: "Generate text from a free-form directive",
		Example: `  ghostwriter generate "Write a haiku about autumn"
  ghostwriter generate Draft an apology for a missed meeting`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := initConfig()
			a, err := buildAssistant(cfg)
			if err != nil {
				return err
			}

			result, err := a.Generate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}
