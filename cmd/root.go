package cmd

import (
	"fmt"
	"os"

	"github.com/ghostwriter-ai/ghostwriter/internal/assist"
	"github.com/ghostwriter-ai/ghostwriter/internal/completion"
	"github.com/ghostwriter-ai/ghostwriter/internal/config"
	"github.com/ghostwriter-ai/ghostwriter/internal/history"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	rootCmd := &cobra.Command{
		Use:   "ghostwriter",
		Short: "AI writing assistant for markdown notes",
		Long: "ghostwriter rewrites, continues and tags markdown notes by sending\n" +
			"directive-labeled prompts to an OpenAI-style completion service.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env in the working directory may carry the API key.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ~/.config/ghostwriter/config.yaml)")

	// One command per rewrite directive, plus the standalone surfaces.
	for _, r := range assist.Rewrites {
		rootCmd.AddCommand(newRewriteCmd(r))
	}
	rootCmd.AddCommand(newContinueCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads configuration or exits.
func initConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// buildAssistant wires the completion service and history log. An empty
// credential is a configuration error surfaced before any network call.
func buildAssistant(cfg *config.Config) (*assist.Assistant, error) {
	if !cfg.Configured() {
		return nil, assist.ErrNotConfigured
	}

	svc := completion.NewOpenAIService(cfg.SecretKey, cfg.BaseURL)
	a := assist.New(svc, cfg)
	a.SetHistory(openHistory())
	return a, nil
}

// openHistory opens the generation log, falling back to a no-op store.
// History is bookkeeping; it never blocks a completion.
func openHistory() history.Store {
	path, err := history.DefaultDBPath()
	if err != nil {
		return history.NullStore{}
	}
	store, err := history.NewSQLiteStore(path)
	if err != nil {
		return history.NullStore{}
	}
	return store
}
