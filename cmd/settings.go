package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ghostwriter-ai/ghostwriter/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigSetKeyCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := initConfig()
			fmt.Printf("openai_secret_key: %s\n", maskSecret(cfg.SecretKey))
			if cfg.BaseURL != "" {
				fmt.Printf("base_url: %s\n", cfg.BaseURL)
			}
			fmt.Printf("max_tokens: %d\n", cfg.MaxTokens)
			fmt.Printf("temperature: %g\n", cfg.Temperature)
			fmt.Printf("top_p: %g\n", cfg.TopP)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <max-tokens|temperature|top-p|base-url> <value>",
		Short: "Change a tuning setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			switch key {
			case "max-tokens":
				n, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("max-tokens must be an integer: %w", err)
				}
				if n < 0 || n > config.MaxTokensCeiling {
					return fmt.Errorf("max-tokens must be in [0, %d]", config.MaxTokensCeiling)
				}
				return saveSetting("max_tokens", n)
			case "temperature", "top-p":
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("%s must be a number: %w", key, err)
				}
				if f < 0 || f > 1 {
					return fmt.Errorf("%s must be in [0, 1]", key)
				}
				return saveSetting(strings.ReplaceAll(key, "-", "_"), f)
			case "base-url":
				return saveSetting("base_url", raw)
			default:
				return fmt.Errorf("unknown setting %q", key)
			}
		},
	}
}

func newConfigSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Store the completion service API key",
		Long: "Reads the API key without echo and stores it in the OS keyring when\n" +
			"one is available, falling back to the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readSecret("API key: ")
			if err != nil {
				return err
			}
			if key == "" {
				return fmt.Errorf("API key cannot be empty")
			}

			if config.KeyringAvailable() {
				if err := config.StoreSecret(key); err != nil {
					return fmt.Errorf("store key in keyring: %w", err)
				}
				fmt.Println("API key stored in the OS keyring.")
				return nil
			}

			if err := saveSetting("openai_secret_key", key); err != nil {
				return err
			}
			fmt.Println("No OS keyring available; API key saved to the config file.")
			return nil
		},
	}
}

func saveSetting(key string, value any) error {
	if err := config.SaveValue(cfgFile, key, value); err != nil {
		return err
	}
	fmt.Printf("%s saved.\n", key)
	return nil
}

// readSecret reads a line without echo when stdin is a terminal, or a plain
// line otherwise (piped input, tests).
func readSecret(promptText string) (string, error) {
	fmt.Print(promptText)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func maskSecret(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
