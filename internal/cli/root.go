// Package cli implements the docctl operator commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"doc-compare/internal/config"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

// ContainerFactory builds the dependency container a command runs against.
type ContainerFactory func(ctx context.Context) (*config.Container, error)

// NewRootCommand assembles docctl with all subcommands.
func NewRootCommand(newContainer ContainerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docctl",
		Short: "Extract and compare documents from the command line",
		Long: `docctl runs the document pipeline used by the server without HTTP.

It reads the same environment (and .env file) as the server:
  AZURE_DOCUMENT_INTELLIGENCE_ENDPOINT, AZURE_DOCUMENT_INTELLIGENCE_API_KEY
  LLM_PROVIDER plus the matching Azure OpenAI or Vertex AI settings`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Overall processing timeout")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(
		newExtractCommand(newContainer),
		newCompareCommand(newContainer),
	)
	return rootCmd
}

// Execute runs docctl against the environment configuration.
func Execute() {
	if _, err := config.LoadEnvFile("."); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := NewRootCommand(config.NewContainer).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// commandContext applies the --timeout flag.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// writeOutput prints text to stdout or to the --output file.
func writeOutput(cmd *cobra.Command, text string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
