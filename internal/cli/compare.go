package cli

import (
	"fmt"
	"os"

	"doc-compare/internal/service"

	"github.com/spf13/cobra"
)

func newCompareCommand(newContainer ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [file1] [file2]",
		Short: "Compare two documents and print a markdown analysis",
		Example: `  docctl compare lease-2023.pdf lease-2024.pdf -o diff.md`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			container, err := newContainer(ctx)
			if err != nil {
				return err
			}
			defer container.Close()

			documents := make([][]byte, len(args))
			for i, path := range args {
				if documents[i], err = os.ReadFile(path); err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
			}

			texts, err := service.ProcessAll(ctx, container.DocumentProcessor, documents)
			if err != nil {
				return err
			}

			result, err := container.ComparisonService.Compare(ctx, texts[0], texts[1])
			if err != nil {
				return err
			}
			return writeOutput(cmd, result)
		},
	}
}
