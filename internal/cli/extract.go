package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExtractCommand(newContainer ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract the text of a document",
		Example: `  # Print the text of contract.pdf
  docctl extract contract.pdf

  # Save it to a file
  docctl extract contract.pdf -o contract.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			container, err := newContainer(ctx)
			if err != nil {
				return err
			}
			defer container.Close()

			document, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			container.Logger.Info("Extracting document", "file", args[0], "bytes", len(document))
			text, err := container.DocumentProcessor.Process(ctx, document)
			if err != nil {
				return err
			}
			return writeOutput(cmd, text)
		},
	}
}
