package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/client/data"
)

func (c *Cli) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import quotes from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export all quotes to a JSON file",
		Long:  "Export all quotes to FILE, to quotes-export-YYYY-MM-DD.json by default, or to stdout with '-'.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runExport(cmd.Context(), path)
		},
	}
}

func (c *Cli) runImport(ctx context.Context, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	n, err := c.data.ImportQuotes(ctx, payload)
	if err != nil {
		var fmtErr *data.ImportFormatError
		if errors.As(err, &fmtErr) {
			c.io.Println(errorBanner(fmtErr.Reason))
		}
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	c.io.Println(successBanner(fmt.Sprintf("Successfully imported %d quotes!", n)))
	return nil
}

func (c *Cli) runExport(ctx context.Context, path string) error {
	if path == "-" {
		payload, err := c.data.ExportQuotes(ctx)
		if err != nil {
			return fmt.Errorf("failed to export quotes: %w", err)
		}
		_, err = c.io.Write(payload)
		return err
	}

	written, err := c.data.ExportToFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to export quotes: %w", err)
	}
	c.io.Println(successBanner(fmt.Sprintf("Quotes exported to %s", written)))
	return nil
}
