package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) newAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add [TEXT]",
		Short: "Add a quote",
		Long:  "Add a quote to the local collection and upload it to the remote feed.\nWithout TEXT the text is read from the prompt.",
		Example: `  quotes add "Simplicity is prerequisite for reliability." -c wisdom
  quotes add --category life`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			}
			return c.runAdd(cmd.Context(), text, category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "quote category")
	return cmd
}

func (c *Cli) runAdd(ctx context.Context, text, category string) error {
	var err error
	if strings.TrimSpace(text) == "" {
		text, err = c.io.ReadInput("Quote text: ")
		if err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	}
	if strings.TrimSpace(category) == "" {
		category, err = c.io.ReadInput("Category: ")
		if err != nil {
			return fmt.Errorf("failed to read category: %w", err)
		}
	}

	res, err := c.data.AddQuote(ctx, text, category)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.io.Println(errorBanner(err.Error()))
		}
		return fmt.Errorf("failed to add quote: %w", err)
	}

	c.io.Println(successBanner("Quote added successfully!"))
	c.io.Printf("ID:       %s\n", res.Quote.ID)
	c.io.Printf("Category: %s\n", res.Quote.Category)
	if res.NewCategory {
		c.io.Println(infoBanner(fmt.Sprintf("New category %q created", res.Quote.Category)))
	}

	switch {
	case res.Pushed:
		c.io.Println(successBanner("Uploaded to server"))
	case res.PushErr != nil:
		c.io.Println(warningBanner("Upload failed, the quote will be retried on the next sync"))
	default:
		c.io.Println(infoBanner("Saved locally, the quote will be uploaded when sync resumes"))
	}
	return nil
}
