package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/models"
)

func (c *Cli) newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Long:  "List quotes of a category. Without --category the selected category is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", `category to list ("all" for every quote)`)
	return cmd
}

func (c *Cli) newShowCmd() *cobra.Command {
	var (
		category string
		last     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if last {
				return c.runShowLast(cmd.Context())
			}
			return c.runShow(cmd.Context(), category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "pick from this category")
	cmd.Flags().BoolVar(&last, "last", false, "show the last viewed quote again")
	return cmd
}

func (c *Cli) newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories with quote counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCategories(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "use CATEGORY",
		Short: `Select the default category ("all" to clear)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSelectCategory(cmd.Context(), args[0])
		},
	})
	return cmd
}

// resolveCategory возвращает выбранную категорию, если флаг не задан
func (c *Cli) resolveCategory(ctx context.Context, category string) (string, error) {
	if category != "" {
		return models.NormalizeCategory(category), nil
	}
	selected, err := c.data.SelectedCategory(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read selected category: %w", err)
	}
	return selected, nil
}

func (c *Cli) runList(ctx context.Context, category string) error {
	category, err := c.resolveCategory(ctx, category)
	if err != nil {
		return err
	}

	c.io.Println(title("Quotes"))
	c.io.Println()

	view := struct {
		Category string
		Quotes   []models.Quote
	}{
		Category: category,
		Quotes:   slices.Collect(c.data.Quotes(category)),
	}
	return templates.ExecuteTemplate(c.io, "list", view)
}

func (c *Cli) runShow(ctx context.Context, category string) error {
	category, err := c.resolveCategory(ctx, category)
	if err != nil {
		return err
	}

	q, err := c.data.RandomQuote(ctx, category)
	if err != nil {
		if errors.Is(err, data.ErrNoQuotes) {
			c.io.Println(warningBanner(fmt.Sprintf("No quotes in %q", category)))
			return nil
		}
		return fmt.Errorf("failed to pick a quote: %w", err)
	}

	c.io.Println()
	return templates.ExecuteTemplate(c.io, "quote", q)
}

func (c *Cli) runShowLast(ctx context.Context) error {
	q, category, err := c.data.LastViewed(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last viewed quote: %w", err)
	}
	if q == nil {
		c.io.Println(infoBanner("No quote viewed in this session yet. Run 'quotes show'."))
		return nil
	}

	c.io.Printf("Last viewed (filter %q):\n\n", category)
	return templates.ExecuteTemplate(c.io, "quote", q)
}

func (c *Cli) runCategories(ctx context.Context) error {
	selected, err := c.data.SelectedCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to read selected category: %w", err)
	}

	counts := c.data.CategoryCounts()
	total := 0
	for _, n := range counts {
		total += n
	}

	c.io.Println(title("Categories"))
	c.io.Println()
	c.io.Printf("%s %-20s %d\n", marker(selected == "all"), "all", total)
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		c.io.Printf("%s %-20s %d\n", marker(selected == name), name, counts[name])
	}
	return nil
}

func marker(selected bool) string {
	if selected {
		return "*"
	}
	return " "
}

func (c *Cli) runSelectCategory(ctx context.Context, category string) error {
	if err := c.data.SelectCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to select category: %w", err)
	}
	selected, err := c.data.SelectedCategory(ctx)
	if err != nil {
		return fmt.Errorf("failed to read selected category: %w", err)
	}
	c.io.Println(successBanner(fmt.Sprintf("Selected category: %s", selected)))
	return nil
}
