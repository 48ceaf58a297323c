package cli

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/models"
)

var testQuotes = []models.Quote{
	{ID: "local_default_1", Text: "The only way to do great work is to love what you do.", Category: "motivation"},
	{ID: "42", Text: "sunt aut facere repellat provident", Category: "inspiration", Source: models.SourceServer},
}

func TestCli_runList_UsesSelectedCategory(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newCaptureIO()

	mockData := &data.ServiceMock{
		SelectedCategoryFunc: func(ctx context.Context) (string, error) {
			return "motivation", nil
		},
		QuotesFunc: func(category string) iter.Seq[models.Quote] {
			return seqOf(testQuotes[0])
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runList(ctx, ""))

	require.Len(t, mockData.QuotesCalls(), 1)
	assert.Equal(t, "motivation", mockData.QuotesCalls()[0].Category)

	text := out.String()
	assert.Contains(t, text, "Quotes")
	assert.Contains(t, text, `Found 1 quote(s) in "motivation"`)
	assert.Contains(t, text, "The only way to do great work")
	assert.Contains(t, text, "[motivation] local_default_1")
}

func TestCli_runList_FlagOverridesSelection(t *testing.T) {
	mockIO, out := newCaptureIO()
	mockData := &data.ServiceMock{
		QuotesFunc: func(category string) iter.Seq[models.Quote] {
			return seqOf()
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runList(context.Background(), " Wisdom "))

	assert.Empty(t, mockData.SelectedCategoryCalls())
	assert.Equal(t, "wisdom", mockData.QuotesCalls()[0].Category)
	assert.Contains(t, out.String(), `No quotes found in "wisdom"`)
}

func TestCli_runList_SelectedCategoryError(t *testing.T) {
	mockIO, _ := newCaptureIO()
	mockData := &data.ServiceMock{
		SelectedCategoryFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("boom")
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	assert.Error(t, c.runList(context.Background(), ""))
}

func TestCli_runShow(t *testing.T) {
	mockIO, out := newCaptureIO()
	mockData := &data.ServiceMock{
		RandomQuoteFunc: func(ctx context.Context, category string) (*models.Quote, error) {
			q := testQuotes[1]
			return &q, nil
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runShow(context.Background(), "inspiration"))

	assert.Equal(t, "inspiration", mockData.RandomQuoteCalls()[0].Category)
	assert.Contains(t, out.String(), `"sunt aut facere repellat provident"`)
	assert.Contains(t, out.String(), "Category: inspiration")
}

func TestCli_runShow_NoQuotes(t *testing.T) {
	mockIO, out := newCaptureIO()
	mockData := &data.ServiceMock{
		RandomQuoteFunc: func(ctx context.Context, category string) (*models.Quote, error) {
			return nil, data.ErrNoQuotes
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runShow(context.Background(), "empty"))
	assert.Contains(t, out.String(), `No quotes in "empty"`)
}

func TestCli_runShowLast(t *testing.T) {
	mockIO, out := newCaptureIO()
	calls := 0
	mockData := &data.ServiceMock{
		LastViewedFunc: func(ctx context.Context) (*models.Quote, string, error) {
			calls++
			if calls == 1 {
				return nil, "", nil
			}
			q := testQuotes[0]
			return &q, "all", nil
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runShowLast(context.Background()))
	assert.Contains(t, out.String(), "No quote viewed in this session yet")

	require.NoError(t, c.runShowLast(context.Background()))
	assert.Contains(t, out.String(), `Last viewed (filter "all")`)
	assert.Contains(t, out.String(), "local_default_1")
}

func TestCli_runCategories(t *testing.T) {
	mockIO, out := newCaptureIO()
	mockData := &data.ServiceMock{
		SelectedCategoryFunc: func(ctx context.Context) (string, error) {
			return "life", nil
		},
		CategoryCountsFunc: func() map[string]int {
			return map[string]int{"motivation": 2, "life": 1}
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runCategories(context.Background()))

	lines := mockIO.PrintfCalls()
	require.Len(t, lines, 3)
	assert.Contains(t, out.String(), "  all                  3")
	assert.Contains(t, out.String(), "* life                 1")
	assert.Contains(t, out.String(), "  motivation           2")
}

func TestCli_runSelectCategory(t *testing.T) {
	mockIO, out := newCaptureIO()
	mockData := &data.ServiceMock{
		SelectCategoryFunc: func(ctx context.Context, category string) error {
			return nil
		},
		SelectedCategoryFunc: func(ctx context.Context) (string, error) {
			return "wisdom", nil
		},
	}

	c := &Cli{io: mockIO, data: mockData}
	require.NoError(t, c.runSelectCategory(context.Background(), "Wisdom"))
	assert.Equal(t, "Wisdom", mockData.SelectCategoryCalls()[0].Category)
	assert.Contains(t, out.String(), "Selected category: wisdom")
}
