package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
)

// ImportQuotes merges a JSON array of quotes into the collection.
// Entries without a string text and category are skipped; missing id,
// timestamps and source are defaulted. Entries with an existing id replace it.
func (s *service) ImportQuotes(ctx context.Context, payload []byte) (int, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return 0, &ImportFormatError{Reason: "Invalid file format. Expected an array of quotes.", Err: err}
	}

	now := s.now()
	quotes := make([]models.Quote, 0, len(items))
	for i, item := range items {
		q, ok := parseImported(item, now)
		if !ok {
			s.logger.Debug("Skipping invalid imported entry", "index", i)
			continue
		}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		return 0, &ImportFormatError{Reason: "No valid quotes found in the file."}
	}

	err := s.store.Update(func(tx *store.Txn) error {
		for _, q := range quotes {
			if _, err := tx.Upsert(q); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := s.store.Save(ctx); err != nil {
		return 0, fmt.Errorf("save quotes: %w", err)
	}

	s.logger.Info("Quotes imported", "count", len(quotes), "skipped", len(items)-len(quotes))
	return len(quotes), nil
}

// parseImported проверяет один элемент импорта на границе
func parseImported(raw json.RawMessage, now time.Time) (models.Quote, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.Quote{}, false
	}

	text, ok := stringField(fields, "text")
	if !ok || validation.ValidateText(text) != nil {
		return models.Quote{}, false
	}
	category, ok := stringField(fields, "category")
	if !ok || validation.ValidateCategory(category) != nil {
		return models.Quote{}, false
	}

	q := models.Quote{
		Text:     text,
		Category: category,
		Source:   models.SourceImported,
	}

	if id, ok := stringField(fields, "id"); ok && strings.TrimSpace(id) != "" {
		q.ID = strings.TrimSpace(id)
	} else {
		q.ID = models.NewImportedID()
	}

	q.DateAdded = timeField(fields, "dateAdded", now)
	q.LastModified = timeField(fields, "lastModified", now)

	if source, ok := stringField(fields, "source"); ok {
		switch models.Source(source) {
		case models.SourceLocal, models.SourceServer, models.SourceImported:
			q.Source = models.Source(source)
		}
	}

	q.Normalize()
	return q, true
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

func timeField(fields map[string]json.RawMessage, name string, fallback time.Time) time.Time {
	v, ok := stringField(fields, name)
	if !ok {
		return fallback
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return fallback
	}
	return ts
}

// ExportQuotes returns the whole collection as a pretty-printed JSON array
func (s *service) ExportQuotes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quotes := slices.Collect(s.store.All())
	if quotes == nil {
		quotes = []models.Quote{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(quotes); err != nil {
		return nil, fmt.Errorf("encode quotes: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportToFile writes the export to path, or to the dated default name in
// the working directory when path is empty. Returns the written path.
func (s *service) ExportToFile(ctx context.Context, path string) (string, error) {
	data, err := s.ExportQuotes(ctx)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = ExportFileName(s.now())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	s.logger.Info("Quotes exported", "path", path, "bytes", len(data))
	return path, nil
}
