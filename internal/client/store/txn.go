package store

import (
	"maps"
	"slices"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
)

// Txn is the mutable view of the collection handed to Store.Update.
// It must not be retained after the callback returns.
type Txn struct {
	records []models.Quote
	index   map[string]int // id -> позиция в records
}

// Upsert вставляет запись или заменяет существующую, сохраняя позицию
func (tx *Txn) Upsert(q models.Quote) (inserted bool, err error) {
	q.Normalize()
	if err := validate(q); err != nil {
		return false, err
	}

	if i, ok := tx.index[q.ID]; ok {
		tx.records[i] = q
		return false, nil
	}

	tx.index[q.ID] = len(tx.records)
	tx.records = append(tx.records, q)
	return true, nil
}

func (tx *Txn) Get(id string) (models.Quote, bool) {
	i, ok := tx.index[id]
	if !ok {
		return models.Quote{}, false
	}
	return tx.records[i], true
}

func (tx *Txn) Remove(id string) bool {
	i, ok := tx.index[id]
	if !ok {
		return false
	}

	tx.records = slices.Delete(tx.records, i, i+1)
	tx.reindex()
	return true
}

func (tx *Txn) Clear() {
	tx.records = nil
	clear(tx.index)
}

func (tx *Txn) Len() int {
	return len(tx.records)
}

// replaceAll заменяет коллекцию; при повторе id побеждает первая запись
func (tx *Txn) replaceAll(records []models.Quote) {
	tx.records = make([]models.Quote, 0, len(records))
	tx.index = make(map[string]int, len(records))
	for _, q := range records {
		if _, dup := tx.index[q.ID]; dup {
			continue
		}
		tx.index[q.ID] = len(tx.records)
		tx.records = append(tx.records, q)
	}
}

func (tx *Txn) reindex() {
	clear(tx.index)
	for i, q := range tx.records {
		tx.index[q.ID] = i
	}
}

func (tx *Txn) clone() Txn {
	return Txn{
		records: slices.Clone(tx.records),
		index:   maps.Clone(tx.index),
	}
}

// HasCategory reports whether any record belongs to category
func (tx *Txn) HasCategory(category string) bool {
	return slices.ContainsFunc(tx.records, func(q models.Quote) bool { return q.Category == category })
}

// validate принимает ровно то, что принимает импорт:
// store не может содержать запись, которую не переживет export/import
func validate(q models.Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := validation.ValidateText(q.Text); err != nil {
		return err
	}
	return validation.ValidateCategory(q.Category)
}
