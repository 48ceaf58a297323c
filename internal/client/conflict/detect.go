// Package conflict detects divergence between a local and a remote version of
// the same quote and resolves it according to a named policy.
package conflict

import (
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// Field names a conflict-significant quote field
type Field string

const (
	FieldText     Field = "text"
	FieldCategory Field = "category"
)

// Difference is one diverging field
type Difference struct {
	Field       Field  `json:"field"`
	LocalValue  string `json:"localValue"`
	RemoteValue string `json:"remoteValue"`
}

// Descriptor lists every diverging field of one record.
// Differences is never empty and ordered text, category.
type Descriptor struct {
	RecordID    string       `json:"recordId"`
	Differences []Difference `json:"differences"`
}

// Pending is a conflict waiting for a manual decision
type Pending struct {
	DetectedAt     time.Time    `json:"detectedAt"`
	LocalSnapshot  models.Quote `json:"localSnapshot"`
	RemoteSnapshot models.Quote `json:"remoteSnapshot"`
	Descriptor
}

// Detect сравнивает text и category побайтно, без trim и без учета регистра.
// Id и временные метки не сравниваются. Возвращает nil, если расхождений нет.
func Detect(local, remote models.Quote) *Descriptor {
	var diffs []Difference

	if local.Text != remote.Text {
		diffs = append(diffs, Difference{Field: FieldText, LocalValue: local.Text, RemoteValue: remote.Text})
	}
	if local.Category != remote.Category {
		diffs = append(diffs, Difference{Field: FieldCategory, LocalValue: local.Category, RemoteValue: remote.Category})
	}

	if len(diffs) == 0 {
		return nil
	}
	return &Descriptor{RecordID: local.ID, Differences: diffs}
}

// Has reports whether field diverges
func (d *Descriptor) Has(field Field) bool {
	for _, diff := range d.Differences {
		if diff.Field == field {
			return true
		}
	}
	return false
}
