package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source описывает происхождение записи
type Source string

const (
	SourceLocal    Source = "local"    // создана пользователем на этом клиенте
	SourceServer   Source = "server"   // пришла с удаленного источника при синхронизации
	SourceImported Source = "imported" // загружена из JSON файла
)

// Префиксы локально сгенерированных идентификаторов.
// Remote ids никогда не содержат "_", поэтому происхождение видно по id.
const (
	LocalIDPrefix    = "local_"
	ImportedIDPrefix = "imported_"
	DefaultIDPrefix  = "local_default_"
)

// DefaultCategory назначается записям с сервера, если payload не содержит категории
const DefaultCategory = "inspiration"

// Quote представляет одну запись-цитату.
type Quote struct {
	DateAdded    time.Time `json:"dateAdded"`    // DateAdded время создания, не меняется
	LastModified time.Time `json:"lastModified"` // LastModified время последней принятой мутации
	ID           string    `json:"id"`           // ID уникальный идентификатор в пределах store
	Text         string    `json:"text"`         // Text отображаемый текст
	Category     string    `json:"category"`     // Category нормализованная категория (lower case)
	Source       Source    `json:"source"`       // Source происхождение записи
}

// NewLocalID генерирует идентификатор для записи, созданной пользователем
func NewLocalID() string {
	return LocalIDPrefix + uuid.New().String()
}

// NewImportedID генерирует идентификатор для импортированной записи без id
func NewImportedID() string {
	return ImportedIDPrefix + uuid.New().String()
}

// IsLocalID reports whether id was generated on this client (user entry, import or defaults).
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix) || strings.HasPrefix(id, ImportedIDPrefix)
}

// NormalizeCategory приводит категорию к каноническому виду
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Normalize trims text, canonicalizes category and clamps LastModified so that it is
// never before DateAdded.
func (q *Quote) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.Category = NormalizeCategory(q.Category)
	if q.LastModified.Before(q.DateAdded) {
		q.LastModified = q.DateAdded
	}
}

// Validate проверяет инварианты записи после нормализации
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if strings.TrimSpace(q.Category) == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

// Touch refreshes LastModified for an accepted mutation.
func (q *Quote) Touch(now time.Time) {
	if now.Before(q.DateAdded) {
		now = q.DateAdded
	}
	q.LastModified = now
}

// IsCustom reports whether the record was added by the user or by import rather than
// shipped as a default or pulled from the server.
func (q *Quote) IsCustom() bool {
	if q.Source == SourceServer {
		return false
	}
	return !strings.HasPrefix(q.ID, DefaultIDPrefix)
}
