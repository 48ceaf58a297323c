package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/quotesync/internal/models"
)

const (
	// MaxTextLen максимальная длина текста цитаты в символах
	MaxTextLen = 1000
	// MaxCategoryLen максимальная длина категории
	MaxCategoryLen = 64

	// MinSyncInterval и MaxSyncInterval ограничивают интервал периодической синхронизации
	MinSyncInterval = 10 * time.Second
	MaxSyncInterval = 300 * time.Second
)

// ValidateText проверяет текст цитаты
// Текст не может быть пустым после trim и не превышает MaxTextLen символов
func ValidateText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &models.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return &models.ValidationError{Field: "text", Reason: fmt.Sprintf("must not exceed %d characters", MaxTextLen)}
	}
	return nil
}

// ValidateCategory проверяет категорию
// "all" зарезервировано для фильтра и не может быть категорией записи
func ValidateCategory(category string) error {
	category = models.NormalizeCategory(category)
	if category == "" {
		return &models.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if category == "all" {
		return &models.ValidationError{Field: "category", Reason: `"all" is reserved`}
	}
	if utf8.RuneCountInString(category) > MaxCategoryLen {
		return &models.ValidationError{Field: "category", Reason: fmt.Sprintf("must not exceed %d characters", MaxCategoryLen)}
	}
	return nil
}

// ValidateSyncInterval проверяет интервал синхронизации (10s - 300s)
func ValidateSyncInterval(d time.Duration) error {
	if d < MinSyncInterval || d > MaxSyncInterval {
		return &models.ValidationError{
			Field:  "sync interval",
			Reason: fmt.Sprintf("must be between %s and %s", MinSyncInterval, MaxSyncInterval),
		}
	}
	return nil
}
