package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/models"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid", text: "Be yourself.", wantErr: false},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: " \t\n", wantErr: true},
		{name: "max length", text: strings.Repeat("a", MaxTextLen), wantErr: false},
		{name: "too long", text: strings.Repeat("a", MaxTextLen+1), wantErr: true},
		{name: "multibyte counted as runes", text: strings.Repeat("ж", MaxTextLen), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{name: "valid", category: "life", wantErr: false},
		{name: "mixed case", category: " Wisdom ", wantErr: false},
		{name: "empty", category: "  ", wantErr: true},
		{name: "reserved all", category: "ALL", wantErr: true},
		{name: "too long", category: strings.Repeat("c", MaxCategoryLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.category)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSyncInterval(t *testing.T) {
	assert.NoError(t, ValidateSyncInterval(MinSyncInterval))
	assert.NoError(t, ValidateSyncInterval(MaxSyncInterval))
	assert.NoError(t, ValidateSyncInterval(time.Minute))

	err := ValidateSyncInterval(9 * time.Second)
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "sync interval")

	assert.Error(t, ValidateSyncInterval(301*time.Second))
}
