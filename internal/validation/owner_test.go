package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		wantErr bool
	}{
		{"valid short", "u1", false},
		{"valid with hyphen", "owner-123", false},
		{"valid with underscore", "store_owner", false},
		{"valid max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"with space", "owner 1", true},
		{"with slash", "owner/1", true},
		{"with cyrillic", "владелец", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOwnerID(tt.ownerID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{"valid simple", "name", false},
		{"valid with underscore", "phone_number", false},
		{"valid with digits", "address2", false},
		{"empty", "", true},
		{"starts with digit", "2address", true},
		{"starts with underscore", "_name", true},
		{"uppercase", "Name", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.field)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
