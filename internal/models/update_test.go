package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingUpdate_Clone(t *testing.T) {
	now := time.Now()
	original := &PendingUpdate{
		ID:        42,
		OwnerID:   "owner-1",
		Payload:   map[string]any{"name": "Alice", "phone": "123"},
		CreatedAt: now,
		RetryCount: 2,
	}

	clone := original.Clone()

	assert.Equal(t, original, clone)

	// Изменение клона не должно затрагивать оригинал
	clone.Payload["name"] = "Bob"
	clone.RetryCount = 5

	assert.Equal(t, "Alice", original.Payload["name"])
	assert.Equal(t, 2, original.RetryCount)
}

func TestCachedProfile_Clone(t *testing.T) {
	original := &CachedProfile{
		OwnerID:     "owner-1",
		Data:        map[string]any{"name": "Alice"},
		LastUpdated: time.Now(),
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.Data["name"] = "Bob"
	assert.Equal(t, "Alice", original.Data["name"])
}
