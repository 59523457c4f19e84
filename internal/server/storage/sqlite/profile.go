package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/iudanet/storekeeper/internal/models"
	"github.com/iudanet/storekeeper/internal/server/storage"
)

// GetProfile retrieves a profile by owner id
// Returns storage.ErrProfileNotFound if profile doesn't exist
func (s *Storage) GetProfile(ctx context.Context, ownerID string) (*models.Profile, error) {
	query := `SELECT fields, updated_at FROM profiles WHERE owner_id = ?`

	var (
		fieldsJSON string
		updatedAt  int64
	)
	err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&fieldsJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	fields := make(map[string]any)
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile fields: %w", err)
	}

	return &models.Profile{
		OwnerID:   ownerID,
		Fields:    fields,
		UpdatedAt: time.Unix(updatedAt, 0).UTC(),
	}, nil
}

// UpsertProfile applies a partial field update to the profile.
// Поля, не вошедшие в обновление, сохраняют прежние значения.
func (s *Storage) UpsertProfile(ctx context.Context, ownerID string, fields map[string]any) (*models.Profile, error) {
	existing, err := s.GetProfile(ctx, ownerID)
	if err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	merged := make(map[string]any)
	if existing != nil {
		maps.Copy(merged, existing.Fields)
	}
	maps.Copy(merged, fields)

	fieldsJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile fields: %w", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO profiles (owner_id, fields, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			fields = excluded.fields,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, ownerID, string(fieldsJSON), now.Unix()); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return &models.Profile{
		OwnerID:   ownerID,
		Fields:    merged,
		UpdatedAt: time.Unix(now.Unix(), 0).UTC(),
	}, nil
}
