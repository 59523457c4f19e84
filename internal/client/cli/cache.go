package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/storekeeper/internal/client/storage"
)

func (c *Cli) runCache(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cache <owner>")
	}
	ownerID := args[0]

	cached, err := c.profileService.CachedProfile(ctx, ownerID)
	switch {
	case errors.Is(err, storage.ErrCacheMiss):
		c.io.Println("No cached profile yet, it will appear after the first sync.")
	case err != nil:
		return err
	default:
		data, marshalErr := json.MarshalIndent(cached.Data, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to format cached profile: %w", marshalErr)
		}
		c.io.Printf("=== Cached Profile (as of %s) ===\n", cached.LastUpdated.Format(time.RFC3339))
		c.io.Printf("%s\n", data)
	}

	// Локальное представление учитывает еще не отправленные правки
	local, err := c.profileService.LocalProfile(ctx, ownerID)
	if err != nil {
		return err
	}
	if len(local) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format local profile: %w", err)
	}
	c.io.Println()
	c.io.Println("=== Local View (with pending updates) ===")
	c.io.Printf("%s\n", data)
	return nil
}
