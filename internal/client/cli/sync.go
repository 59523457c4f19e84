package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/storekeeper/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.syncService.ForceSync(ctx)
	switch {
	case errors.Is(err, sync.ErrSyncInProgress):
		c.io.Println("Synchronization is already running.")
		return nil
	case errors.Is(err, sync.ErrOffline):
		return fmt.Errorf("server is unreachable, try again when online")
	case err != nil:
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Total == 0 {
		c.io.Println("Nothing to synchronize.")
		return nil
	}

	c.io.Println("Synchronization completed.")
	c.io.Println()
	c.io.Printf("Pushed to server: %d update(s)\n", result.Synced)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts:        %d\n", result.Conflicts)
	}
	if result.Failed > 0 {
		c.io.Printf("Failed:           %d (will be retried)\n", result.Failed)
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped:          %d (waiting for manual resolution)\n", result.Skipped)
	}
	return nil
}
