package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== StoreKeeper Status ===")
	c.io.Println()

	if c.monitor.Online() {
		c.io.Println("Connectivity: online")
	} else {
		c.io.Println("Connectivity: offline")
	}

	status := c.syncService.GetStatus()
	if status.Syncing {
		c.io.Println("Sync:         in progress")
	} else if status.AutoSync {
		c.io.Println("Sync:         idle (auto sync enabled)")
	} else {
		c.io.Println("Sync:         idle")
	}

	c.io.Printf("Strategy:     %s\n", c.resolver.Strategy())

	pendingCount, err := c.profileService.PendingCount(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to count pending updates: %w", err)
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("Pending sync: %d update(s) waiting to be synchronized\n", pendingCount)
		c.io.Println("Run 'storekeeper sync' to synchronize with server.")
	} else {
		c.io.Println("All updates synchronized with server")
	}

	return nil
}
