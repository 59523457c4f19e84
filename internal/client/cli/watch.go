package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/storekeeper/internal/client/connectivity"
	"github.com/iudanet/storekeeper/internal/client/sync"
)

// runWatch включает периодическую синхронизацию и печатает события
// до прерывания по Ctrl+C
func (c *Cli) runWatch(ctx context.Context) error {
	listenerID := c.syncService.AddListener(func(event sync.Event) {
		ts := time.Now().Format("15:04:05")
		switch event.Type {
		case sync.EventSyncStart:
			c.io.Printf("[%s] sync started\n", ts)
		case sync.EventSyncComplete:
			if event.Result != nil {
				c.io.Printf("[%s] sync completed: %d pushed, %d failed, %d skipped\n",
					ts, event.Result.Synced, event.Result.Failed, event.Result.Skipped)
			}
		case sync.EventSyncFailed:
			c.io.Printf("[%s] update #%d failed after %d attempts\n",
				ts, event.UpdateID, event.RetryCount)
		}
	})
	defer c.syncService.RemoveListener(listenerID)

	connListenerID := c.monitor.AddListener(func(event connectivity.Event, online bool) {
		ts := time.Now().Format("15:04:05")
		c.io.Printf("[%s] connectivity: %s\n", ts, event)
	})
	defer c.monitor.RemoveListener(connListenerID)

	if err := c.syncService.StartAutoSync(); err != nil {
		return fmt.Errorf("failed to start auto sync: %w", err)
	}
	defer c.syncService.StopAutoSync()

	c.io.Println("Watching for changes, press Ctrl+C to stop.")
	<-ctx.Done()
	c.io.Println()
	c.io.Println("Stopped.")
	return nil
}
