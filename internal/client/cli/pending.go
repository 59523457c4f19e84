package cli

import (
	"context"
	"encoding/json"
	"time"
)

func (c *Cli) runPending(ctx context.Context, args []string) error {
	ownerID := ""
	if len(args) > 0 {
		ownerID = args[0]
	}

	updates, err := c.profileService.ListPending(ctx, ownerID)
	if err != nil {
		return err
	}

	if len(updates) == 0 {
		c.io.Println("No pending updates.")
		return nil
	}

	c.io.Printf("=== Pending Updates (%d) ===\n\n", len(updates))
	for _, update := range updates {
		payload, err := json.Marshal(update.Payload)
		if err != nil {
			payload = []byte("<unprintable>")
		}

		c.io.Printf("#%d  owner=%s  created=%s\n",
			update.ID, update.OwnerID, update.CreatedAt.Format(time.RFC3339))
		c.io.Printf("    payload: %s\n", payload)
		if update.Awaiting {
			c.io.Println("    waiting for manual conflict resolution, run 'storekeeper resume' to retry")
		}
		if update.RetryCount > 0 {
			c.io.Printf("    retries: %d\n", update.RetryCount)
		}
	}
	return nil
}
