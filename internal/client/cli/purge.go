package cli

import (
	"context"
)

func (c *Cli) runPurge(ctx context.Context) error {
	removed, err := c.profileService.PurgeSynced(ctx)
	if err != nil {
		return err
	}
	if removed == 0 {
		c.io.Println("No leftover synced updates found.")
		return nil
	}
	c.io.Printf("Removed %d synced update(s).\n", removed)
	return nil
}
