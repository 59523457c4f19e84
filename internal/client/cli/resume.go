package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runResume(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: resume <update-id>")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid update id %q", args[0])
	}

	if err := c.profileService.Resume(ctx, id); err != nil {
		return err
	}
	c.io.Printf("Update #%d will be retried on the next sync pass.\n", id)
	return nil
}
