package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "status":
		err = c.runStatus(ctx)
	case "set":
		err = c.runSet(ctx, args)
	case "cache":
		err = c.runCache(ctx, args)
	case "pending":
		err = c.runPending(ctx, args)
	case "sync":
		err = c.runSync(ctx)
	case "watch":
		err = c.runWatch(ctx)
	case "strategy":
		err = c.runStrategy(args)
	case "resume":
		err = c.runResume(ctx, args)
	case "purge":
		err = c.runPurge(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
