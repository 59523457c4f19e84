package cli

import (
	"fmt"

	"github.com/iudanet/storekeeper/internal/models"
)

func (c *Cli) runStrategy(args []string) error {
	if len(args) == 0 {
		c.io.Printf("Current strategy: %s\n", c.resolver.Strategy())
		c.io.Println()
		c.io.Println("Available strategies:")
		c.io.Println("  timestamp    Newer version wins, server wins ties")
		c.io.Println("  server-wins  Server version always wins")
		c.io.Println("  client-wins  Local version always wins")
		c.io.Println("  manual       Ask on every conflict")
		return nil
	}

	strategy := models.Strategy(args[0])
	if err := c.resolver.SetStrategy(strategy); err != nil {
		return fmt.Errorf("unknown strategy %q", args[0])
	}
	c.io.Printf("Strategy set to %s\n", strategy)
	return nil
}
