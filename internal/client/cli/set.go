package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <owner> <field=value>...")
	}
	ownerID := args[0]

	fields := make(map[string]any, len(args)-1)
	for _, arg := range args[1:] {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid argument %q, expected field=value", arg)
		}
		fields[name] = parseValue(raw)
	}

	id, err := c.profileService.SetFields(ctx, ownerID, fields)
	if err != nil {
		return err
	}

	c.io.Printf("Queued update #%d (%d field(s))\n", id, len(fields))
	if !c.monitor.Online() {
		c.io.Println("Server is unreachable, the update will be synchronized later.")
	}
	return nil
}

// parseValue приводит значение к числу или булеву типу, где это возможно
func parseValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
