package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/iocli"
	"github.com/iudanet/storekeeper/internal/models"
)

// Presenter показывает конфликт в терминале и спрашивает пользователя,
// какую версию оставить
type Presenter struct {
	io iocli.IO
}

func NewPresenter(io iocli.IO) *Presenter {
	return &Presenter{io: io}
}

var _ conflict.Presenter = (*Presenter)(nil)

func (p *Presenter) Present(ctx context.Context, c *models.Conflict) (*models.Resolution, error) {
	p.io.Println()
	p.io.Printf("=== Conflict for %s (update #%d) ===\n", c.OwnerID, c.UpdateID)
	p.io.Println()
	p.io.Printf("Local version  (%s):\n", c.LocalTimestamp.Format(time.RFC3339))
	p.printData(c.LocalData)
	p.io.Printf("Server version (%s):\n", c.ServerTimestamp.Format(time.RFC3339))
	p.printData(c.ServerData)

	for {
		answer, err := p.io.ReadInput("Keep which version? [l]ocal / [s]erver / [c]ancel: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read answer: %w", err)
		}

		switch answer {
		case "l", "local":
			return &models.Resolution{
				Action: models.ActionUseLocal,
				Data:   c.LocalData,
				Reason: "manual: user kept the local version",
			}, nil
		case "s", "server":
			return &models.Resolution{
				Action: models.ActionUseServer,
				Data:   c.ServerData,
				Reason: "manual: user kept the server version",
			}, nil
		case "c", "cancel", "":
			return nil, conflict.ErrResolutionCancelled
		default:
			p.io.Printf("Unknown answer %q\n", answer)
		}
	}
}

func (p *Presenter) printData(data map[string]any) {
	formatted, err := json.MarshalIndent(data, "  ", "  ")
	if err != nil {
		p.io.Println("  <unprintable>")
		return
	}
	p.io.Printf("  %s\n\n", formatted)
}
