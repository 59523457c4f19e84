package cli

import (
	"fmt"

	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/connectivity"
	"github.com/iudanet/storekeeper/internal/client/iocli"
	"github.com/iudanet/storekeeper/internal/client/profile"
	"github.com/iudanet/storekeeper/internal/client/sync"
)

type Cli struct {
	io             iocli.IO
	profileService profile.Service
	syncService    sync.Service
	resolver       *conflict.Resolver
	monitor        *connectivity.Monitor
}

func New(
	io iocli.IO,
	profileService profile.Service,
	syncService sync.Service,
	resolver *conflict.Resolver,
	monitor *connectivity.Monitor,
) *Cli {
	return &Cli{
		io:             io,
		profileService: profileService,
		syncService:    syncService,
		resolver:       resolver,
		monitor:        monitor,
	}
}

func PrintUsage() {
	fmt.Println("StoreKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  storekeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --config PATH        Path to config file")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: storekeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                    Show connectivity and queue status")
	fmt.Println("  set <owner> <k=v>...      Stage a profile field update")
	fmt.Println("  cache <owner>             Show cached and local profile view")
	fmt.Println("  pending [owner]           List updates waiting for sync")
	fmt.Println("  sync                      Run a synchronization pass now")
	fmt.Println("  watch                     Run periodic sync until interrupted")
	fmt.Println("  strategy [name]           Show or set conflict resolution strategy")
	fmt.Println("  resume <id>               Return an update held for manual resolution")
	fmt.Println("  purge                     Remove leftover synced updates")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  storekeeper set store_42 shop_name='Corner Shop' currency=EUR")
	fmt.Println("  storekeeper pending store_42")
	fmt.Println("  storekeeper sync")
	fmt.Println("  storekeeper strategy server-wins")
	fmt.Println("  storekeeper --server https://example.com watch")
}
