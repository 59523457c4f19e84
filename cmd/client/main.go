package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/storekeeper/internal/client/api"
	"github.com/iudanet/storekeeper/internal/client/cli"
	"github.com/iudanet/storekeeper/internal/client/conflict"
	"github.com/iudanet/storekeeper/internal/client/connectivity"
	"github.com/iudanet/storekeeper/internal/client/iocli"
	"github.com/iudanet/storekeeper/internal/client/profile"
	"github.com/iudanet/storekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/storekeeper/internal/client/sync"
	"github.com/iudanet/storekeeper/internal/config"
	"github.com/iudanet/storekeeper/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.Client.DBPath = *dbPath
	}

	logger := cfg.Logging.NewLogger()

	// Контекст завершается по Ctrl+C, это останавливает watch и пробы связи
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.Client.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.Client.ServerURL)

	// Стартовое состояние монитора определяется первичной проверкой
	initiallyOnline := apiClient.Health(ctx) == nil
	monitor := connectivity.NewMonitor(initiallyOnline, logger)

	stdio := iocli.NewStdio()

	// Резолвер конфликтов со стратегией из конфига
	resolver := conflict.NewResolver(cli.NewPresenter(stdio), logger)
	if cfg.Sync.Strategy != "" {
		if err := resolver.SetStrategy(models.Strategy(cfg.Sync.Strategy)); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid sync strategy %q in config\n", cfg.Sync.Strategy)
			os.Exit(1)
		}
	}

	syncService := sync.NewService(
		apiClient,
		boltStorage,
		boltStorage,
		resolver,
		monitor,
		logger,
		sync.Options{
			Interval:   cfg.Sync.GetInterval(),
			RetryDelay: cfg.Sync.GetRetryDelay(),
			GraceDelay: cfg.Sync.GetGraceDelay(),
			MaxRetries: cfg.Sync.MaxRetries,
		},
	)

	// Восстановление связи сразу запускает проход синхронизации
	monitor.SetSyncTrigger(func() {
		if _, err := syncService.Sync(context.Background()); err != nil {
			logger.Debug("Reconnect sync skipped", "error", err)
		}
	})
	monitor.StartProbing(ctx, apiClient, cfg.Sync.GetProbeInterval())

	profileService := profile.NewService(boltStorage, boltStorage)

	c := cli.New(stdio, profileService, syncService, resolver, monitor)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("StoreKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
