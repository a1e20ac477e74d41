// Command explorer is the terminal UI of the File Explorer. It reaches the
// filesystem only through the command bridge of a running server, or through
// an in-process bridge with -transport=local.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FileExplorer/internal/bridge"
	"github.com/GriffinCanCode/FileExplorer/internal/domain/explorer"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/config"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/FileExplorer/internal/infrastructure/server"
	"github.com/GriffinCanCode/FileExplorer/internal/service"
	"github.com/GriffinCanCode/FileExplorer/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "explorer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.BridgeURL, "url", cfg.BridgeURL, "Bridge base URL")
	flag.StringVar(&cfg.Transport, "transport", cfg.Transport, "Bridge transport: http, ws or local")
	flag.StringVar(&cfg.Token, "token", cfg.Token, "Shared bridge token")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file (empty discards logs)")
	flag.Parse()
	if flag.NArg() > 0 {
		cfg.StartPath = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout belongs to the terminal UI
	logger, err := logging.New(logging.FileConfig(cfg.LogFile, cfg.LogLevel))
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	invoker, err := dial(ctx, cfg, logger.Logger)
	if err != nil {
		return err
	}
	client := bridge.NewClient(invoker)
	defer client.Close()

	logger.Info("Starting explorer",
		zap.String("transport", cfg.Transport),
		zap.String("url", cfg.BridgeURL),
	)

	observer, states := ui.StateFeed(64)
	engine := explorer.New(client,
		explorer.WithLogger(logger.Logger),
		explorer.WithObserver(observer),
	)
	return ui.Run(ui.NewModel(ctx, engine, states, cfg.StartPath))
}

// dial opens the configured transport
func dial(ctx context.Context, cfg *config.ClientConfig, logger *zap.Logger) (bridge.Invoker, error) {
	switch cfg.Transport {
	case config.TransportWS:
		return bridge.DialWS(ctx, cfg.BridgeURL, cfg.Token, logger)
	case config.TransportLocal:
		registry := service.NewRegistry()
		if err := server.RegisterProviders(registry, logger); err != nil {
			return nil, err
		}
		return bridge.NewLocalInvoker(bridge.NewDispatcher(registry, logger)), nil
	default:
		breaker := resilience.New("bridge", resilience.Settings{
			Cooldown:    5 * time.Second,
			ReadyToTrip: func(c resilience.Counts) bool { return c.ConsecutiveFailures >= 3 },
			OnStateChange: func(name string, from, to resilience.State) {
				logger.Warn("Bridge breaker state changed",
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
		return bridge.NewHTTPInvoker(cfg.BridgeURL, cfg.Token, bridge.WithBreaker(breaker)), nil
	}
}
