package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/opportunity-calculator/internal/config"
	"github.com/iwvelando/opportunity-calculator/internal/logging"
	"github.com/iwvelando/opportunity-calculator/internal/server"
	"github.com/iwvelando/opportunity-calculator/pkg/constants"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override, e.g. :8080")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	envFile := flag.String("env-file", constants.DefaultEnvFile, "optional dotenv file with OPPCALC_* overrides")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load env file at %s\", \"error\": \"%v\"}\n", *envFile, err)
		os.Exit(1)
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The UI starts from the built-in defaults with OPPCALC_* overrides applied.
	defaults, err := config.LoadDefaults()
	if err != nil {
		logger.Fatal("failed to load calculator defaults",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defaultInput := defaults.Input()

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		logger.Fatal("failed to listen",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.Error(err),
		)
	}

	logger.Info("starting opportunity calculator server",
		zap.String("op", "main"),
		zap.String("version", version),
		zap.Int64("max_body_size", cfg.BodySizeBytes()),
		zap.Float64("requests_per_second", cfg.RateLimit.RequestsPerSecond),
	)

	opts := cfg.Options(version)
	opts.Defaults = &defaultInput
	handler := server.NewHandler(logger, opts)
	if err := server.Serve(ctx, logger, ln, handler); err != nil {
		logger.Fatal("server stopped with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
