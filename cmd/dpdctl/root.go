package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/config"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/invoker"
	"github.com/99minutos/dpd-compiler/pkg/logger"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// logLevel overrides LOG_LEVEL when set.
	logLevel string
	// pretty switches to console log output.
	pretty bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dpdctl",
		Short: "Compile and submit DPD shipment, label and tracking requests",
		Long: `dpdctl validates caller input and builds DPD package-service documents.

It can run as an HTTP service (serve), compile documents offline for
inspection (compile), check the environment configuration (config check)
or create API operator accounts (operator add).

Examples:
  dpdctl compile shipment -f shipment.json
  dpdctl compile label -f label.json --submit
  dpdctl config check
  dpdctl operator add --username ops --role admin
  dpdctl serve`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error (default from LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-friendly console logs")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(operatorCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and initialises the logger. Logs go to stderr
// so command output on stdout stays machine-readable.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log := logger.Init(logger.Options{Level: level, Pretty: pretty, Output: os.Stderr})
	return cfg, log, nil
}

// newInvoker returns the gateway invoker behind a circuit breaker.
func newInvoker(cfg *config.Config, log zerolog.Logger) *invoker.BreakerInvoker {
	httpInvoker := invoker.NewHTTPInvoker(cfg.Gateway.URL, cfg.Gateway.Timeout, logger.Component("invoker"))
	return invoker.NewBreakerInvoker(httpInvoker, invoker.DefaultBreakerConfig("dpd-gateway"), log)
}

func newRequestContext(cfg *config.Config) (*service.RequestContext, error) {
	return service.NewRequestContext(cfg.Settings())
}
