// prtgctl is a command line interface for managing monitored objects on a
// PRTG instance. It wraps the go-prtg client library; the server address and
// credentials come from a config file, PRTG_* environment variables, or both.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

// app carries the state shared by every subcommand: the persistent flag
// values and, once a command has connected, the logger to sync on exit.
type app struct {
	cfgFile    string
	jsonOutput bool

	logger *zap.Logger
}

// connect loads the configuration, builds the logger and constructs a
// validated client. Called at the start of every RunE so that plain
// "prtgctl --help" never touches the network.
func (a *app) connect(cmd *cobra.Command) (*prtg.Client, error) {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	a.logger = logger

	return buildClient(cmd.Context(), cfg, logger)
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "prtgctl",
		Short: "Manage monitored objects on a PRTG instance",
		Long: `prtgctl lists, creates and mutates the probes, groups, devices and
sensors of a PRTG network monitoring instance.

Connection settings are read from $HOME/.prtgctl.yaml (override with
--config) and from PRTG_* environment variables: PRTG_BASE_URL plus either
PRTG_API_TOKEN, PRTG_USERNAME with PRTG_PASSHASH, or PRTG_USERNAME with
PRTG_PASSWORD.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.prtgctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output results as JSON")

	rootCmd.AddCommand(
		newStatusCommand(a),
		newConfigCommand(a),
		newTreeCommand(a),
		newProbesCommand(a),
		newGroupsCommand(a),
		newDevicesCommand(a),
		newSensorsCommand(a),
		newObjectCommand(a),
	)

	return rootCmd, a
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd, a := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)

	if a.logger != nil {
		_ = a.logger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
