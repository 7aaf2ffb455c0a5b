package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newConfigCommand prints the configuration a command would run with, after
// merging the config file and environment. Credential values never appear;
// both output modes go through redaction.
func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "config",
		Short:         "Show the resolved configuration with credentials redacted",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.cfgFile)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return printJSON(os.Stdout, cfg.redacted())
			}

			fmt.Print(cfg.String())
			return nil
		},
	}
}
