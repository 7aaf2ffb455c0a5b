package main

import (
	"github.com/spf13/cobra"
)

// newStatusCommand checks that the configured instance is reachable and the
// credentials work. The client constructor performs the health probe, so
// connecting is the whole job.
func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Check connectivity and credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.connect(cmd); err != nil {
				return err
			}
			return a.printMessage("connected")
		},
	}
}
