package main

import (
	"strconv"

	"github.com/spf13/cobra"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

func newProbesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "probes",
		Short:         "List and inspect probes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List all probes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			probes, err := client.GetAllProbes(cmd.Context())
			if err != nil {
				return err
			}

			return a.printEntities(probes, probeTable)
		},
	}

	get := &cobra.Command{
		Use:           "get <id|name>",
		Short:         "Show one probe by id or exact name",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var probe prtg.Entity
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				probe, err = client.GetProbe(cmd.Context(), id)
			} else {
				probe, err = client.GetProbeByName(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			return a.printEntity(probe, probeTable)
		},
	}

	cmd.AddCommand(list, get)

	return cmd
}
