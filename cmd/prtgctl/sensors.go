package main

import (
	"strconv"

	"github.com/spf13/cobra"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

func newSensorsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sensors",
		Short:         "List and inspect sensors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	list := &cobra.Command{
		Use:   "list <name>",
		Short: "List sensors by name, narrowed by group or device",
		Example: `  prtgctl sensors list Ping
  prtgctl sensors list Ping --group "web tier" --device edge-fw-01
  prtgctl sensors list HTTP --substring`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			group, _ := cmd.Flags().GetString("group")
			device, _ := cmd.Flags().GetString("device")
			substring, _ := cmd.Flags().GetBool("substring")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var sensors []prtg.Entity
			if substring {
				sensors, err = client.GetSensorsByNameContaining(cmd.Context(), args[0], group, device)
			} else {
				sensors, err = client.GetSensorsByName(cmd.Context(), args[0], group, device)
			}
			if err != nil {
				return err
			}

			return a.printEntities(sensors, sensorTable)
		},
	}
	list.Flags().String("group", "", "only sensors under groups containing this name")
	list.Flags().String("device", "", "only sensors on the device with this exact name")
	list.Flags().Bool("substring", false, "match the name as a substring instead of exactly")

	get := &cobra.Command{
		Use:           "get <id>",
		Short:         "Show one sensor by id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			sensor, err := client.GetSensor(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.printEntity(sensor, sensorTable)
		},
	}

	cmd.AddCommand(list, get)

	return cmd
}
