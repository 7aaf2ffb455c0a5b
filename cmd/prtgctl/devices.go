package main

import (
	"strconv"

	"github.com/spf13/cobra"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

func newDevicesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "devices",
		Short:         "List, create and clone devices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List devices, filtered by group or name substring",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, _ := cmd.Flags().GetInt("group")
			contains, _ := cmd.Flags().GetString("contains")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var devices []prtg.Entity
			switch {
			case groupID != 0:
				devices, err = client.GetDevicesByGroupID(cmd.Context(), groupID)
			case contains != "":
				devices, err = client.GetDevicesByNameContaining(cmd.Context(), contains)
			default:
				devices, err = client.GetAllDevices(cmd.Context())
			}
			if err != nil {
				return err
			}

			return a.printEntities(devices, deviceTable)
		},
	}
	list.Flags().Int("group", 0, "only devices under this group id")
	list.Flags().String("contains", "", "only devices whose name contains this substring")

	get := &cobra.Command{
		Use:           "get <id|name>",
		Short:         "Show one device by id or exact name",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var device prtg.Entity
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				device, err = client.GetDevice(cmd.Context(), id)
			} else {
				device, err = client.GetDeviceByName(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			return a.printEntity(device, deviceTable)
		},
	}

	add := &cobra.Command{
		Use:           "add <name>",
		Short:         "Create a device and wait until it is visible",
		Example: `  prtgctl devices add "edge-fw-01" --host 10.0.0.1 --parent 2001
  prtgctl devices add "edge-sw-01" --host 10.0.0.2 --parent 2001 --icon A_Switch_1.png`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			parentID, _ := cmd.Flags().GetInt("parent")
			icon, _ := cmd.Flags().GetString("icon")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			device, err := client.AddDevice(cmd.Context(), args[0], host, parentID, prtg.Icon(icon))
			if err != nil {
				return err
			}

			return a.printEntity(device, deviceTable)
		},
	}
	add.Flags().String("host", "", "hostname or IP address the device monitors (required)")
	add.Flags().Int("parent", 0, "id of the parent group (required)")
	add.Flags().String("icon", "", "device icon file name (default is the server icon)")
	_ = add.MarkFlagRequired("host")
	_ = add.MarkFlagRequired("parent")

	clone := &cobra.Command{
		Use:           "clone <name>",
		Short:         "Clone an existing device under a new parent",
		Example:       `  prtgctl devices clone "edge-fw-02" --host 10.0.0.3 --parent 2001 --from 4004`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			parentID, _ := cmd.Flags().GetInt("parent")
			cloneID, _ := cmd.Flags().GetInt("from")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			id, err := client.CloneDevice(cmd.Context(), args[0], host, parentID, cloneID)
			if err != nil {
				return err
			}

			return a.printValue("objid", strconv.Itoa(id))
		},
	}
	clone.Flags().String("host", "", "hostname or IP address for the clone (required)")
	clone.Flags().Int("parent", 0, "id of the parent group (required)")
	clone.Flags().Int("from", 0, "id of the device to clone (required)")
	_ = clone.MarkFlagRequired("host")
	_ = clone.MarkFlagRequired("parent")
	_ = clone.MarkFlagRequired("from")

	deviceURL := &cobra.Command{
		Use:           "url <id>",
		Short:         "Print the web interface URL of a device",
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

			return a.printValue("url", client.DeviceURL(id))
		},
	}

	cmd.AddCommand(list, get, add, clone, deviceURL)

	return cmd
}
