package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// newObjectCommand groups the operations that apply to any object in the
// monitoring tree regardless of its type: probe, group, device or sensor.
func newObjectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "object",
		Short:         "Read and mutate any object by id",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	property := &cobra.Command{
		Use:           "property <id> <name>",
		Short:         "Read one settings property",
		Example:       `  prtgctl object property 4004 host`,
		Args:          cobra.ExactArgs(2),
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

			value, err := client.GetObjectProperty(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}

			return a.printValue(args[1], value)
		},
	}

	setProperty := &cobra.Command{
		Use:           "set-property <id> <name> <value>",
		Short:         "Write one settings property",
		Example:       `  prtgctl object set-property 4004 location "Rack 7"`,
		Args:          cobra.ExactArgs(3),
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

			if err := client.SetObjectProperty(cmd.Context(), id, args[1], args[2]); err != nil {
				return err
			}

			return a.printMessage("set %s on object %d", args[1], id)
		},
	}

	status := &cobra.Command{
		Use:           "status <id> <name>",
		Short:         "Read one live status field",
		Example:       `  prtgctl object status 4004 status`,
		Args:          cobra.ExactArgs(2),
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

			value, err := client.GetObjectStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}

			return a.printValue(args[1], value)
		},
	}

	move := &cobra.Command{
		Use:           "move <id> <group-id>",
		Short:         "Move an object under a new parent group",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			groupID, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			if err := client.MoveObject(cmd.Context(), id, groupID); err != nil {
				return err
			}

			return a.printMessage("moved object %d under group %d", id, groupID)
		},
	}

	pause := &cobra.Command{
		Use:   "pause <id>",
		Short: "Pause monitoring of an object",
		Example: `  prtgctl object pause 4004
  prtgctl object pause 4004 --minutes 60`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, _ := cmd.Flags().GetInt("minutes")

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			if minutes > 0 {
				err = client.PauseObjectFor(cmd.Context(), id, minutes)
			} else {
				err = client.PauseObject(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			if minutes > 0 {
				return a.printMessage("paused object %d for %d minutes", id, minutes)
			}
			return a.printMessage("paused object %d", id)
		},
	}
	pause.Flags().Int("minutes", 0, "resume automatically after this many minutes (0 = pause indefinitely)")

	resume := &cobra.Command{
		Use:           "resume <id>",
		Short:         "Resume monitoring of a paused object",
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

			if err := client.ResumeObject(cmd.Context(), id); err != nil {
				return err
			}

			return a.printMessage("resumed object %d", id)
		},
	}

	deleteCmd := &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete an object and everything beneath it",
		Example:       `  prtgctl object delete 4004 --yes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, _ := cmd.Flags().GetBool("yes")
			if !confirmed {
				return errors.New("deletion is permanent and removes all child objects; re-run with --yes to confirm")
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			if err := client.DeleteObject(cmd.Context(), id); err != nil {
				return err
			}

			return a.printMessage("deleted object %d", id)
		},
	}
	deleteCmd.Flags().Bool("yes", false, "confirm the deletion")

	priority := &cobra.Command{
		Use:           "priority <id> <1-5>",
		Short:         "Set the priority of an object",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			prio, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			if err := client.SetPriority(cmd.Context(), id, prio); err != nil {
				return err
			}

			return a.printMessage("set priority %d on object %d", prio, id)
		},
	}

	tags := &cobra.Command{
		Use:           "tags <id> [tag]...",
		Short:         "Replace the tags of an object",
		Example:       `  prtgctl object tags 4004 edge production "needs review"`,
		Args:          cobra.MinimumNArgs(1),
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

			if err := client.SetTags(cmd.Context(), id, args[1:]); err != nil {
				return err
			}

			return a.printMessage("replaced tags on object %d", id)
		},
	}

	cmd.AddCommand(property, setProperty, status, move, pause, resume, deleteCmd, priority, tags)

	return cmd
}
