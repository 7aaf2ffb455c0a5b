package main

import (
	"strconv"

	"github.com/spf13/cobra"

	prtg "github.com/CC-Digital-Innovation/go-prtg"
)

func newGroupsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "groups",
		Short:         "List, create and clone groups",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List groups, optionally filtered by name substring",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			contains, _ := cmd.Flags().GetString("contains")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var groups []prtg.Entity
			if contains != "" {
				groups, err = client.GetGroupsByNameContaining(cmd.Context(), contains)
			} else {
				groups, err = client.GetAllGroups(cmd.Context())
			}
			if err != nil {
				return err
			}

			return a.printEntities(groups, groupTable)
		},
	}
	list.Flags().String("contains", "", "only groups whose name contains this substring")

	get := &cobra.Command{
		Use:           "get <id|name>",
		Short:         "Show one group by id or exact name",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			var group prtg.Entity
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				group, err = client.GetGroup(cmd.Context(), id)
			} else {
				group, err = client.GetGroupByName(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			return a.printEntity(group, groupTable)
		},
	}

	add := &cobra.Command{
		Use:           "add <name>",
		Short:         "Create a group and wait until it is visible",
		Example:       `  prtgctl groups add "web tier" --parent 2001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, _ := cmd.Flags().GetInt("parent")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			group, err := client.AddGroup(cmd.Context(), args[0], parentID)
			if err != nil {
				return err
			}

			return a.printEntity(group, groupTable)
		},
	}
	add.Flags().Int("parent", 0, "id of the parent group (required)")
	_ = add.MarkFlagRequired("parent")

	clone := &cobra.Command{
		Use:           "clone <name>",
		Short:         "Clone an existing group under a new parent",
		Example:       `  prtgctl groups clone "web tier copy" --parent 2001 --from 3001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, _ := cmd.Flags().GetInt("parent")
			cloneID, _ := cmd.Flags().GetInt("from")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			id, err := client.CloneGroup(cmd.Context(), args[0], parentID, cloneID)
			if err != nil {
				return err
			}

			return a.printValue("objid", strconv.Itoa(id))
		},
	}
	clone.Flags().Int("parent", 0, "id of the parent group (required)")
	clone.Flags().Int("from", 0, "id of the group to clone (required)")
	_ = clone.MarkFlagRequired("parent")
	_ = clone.MarkFlagRequired("from")

	cmd.AddCommand(list, get, add, clone)

	return cmd
}
