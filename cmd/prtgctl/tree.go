package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTreeCommand exports the monitoring tree as raw XML. Always printed
// verbatim; --json has nothing to add to an XML document.
func newTreeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tree",
		Short:         "Export the monitoring tree as XML",
		Example:       `  prtgctl tree --group 2004 > subtree.xml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, _ := cmd.Flags().GetInt("group")

			client, err := a.connect(cmd)
			if err != nil {
				return err
			}

			tree, err := client.GetSensorTree(cmd.Context(), groupID)
			if err != nil {
				return err
			}

			fmt.Print(tree)
			return nil
		},
	}
	cmd.Flags().Int("group", 0, "root the export at this group (0 = whole instance)")

	return cmd
}
