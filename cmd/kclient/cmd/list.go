package cmd

import (
	"github.com/spf13/cobra"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
	"github.com/dtomasi/kclient/client"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var (
		labelSelector string
		fieldSelector string
		limit         uint32
	)

	cmd := &cobra.Command{
		Use:   "list TYPE",
		Short: "List resources of a type",
		Long: `List fetches every resource of the given type, following
continuation cursors until the collection is exhausted.`,
		Example: `  # List all pods in the current namespace
  kclient list pods

  # List deployments matching a label, two per page
  kclient list deployments -l team=infra --limit 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			opts := client.ListOptions{
				LabelSelector: labelSelector,
				FieldSelector: fieldSelector,
				Limit:         limit,
			}
			pager := c.NewPager(rt.gvr, requestNamespace(rt), opts, rt.newList)
			return pager.EachItem(cmd.Context(), func(obj metav1.Object) error {
				return printObject(cmd.OutOrStdout(), obj)
			})
		},
	}

	addSelectorFlag(cmd.Flags(), &labelSelector)
	cmd.Flags().StringVar(&fieldSelector, "field-selector", "", "Field selector to filter on")
	cmd.Flags().Uint32Var(&limit, "limit", 0, "Maximum number of items per page (0 lets the server decide)")

	return cmd
}
