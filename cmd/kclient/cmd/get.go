package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dtomasi/kclient/client"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TYPE NAME",
		Short: "Get a single resource",
		Long:  `Get fetches one resource by type and name and prints it.`,
		Example: `  # Get a namespace
  kclient get namespace default

  # Get a pod as JSON
  kclient get pod web-0 -n prod -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			obj := rt.newObject()
			if err := c.Get(cmd.Context(), rt.gvr, requestNamespace(rt), args[1], client.GetOptions{}, obj); err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), obj)
		},
	}
}
