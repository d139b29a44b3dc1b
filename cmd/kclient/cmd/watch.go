package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
	"github.com/dtomasi/kclient/client"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var (
		labelSelector   string
		resourceVersion string
	)

	cmd := &cobra.Command{
		Use:   "watch TYPE [NAME]",
		Short: "Watch resources for changes",
		Long: `Watch streams change notifications for a resource type, or for a
single named resource, until interrupted.`,
		Example: `  # Watch all pods in a namespace
  kclient watch pods -n prod

  # Watch a single deployment from a known version
  kclient watch deployment web --resource-version 12345`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := lookupResource(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := client.ListOptions{
				LabelSelector:   labelSelector,
				ResourceVersion: resourceVersion,
			}
			var w *client.Watcher
			if len(args) == 2 {
				w, err = c.Watch(ctx, rt.gvr, requestNamespace(rt), args[1], opts, rt.newObject)
			} else {
				w, err = c.WatchList(ctx, rt.gvr, requestNamespace(rt), opts, rt.newObject)
			}
			if err != nil {
				return err
			}
			defer w.Stop()

			for event := range w.ResultChan() {
				if event.Type == metav1.Error {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", event.Type, event.Status.Message)
					continue
				}
				meta := event.Object.GetObjectMeta()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s/%s\n", event.Type, rt.gvr.Resource, meta.Name)
			}
			if err := w.Err(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	addSelectorFlag(cmd.Flags(), &labelSelector)
	cmd.Flags().StringVar(&resourceVersion, "resource-version", "", "Resource version to start the watch from")

	return cmd
}
