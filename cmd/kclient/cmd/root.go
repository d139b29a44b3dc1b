package cmd

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/dtomasi/kclient/client"
	"github.com/dtomasi/kclient/client/config"
)

var (
	kubeconfigPath string
	contextName    string
	namespace      string
	outputFormat   string
)

// NewRootCommand creates the root kclient command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kclient",
		Short: "A typed client for Kubernetes-style APIs",
		Long: `kclient is a small kubectl-style front end for the typed client:
it gets, lists and watches grouped, versioned, namespaced resources.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (defaults to $KUBECONFIG, then ~/.kube/config)")
	flags.StringVar(&contextName, "context", "", "Kubeconfig context to use (defaults to the file's current context)")
	flags.StringVarP(&namespace, "namespace", "n", "", "Namespace scope for the request")
	flags.StringVarP(&outputFormat, "output", "o", "yaml", "Output format: yaml, json or name")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(NewGetCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewWatchCommand())

	return rootCmd
}

// newClient builds the client from the configured kubeconfig and context.
func newClient() (*client.Client, error) {
	path := kubeconfigPath
	if path == "" {
		var err error
		path, err = config.RecommendedPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	name := contextName
	if name == "" {
		name = cfg.CurrentContext
	}
	cc, err := cfg.Context(name)
	if err != nil {
		return nil, err
	}
	if namespace == "" {
		namespace = cc.Namespace
	}
	return client.NewFromContext(cc)
}
