package client

import (
	"fmt"
	"net/http"
	"net/url"

	"k8s.io/klog/v2"

	"github.com/dtomasi/kclient/client/config"
)

// Client issues typed requests against one API server. The embedded
// *http.Client is safe for concurrent use, so a single Client may be shared
// across goroutines; all per-call state is local to each call.
type Client struct {
	httpClient *http.Client
	base       *url.URL
}

// New builds a Client from the kubeconfig named by the KUBECONFIG
// environment variable, falling back to the default path, using the file's
// current context.
func New() (*Client, error) {
	path, err := config.RecommendedPath()
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("Reading config from %s", path)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	cc, err := cfg.Context(cfg.CurrentContext)
	if err != nil {
		return nil, err
	}
	return NewFromContext(cc)
}

// NewFromContext builds a Client from an already-resolved kubeconfig
// context: the TLS identity and CA material become the transport, the
// cluster server address becomes the base URL.
func NewFromContext(cc *config.ContextConfig) (*Client, error) {
	httpClient, err := cc.HTTPClient()
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(cc.Cluster.Server)
	if err != nil {
		return nil, fmt.Errorf("unable to parse server URL: %w", err)
	}
	return NewWithClient(httpClient, base), nil
}

// NewWithClient builds a Client from an already-authenticated HTTP client
// and a resolved server base URL.
func NewWithClient(httpClient *http.Client, base *url.URL) *Client {
	return &Client{httpClient: httpClient, base: base}
}
