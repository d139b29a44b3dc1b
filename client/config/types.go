package config

import (
	"fmt"
	"os"
)

// Config is the on-disk kubeconfig document: named clusters, users and
// contexts, and the name of the context currently in use.
type Config struct {
	// CurrentContext names the context to use by default.
	CurrentContext string `json:"current-context,omitempty"`
	// Clusters are the named server definitions.
	Clusters []NamedCluster `json:"clusters,omitempty"`
	// AuthInfos are the named user credential definitions.
	AuthInfos []NamedAuthInfo `json:"users,omitempty"`
	// Contexts pair a cluster with a user and an optional namespace.
	Contexts []NamedContext `json:"contexts,omitempty"`
}

// NamedCluster is a cluster definition with its name.
type NamedCluster struct {
	Name    string  `json:"name"`
	Cluster Cluster `json:"cluster"`
}

// NamedAuthInfo is a user definition with its name.
type NamedAuthInfo struct {
	Name     string   `json:"name"`
	AuthInfo AuthInfo `json:"user"`
}

// NamedContext is a context definition with its name.
type NamedContext struct {
	Name    string  `json:"name"`
	Context Context `json:"context"`
}

// Cluster describes how to reach and trust one API server.
type Cluster struct {
	// Server is the base URL of the API server.
	Server string `json:"server"`
	// InsecureSkipTLSVerify disables server certificate verification.
	InsecureSkipTLSVerify bool `json:"insecure-skip-tls-verify,omitempty"`
	// CertificateAuthority is a path to a PEM CA bundle.
	CertificateAuthority string `json:"certificate-authority,omitempty"`
	// CertificateAuthorityData is an inline PEM CA bundle; it takes
	// precedence over CertificateAuthority.
	CertificateAuthorityData []byte `json:"certificate-authority-data,omitempty"`
}

// AuthInfo describes one user's credentials.
type AuthInfo struct {
	// ClientCertificate is a path to a PEM client certificate.
	ClientCertificate string `json:"client-certificate,omitempty"`
	// ClientCertificateData is an inline PEM client certificate; it takes
	// precedence over ClientCertificate.
	ClientCertificateData []byte `json:"client-certificate-data,omitempty"`
	// ClientKey is a path to a PEM client key.
	ClientKey string `json:"client-key,omitempty"`
	// ClientKeyData is an inline PEM client key; it takes precedence over
	// ClientKey.
	ClientKeyData []byte `json:"client-key-data,omitempty"`
	// Token is a bearer token sent with every request.
	Token string `json:"token,omitempty"`
	// Username and Password configure HTTP basic auth.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Context pairs a cluster with a user.
type Context struct {
	// Cluster names the cluster definition to use.
	Cluster string `json:"cluster"`
	// AuthInfo names the user definition to use.
	AuthInfo string `json:"user"`
	// Namespace is the default namespace for this context.
	Namespace string `json:"namespace,omitempty"`
}

// ContextConfig is one resolved context: the referenced cluster and user
// plus the context's default namespace.
type ContextConfig struct {
	Cluster   Cluster
	AuthInfo  AuthInfo
	Namespace string
}

// Context resolves the named context against the cluster and user lists.
func (c *Config) Context(name string) (*ContextConfig, error) {
	var ctx *Context
	for i := range c.Contexts {
		if c.Contexts[i].Name == name {
			ctx = &c.Contexts[i].Context
			break
		}
	}
	if ctx == nil {
		return nil, fmt.Errorf("unknown context %q", name)
	}

	cc := &ContextConfig{Namespace: ctx.Namespace}
	found := false
	for i := range c.Clusters {
		if c.Clusters[i].Name == ctx.Cluster {
			cc.Cluster = c.Clusters[i].Cluster
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("context %q references unknown cluster %q", name, ctx.Cluster)
	}

	if ctx.AuthInfo != "" {
		found = false
		for i := range c.AuthInfos {
			if c.AuthInfos[i].Name == ctx.AuthInfo {
				cc.AuthInfo = c.AuthInfos[i].AuthInfo
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("context %q references unknown user %q", name, ctx.AuthInfo)
		}
	}
	return cc, nil
}

// CertificateAuthorityBytes returns the CA bundle, preferring inline data
// over a file reference. It returns nil when neither is configured.
func (c *Cluster) CertificateAuthorityBytes() ([]byte, error) {
	if len(c.CertificateAuthorityData) > 0 {
		return c.CertificateAuthorityData, nil
	}
	if c.CertificateAuthority != "" {
		return os.ReadFile(c.CertificateAuthority)
	}
	return nil, nil
}

// ClientCertificateBytes returns the client certificate, preferring inline
// data over a file reference. It returns nil when neither is configured.
func (a *AuthInfo) ClientCertificateBytes() ([]byte, error) {
	if len(a.ClientCertificateData) > 0 {
		return a.ClientCertificateData, nil
	}
	if a.ClientCertificate != "" {
		return os.ReadFile(a.ClientCertificate)
	}
	return nil, nil
}

// ClientKeyBytes returns the client key, preferring inline data over a file
// reference. It returns nil when neither is configured.
func (a *AuthInfo) ClientKeyBytes() ([]byte, error) {
	if len(a.ClientKeyData) > 0 {
		return a.ClientKeyData, nil
	}
	if a.ClientKey != "" {
		return os.ReadFile(a.ClientKey)
	}
	return nil, nil
}
