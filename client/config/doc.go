// Package config loads kubeconfig-style configuration files and turns a
// named context into the material the client needs: a resolved server
// address and an HTTP client carrying the context's TLS identity, CA trust
// and request credentials.
package config
