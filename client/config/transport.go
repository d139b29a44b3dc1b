package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"

	"k8s.io/klog/v2"
)

// HTTPClient builds an HTTP client carrying the context's TLS identity, CA
// trust and request credentials. The returned client is safe for concurrent
// use and is meant to be shared across every call made to the cluster.
func (cc *ContextConfig) HTTPClient() (*http.Client, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cc.Cluster.InsecureSkipTLSVerify, //nolint:gosec // honours an explicit kubeconfig setting
	}

	certPEM, err := cc.AuthInfo.ClientCertificateBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to read client certificate: %w", err)
	}
	keyPEM, err := cc.AuthInfo.ClientKeyBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to read client key: %w", err)
	}
	if certPEM != nil && keyPEM != nil {
		klog.V(2).Info("Setting user client cert")
		cert, err := tls.X509KeyPair(certPEM, keyPEM)
		if err != nil {
			return nil, fmt.Errorf("unable to load client key pair: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	caPEM, err := cc.Cluster.CertificateAuthorityBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to read certificate authority: %w", err)
	}
	if caPEM != nil {
		klog.V(2).Info("Setting cluster CA cert")
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in certificate authority data")
		}
		tlsConfig.RootCAs = pool
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConfig,
	}
	if cc.AuthInfo.Token != "" || cc.AuthInfo.Username != "" {
		rt = &authRoundTripper{base: rt, auth: cc.AuthInfo}
	}
	return &http.Client{Transport: rt}, nil
}

// authRoundTripper attaches the context's credentials to every request. The
// wrapped request is cloned first: a RoundTripper must not mutate its input,
// and the same client is shared across concurrent calls.
type authRoundTripper struct {
	base http.RoundTripper
	auth AuthInfo
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+t.auth.Token)
	} else if t.auth.Username != "" {
		req.SetBasicAuth(t.auth.Username, t.auth.Password)
	}
	return t.base.RoundTrip(req)
}
