package config_test

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/dtomasi/kclient/client/config"
)

const kubeconfigYAML = `current-context: dev
clusters:
- name: dev-cluster
  cluster:
    server: https://192.168.42.147:8443
    insecure-skip-tls-verify: true
- name: prod-cluster
  cluster:
    server: https://prod.example.com
contexts:
- name: dev
  context:
    cluster: dev-cluster
    user: dev-user
    namespace: sandbox
- name: broken
  context:
    cluster: missing-cluster
    user: dev-user
users:
- name: dev-user
  user:
    token: sekret
`

func writeConfig(dir, content string) string {
	path := filepath.Join(dir, "config")
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should parse clusters, users and contexts", func() {
		cfg, err := config.Load(writeConfig(dir, kubeconfigYAML))
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.CurrentContext).To(Equal("dev"))
		Expect(cfg.Clusters).To(HaveLen(2))
		Expect(cfg.Clusters[0].Cluster.Server).To(Equal("https://192.168.42.147:8443"))
		Expect(cfg.AuthInfos[0].AuthInfo.Token).To(Equal("sekret"))
	})

	It("should fail on an unreadable file", func() {
		_, err := config.Load(filepath.Join(dir, "does-not-exist"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on malformed YAML", func() {
		_, err := config.Load(writeConfig(dir, "clusters: [not: {valid"))
		Expect(err).To(HaveOccurred())
	})

	It("should decode inline base64 certificate data", func() {
		pem := []byte("-----BEGIN CERTIFICATE-----\nZm9v\n-----END CERTIFICATE-----\n")
		content := fmt.Sprintf(`clusters:
- name: c
  cluster:
    server: https://example.com
    certificate-authority-data: %s
`, base64.StdEncoding.EncodeToString(pem))

		cfg, err := config.Load(writeConfig(dir, content))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Clusters[0].Cluster.CertificateAuthorityData).To(Equal(pem))
	})
})

var _ = Describe("Context resolution", func() {
	var cfg *config.Config

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		var err error
		cfg, err = config.Load(writeConfig(dir, kubeconfigYAML))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should resolve the referenced cluster, user and namespace", func() {
		cc, err := cfg.Context("dev")
		Expect(err).NotTo(HaveOccurred())
		Expect(cc.Cluster.Server).To(Equal("https://192.168.42.147:8443"))
		Expect(cc.Cluster.InsecureSkipTLSVerify).To(BeTrue())
		Expect(cc.AuthInfo.Token).To(Equal("sekret"))
		Expect(cc.Namespace).To(Equal("sandbox"))
	})

	It("should fail on an unknown context name", func() {
		_, err := cfg.Context("nope")
		Expect(err).To(MatchError(ContainSubstring(`unknown context "nope"`)))
	})

	It("should fail when the context references an unknown cluster", func() {
		_, err := cfg.Context("broken")
		Expect(err).To(MatchError(ContainSubstring(`unknown cluster "missing-cluster"`)))
	})
})

var _ = Describe("RecommendedPath", func() {
	It("should prefer the KUBECONFIG environment variable", func() {
		GinkgoT().Setenv(config.ConfigEnv, "/tmp/custom-config")
		path, err := config.RecommendedPath()
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/tmp/custom-config"))
	})

	It("should fall back to ~/.kube/config", func() {
		GinkgoT().Setenv(config.ConfigEnv, "")
		home, err := os.UserHomeDir()
		Expect(err).NotTo(HaveOccurred())

		path, err := config.RecommendedPath()
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(home, ".kube", "config")))
	})
})

var _ = Describe("HTTPClient", func() {
	It("should attach a bearer token to every request", func() {
		server := ghttp.NewServer()
		defer server.Close()
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyRequest("GET", "/healthz"),
			ghttp.VerifyHeaderKV("Authorization", "Bearer sekret"),
			ghttp.RespondWith(http.StatusOK, "ok"),
		))

		cc := &config.ContextConfig{
			Cluster:  config.Cluster{Server: server.URL()},
			AuthInfo: config.AuthInfo{Token: "sekret"},
		}
		httpClient, err := cc.HTTPClient()
		Expect(err).NotTo(HaveOccurred())

		resp, err := httpClient.Get(server.URL() + "/healthz")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should attach basic auth when no token is set", func() {
		server := ghttp.NewServer()
		defer server.Close()
		server.AppendHandlers(ghttp.CombineHandlers(
			ghttp.VerifyBasicAuth("admin", "hunter2"),
			ghttp.RespondWith(http.StatusOK, "ok"),
		))

		cc := &config.ContextConfig{
			Cluster:  config.Cluster{Server: server.URL()},
			AuthInfo: config.AuthInfo{Username: "admin", Password: "hunter2"},
		}
		httpClient, err := cc.HTTPClient()
		Expect(err).NotTo(HaveOccurred())

		resp, err := httpClient.Get(server.URL() + "/")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should reject certificate-authority data with no certificates", func() {
		cc := &config.ContextConfig{
			Cluster: config.Cluster{
				Server:                   "https://example.com",
				CertificateAuthorityData: []byte("not a pem"),
			},
		}
		_, err := cc.HTTPClient()
		Expect(err).To(MatchError(ContainSubstring("no certificates found")))
	})

	It("should reject a mismatched client key pair", func() {
		cc := &config.ContextConfig{
			AuthInfo: config.AuthInfo{
				ClientCertificateData: []byte("bogus"),
				ClientKeyData:         []byte("bogus"),
			},
		}
		_, err := cc.HTTPClient()
		Expect(err).To(MatchError(ContainSubstring("unable to load client key pair")))
	})
})
