package client

import (
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

func newTestClient(base string) *Client {
	u, err := url.Parse(base)
	Expect(err).NotTo(HaveOccurred())
	return NewWithClient(&http.Client{}, u)
}

var _ = Describe("resourceURL", func() {
	var c *Client

	BeforeEach(func() {
		c = newTestClient("https://192.168.42.147:8443")
	})

	It("should root the legacy core group at /api", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v1", Resource: "pods"},
			"myns", "myname", GetOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.String()).To(Equal("https://192.168.42.147:8443/api/v1/namespaces/myns/pods/myname"))
	})

	It("should root named groups at /apis", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "rbac.authorization.k8s.io", Version: "v1beta1", Resource: "clusterroles"},
			"", "myrole", GetOptions{Pretty: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.String()).To(Equal("https://192.168.42.147:8443/apis/rbac.authorization.k8s.io/v1beta1/clusterroles/myrole?pretty=true"))
	})

	It("should root a groupless non-v1 version at /apis", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v2", Resource: "widgets"},
			"", "", GetOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Path).To(Equal("/apis/v2/widgets"))
	})

	It("should include the namespace segment only when a namespace is supplied", func() {
		withNS, err := c.resourceURL(
			schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"},
			"prod", "", ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(withNS.Path).To(Equal("/apis/apps/v1/namespaces/prod/deployments"))

		withoutNS, err := c.resourceURL(
			schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"},
			"", "", ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(withoutNS.Path).To(Equal("/apis/apps/v1/deployments"))
	})

	It("should attach non-default list options as query parameters", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v1", Resource: "namespaces"},
			"", "", ListOptions{ResourceVersion: "abcdef", Limit: 27})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Path).To(Equal("/api/v1/namespaces"))

		q, err := url.ParseQuery(u.RawQuery)
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(HaveLen(2))
		Expect(q["resourceVersion"]).To(Equal([]string{"abcdef"}))
		Expect(q["limit"]).To(Equal([]string{"27"}))
	})

	It("should produce no query string for fully-default options", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v1", Resource: "pods"},
			"", "", ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.RawQuery).To(BeEmpty())
	})

	It("should fail fast on an opaque base URL", func() {
		opaque := newTestClient("mailto:someone@example.com")
		_, err := opaque.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v1", Resource: "pods"},
			"", "", GetOptions{})
		Expect(err).To(MatchError(ErrNoPathSupport))
	})

	It("should escape path segments", func() {
		u, err := c.resourceURL(
			schema.GroupVersionResource{Group: "", Version: "v1", Resource: "pods"},
			"", "name with space", GetOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(u.String()).To(ContainSubstring("name%20with%20space"))
	})
})

var _ = Describe("encodeQuery", func() {
	It("should encode nothing for default options", func() {
		q, err := encodeQuery(ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(BeEmpty())

		q, err = encodeQuery(GetOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(q).To(BeEmpty())
	})

	It("should encode each non-default field exactly once under its wire name", func() {
		q, err := encodeQuery(ListOptions{
			ResourceVersion:      "rv",
			TimeoutSeconds:       30,
			Watch:                true,
			Pretty:               true,
			FieldSelector:        "metadata.name=x",
			LabelSelector:        "app=web",
			IncludeUninitialized: true,
			Limit:                5,
			Continue:             "tok",
		})
		Expect(err).NotTo(HaveOccurred())

		values, err := url.ParseQuery(q)
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(HaveLen(9))
		for _, key := range []string{
			"resourceVersion", "timeoutSeconds", "watch", "pretty",
			"fieldSelector", "labelSelector", "includeUninitialized", "limit", "continue",
		} {
			Expect(values[key]).To(HaveLen(1), "expected exactly one %q parameter", key)
		}
		Expect(values.Get("continue")).To(Equal("tok"))
		Expect(values.Get("watch")).To(Equal("true"))
	})
})
