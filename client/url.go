package client

import (
	"net/url"
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// resourceURL builds the fully-qualified URL for one resource request.
//
// The legacy core group (empty group, version v1) is rooted at /api; every
// other group lives under /apis/{group}. The namespace segment appears only
// when a namespace is supplied, the trailing name segment only when a name
// is supplied.
//
// TODO: support servers rooted behind a path prefix; the builder currently
// replaces any path present on the base URL.
func (c *Client) resourceURL(gvr schema.GroupVersionResource, namespace, name string, opts interface{}) (*url.URL, error) {
	if c.base.Opaque != "" || c.base.Host == "" {
		return nil, ErrNoPathSupport
	}

	segments := make([]string, 0, 7)
	if gvr.Group == "" && gvr.Version == "v1" {
		segments = append(segments, "api")
	} else {
		segments = append(segments, "apis")
		if gvr.Group != "" {
			segments = append(segments, gvr.Group)
		}
	}
	segments = append(segments, gvr.Version)
	if namespace != "" {
		segments = append(segments, "namespaces", namespace)
	}
	segments = append(segments, gvr.Resource)
	if name != "" {
		segments = append(segments, name)
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	u := *c.base
	u.Path = "/" + strings.Join(segments, "/")
	u.RawPath = ""
	if joined := "/" + strings.Join(escaped, "/"); joined != u.Path {
		u.RawPath = joined
	}

	if opts != nil {
		q, err := encodeQuery(opts)
		if err != nil {
			return nil, err
		}
		u.RawQuery = q
	}
	return &u, nil
}
