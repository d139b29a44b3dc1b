package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/klog/v2"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// Get retrieves the named object and decodes the response into into.
func (c *Client) Get(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, opts GetOptions, into metav1.Object) error {
	u, err := c.resourceURL(gvr, namespace, name, opts)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodGet, u, nil, into)
}

// List retrieves one page of the collection and decodes it into into. Use a
// Pager to walk every page of a paginated collection.
func (c *Client) List(ctx context.Context, gvr schema.GroupVersionResource, namespace string, opts ListOptions, into metav1.List) error {
	u, err := c.resourceURL(gvr, namespace, "", opts)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodGet, u, nil, into)
}

// Create submits obj to the collection. The object's envelope constants are
// stamped before encoding; the server's view of the object is decoded back
// into obj. The namespace is taken from the object itself.
func (c *Client) Create(ctx context.Context, gvr schema.GroupVersionResource, obj metav1.Object, opts GetOptions) error {
	u, err := c.resourceURL(gvr, obj.GetObjectMeta().Namespace, "", opts)
	if err != nil {
		return err
	}
	body, err := encodeObject(obj)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, u, body, obj)
}

// Update replaces the named object with obj. The object must carry a name;
// the namespace is taken from the object itself. The server's view of the
// object is decoded back into obj.
func (c *Client) Update(ctx context.Context, gvr schema.GroupVersionResource, obj metav1.Object, opts GetOptions) error {
	meta := obj.GetObjectMeta()
	if meta.Name == "" {
		return &RequiredAttributeError{Attr: "name"}
	}
	u, err := c.resourceURL(gvr, meta.Namespace, meta.Name, opts)
	if err != nil {
		return err
	}
	body, err := encodeObject(obj)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, u, body, obj)
}

// Delete removes the named object and returns the Status the server
// responded with.
func (c *Client) Delete(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string) (*metav1.Status, error) {
	u, err := c.resourceURL(gvr, namespace, name, nil)
	if err != nil {
		return nil, err
	}
	var st metav1.Status
	if err := c.do(ctx, http.MethodDelete, u, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// do executes exactly one request and produces exactly one decoded result or
// one typed error. Transport failures are surfaced unchanged; there are no
// retries.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body []byte, into interface{}) error {
	resp, data, err := c.roundTrip(ctx, method, u, body)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return c.statusError(resp.StatusCode, data)
	}
	if into == nil {
		return nil
	}
	return decodeInto(data, into, StageResponseBody)
}

// roundTrip issues the request and buffers the whole response body.
func (c *Client) roundTrip(ctx context.Context, method string, u *url.URL, body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	klog.V(4).Infof("Request: %s %s", method, u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	klog.V(4).Infof("Response: %s %v", resp.Status, resp.Header)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read response body: %w", err)
	}
	return resp, data, nil
}

// statusError classifies a non-2xx response: a decodable Status body becomes
// a StatusError, anything else degrades to an HTTPStatusError carrying only
// the numeric status.
func (c *Client) statusError(statusCode int, body []byte) error {
	var st metav1.Status
	if err := json.Unmarshal(body, &st); err != nil {
		klog.V(4).Infof("Failed to parse error Status (%v), falling back to HTTP status", err)
		return &HTTPStatusError{StatusCode: statusCode}
	}
	if err := st.TypeMeta.Validate(metav1.StatusTypeMeta); err != nil {
		klog.V(4).Infof("Error body is not a Status (%v), falling back to HTTP status", err)
		return &HTTPStatusError{StatusCode: statusCode}
	}
	return &StatusError{Status: &st}
}

// decodeInto unmarshals data into into and, when the destination declares
// envelope constants, validates the decoded apiVersion/kind pair against
// them.
func decodeInto(data []byte, into interface{}, stage string) error {
	if err := json.Unmarshal(data, into); err != nil {
		return &DecodeError{Stage: stage, Err: err}
	}
	if typed, ok := into.(interface {
		GetTypeMeta() *metav1.TypeMeta
		ExpectedTypeMeta() metav1.TypeMeta
	}); ok {
		if err := typed.GetTypeMeta().Validate(typed.ExpectedTypeMeta()); err != nil {
			return err
		}
	}
	return nil
}

// encodeObject stamps the object's envelope constants and marshals it.
func encodeObject(obj metav1.Object) ([]byte, error) {
	*obj.GetTypeMeta() = obj.ExpectedTypeMeta()
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("unable to encode request body: %w", err)
	}
	return data, nil
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}
