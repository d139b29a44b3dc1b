package client

import (
	"context"

	"k8s.io/apimachinery/pkg/runtime/schema"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// ListFactory allocates a fresh destination list for one page fetch.
type ListFactory func() metav1.List

// Pager flattens every page of a paginated list into one ordered item
// sequence. It carries the current options across pages, updating the
// continuation cursor after each fetch, and never requests a page before
// the previous page's items have all been consumed.
type Pager struct {
	client    *Client
	gvr       schema.GroupVersionResource
	namespace string
	opts      ListOptions
	newList   ListFactory
}

// NewPager builds a Pager over the given collection. newList allocates the
// destination for each page.
func (c *Client) NewPager(gvr schema.GroupVersionResource, namespace string, opts ListOptions, newList ListFactory) *Pager {
	return &Pager{
		client:    c,
		gvr:       gvr,
		namespace: namespace,
		opts:      opts,
		newList:   newList,
	}
}

// EachItem invokes fn for every item of every page, in server order, fetching
// the next page only after the current page is exhausted. The sequence ends
// when a page arrives with no continuation cursor; a fetch failure or an fn
// error terminates it immediately with that error. The Pager itself is not
// mutated, so it may be reused.
func (p *Pager) EachItem(ctx context.Context, fn func(metav1.Object) error) error {
	opts := p.opts
	for {
		list := p.newList()
		if err := p.client.List(ctx, p.gvr, p.namespace, opts, list); err != nil {
			return err
		}
		for _, item := range list.ListItems() {
			if err := fn(item); err != nil {
				return err
			}
		}

		cont := list.GetListMeta().Continue
		if cont == "" {
			return nil
		}
		opts.Continue = cont
	}
}
