package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/klog/v2"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
	"github.com/dtomasi/kclient/client/resplit"
)

// Event is one fully-decoded watch event. For ADDED, MODIFIED and DELETED
// the payload is in Object; for ERROR it is in Status.
type Event struct {
	// Type is the change type of the event.
	Type metav1.EventType
	// Object is the changed object, nil for ERROR events.
	Object metav1.Object
	// Status is the server error payload, set only for ERROR events.
	Status *metav1.Status
}

// ObjectFactory allocates a fresh destination object for one watch event.
type ObjectFactory func() metav1.Object

// Watcher is one live watch stream. Events are delivered in server-send
// order on an unbuffered channel, so the connection is read no faster than
// the consumer takes events.
type Watcher struct {
	events chan Event
	stop   chan struct{}
	cancel context.CancelFunc
	once   sync.Once

	mu  sync.Mutex
	err error
}

// ResultChan returns the event channel. It is closed when the stream ends
// for any reason; Err reports why.
func (w *Watcher) ResultChan() <-chan Event { return w.events }

// Stop abandons the stream and releases the underlying connection. It is
// safe to call more than once and safe to call concurrently with channel
// reads.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.stop)
		// Cancelling the request context unblocks a pending body read so
		// the receive goroutine can exit without the caller draining the
		// channel.
		w.cancel()
	})
}

// Err returns the terminal error of the stream, nil when the server closed
// it cleanly or the caller stopped it. It is meaningful only after the
// result channel has been closed.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Watcher) fail(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
}

// Watch opens a change stream for the single named resource. The Watch
// option is forced to true regardless of the caller-supplied value.
// newObject allocates the destination for each non-error event.
func (c *Client) Watch(ctx context.Context, gvr schema.GroupVersionResource, namespace, name string, opts ListOptions, newObject ObjectFactory) (*Watcher, error) {
	opts.Watch = true
	u, err := c.resourceURL(gvr, namespace, name, opts)
	if err != nil {
		return nil, err
	}
	return c.watch(ctx, http.MethodGet, u.String(), newObject)
}

// WatchList opens a change stream for a whole collection. The Watch option
// is forced to true regardless of the caller-supplied value.
func (c *Client) WatchList(ctx context.Context, gvr schema.GroupVersionResource, namespace string, opts ListOptions, newObject ObjectFactory) (*Watcher, error) {
	opts.Watch = true
	u, err := c.resourceURL(gvr, namespace, "", opts)
	if err != nil {
		return nil, err
	}
	return c.watch(ctx, http.MethodGet, u.String(), newObject)
}

// watch issues the long-lived request. A non-2xx initial response is
// classified exactly like a unary request failure: the whole body is
// buffered and decoded as Status, and no stream is returned.
func (c *Client) watch(ctx context.Context, method, url string, newObject ObjectFactory) (*Watcher, error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	klog.V(4).Infof("Watch request: %s %s", method, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}

	if !is2xx(resp.StatusCode) {
		defer cancel()
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return nil, c.statusError(resp.StatusCode, body)
	}

	w := &Watcher{
		events: make(chan Event),
		stop:   make(chan struct{}),
		cancel: cancel,
	}
	go w.receive(resp.Body, cancel, newObject)
	return w, nil
}

// receive pumps frames from the response body until the stream ends, the
// caller stops the watcher, or a frame fails to decode. The connection is
// released on every exit path.
func (w *Watcher) receive(body io.ReadCloser, cancel context.CancelFunc, newObject ObjectFactory) {
	defer close(w.events)
	defer cancel()
	defer body.Close()

	frames := resplit.NewReader(body, '\n')
	for {
		frame, err := frames.ReadFrame()
		if err != nil {
			switch {
			case err == io.EOF:
				// Server closed the stream cleanly.
			case isStopped(w.stop):
				// The caller abandoned the stream; the read error is a
				// consequence of tearing down the connection.
			case err == io.ErrUnexpectedEOF:
				w.fail(&DecodeError{Stage: StageWatchLine, Err: err})
			default:
				w.fail(err)
			}
			return
		}
		klog.V(5).Infof("Got line: %s", frame)

		event, err := decodeEvent(frame, newObject)
		if err != nil {
			w.fail(err)
			return
		}
		select {
		case w.events <- event:
		case <-w.stop:
			return
		}
	}
}

// decodeEvent decodes one frame: the envelope first, then the payload as
// either the watched type or a Status. Any failure terminates the stream.
func decodeEvent(frame []byte, newObject ObjectFactory) (Event, error) {
	var envelope metav1.WatchEvent
	if err := json.Unmarshal(frame, &envelope); err != nil {
		return Event{}, &DecodeError{Stage: StageWatchLine, Err: err}
	}

	event := Event{Type: envelope.Type}
	if envelope.Type == metav1.Error {
		var st metav1.Status
		if err := json.Unmarshal(envelope.Object, &st); err != nil {
			return Event{}, &DecodeError{Stage: StageWatchLine, Err: err}
		}
		event.Status = &st
		return event, nil
	}

	obj := newObject()
	if err := decodeInto(envelope.Object, obj, StageWatchLine); err != nil {
		return Event{}, err
	}
	event.Object = obj
	return event, nil
}

func isStopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}
