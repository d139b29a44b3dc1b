// Package client implements a typed client for Kubernetes-style REST APIs:
// it shapes logical get/list/create/update/delete/watch operations on
// grouped, versioned, namespaced resources into HTTP requests, and decodes
// responses, structured error bodies, paginated lists and newline-delimited
// watch streams back into typed results or typed errors.
//
// The client performs no retries, no watch reconnection and no client-side
// timeout enforcement; every failure is returned to the caller, which owns
// those policies.
package client
