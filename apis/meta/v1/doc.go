// Package v1 contains the meta types shared by every API group: the
// apiVersion/kind envelope and its validation rules, object and list
// metadata, the structured Status payload returned by the server on
// failure, and the watch event envelope.
package v1
