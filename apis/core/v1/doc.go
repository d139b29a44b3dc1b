// Package v1 contains the legacy-group ("core") resource types served under
// /api/v1: Namespace, Pod, ConfigMap and Service, together with their list
// types and the group/version/resource identities used to address them.
package v1
