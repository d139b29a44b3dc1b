// Package v1 contains the apps-group resource types served under
// /apis/apps/v1, currently Deployment and its list type.
package v1
