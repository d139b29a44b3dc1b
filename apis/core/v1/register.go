package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// GroupName is the legacy core group, served under /api rather than /apis.
const GroupName = ""

// Version is the version of this API group.
const Version = "v1"

var (
	// NamespaceGVR is the GroupVersionResource for Namespace.
	NamespaceGVR = schema.GroupVersionResource{Group: GroupName, Version: Version, Resource: "namespaces"}
	// PodGVR is the GroupVersionResource for Pod.
	PodGVR = schema.GroupVersionResource{Group: GroupName, Version: Version, Resource: "pods"}
	// ConfigMapGVR is the GroupVersionResource for ConfigMap.
	ConfigMapGVR = schema.GroupVersionResource{Group: GroupName, Version: Version, Resource: "configmaps"}
	// ServiceGVR is the GroupVersionResource for Service.
	ServiceGVR = schema.GroupVersionResource{Group: GroupName, Version: Version, Resource: "services"}
)

// NewNamespace creates a Namespace with the given name and its envelope
// constants stamped.
func NewNamespace(name string) *Namespace {
	ns := &Namespace{Metadata: metav1.ObjectMeta{Name: name}}
	ns.TypeMeta = ns.ExpectedTypeMeta()
	return ns
}

// NewPod creates a Pod with the given namespace and name and its envelope
// constants stamped.
func NewPod(namespace, name string) *Pod {
	p := &Pod{Metadata: metav1.ObjectMeta{Namespace: namespace, Name: name}}
	p.TypeMeta = p.ExpectedTypeMeta()
	return p
}

// NewConfigMap creates a ConfigMap with the given namespace, name and data
// and its envelope constants stamped.
func NewConfigMap(namespace, name string, data map[string]string) *ConfigMap {
	cm := &ConfigMap{Metadata: metav1.ObjectMeta{Namespace: namespace, Name: name}, Data: data}
	cm.TypeMeta = cm.ExpectedTypeMeta()
	return cm
}
