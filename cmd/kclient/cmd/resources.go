package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/runtime/schema"

	appsv1 "github.com/dtomasi/kclient/apis/apps/v1"
	corev1 "github.com/dtomasi/kclient/apis/core/v1"
	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// resourceType binds a CLI resource name to its API coordinates and the
// factories that produce empty objects for decoding.
type resourceType struct {
	gvr        schema.GroupVersionResource
	namespaced bool
	newObject  func() metav1.Object
	newList    func() metav1.List
}

var resourceTypes = map[string]resourceType{
	"namespaces": {
		gvr:       corev1.NamespaceGVR,
		newObject: func() metav1.Object { return &corev1.Namespace{} },
		newList:   func() metav1.List { return &corev1.NamespaceList{} },
	},
	"pods": {
		gvr:        corev1.PodGVR,
		namespaced: true,
		newObject:  func() metav1.Object { return &corev1.Pod{} },
		newList:    func() metav1.List { return &corev1.PodList{} },
	},
	"configmaps": {
		gvr:        corev1.ConfigMapGVR,
		namespaced: true,
		newObject:  func() metav1.Object { return &corev1.ConfigMap{} },
		newList:    func() metav1.List { return &corev1.ConfigMapList{} },
	},
	"services": {
		gvr:        corev1.ServiceGVR,
		namespaced: true,
		newObject:  func() metav1.Object { return &corev1.Service{} },
		newList:    func() metav1.List { return &corev1.ServiceList{} },
	},
	"deployments": {
		gvr:        appsv1.DeploymentGVR,
		namespaced: true,
		newObject:  func() metav1.Object { return &appsv1.Deployment{} },
		newList:    func() metav1.List { return &appsv1.DeploymentList{} },
	},
}

var resourceAliases = map[string]string{
	"namespace":   "namespaces",
	"ns":          "namespaces",
	"pod":         "pods",
	"po":          "pods",
	"configmap":   "configmaps",
	"cm":          "configmaps",
	"service":     "services",
	"svc":         "services",
	"deployment": "deployments",
	"deploy":     "deployments",
}

func lookupResource(name string) (resourceType, error) {
	if canonical, ok := resourceAliases[name]; ok {
		name = canonical
	}
	rt, ok := resourceTypes[name]
	if !ok {
		return resourceType{}, fmt.Errorf("unknown resource type %q", name)
	}
	return rt, nil
}

// requestNamespace returns the namespace to scope a request to, honoring
// cluster-scoped resource types.
func requestNamespace(rt resourceType) string {
	if !rt.namespaced {
		return ""
	}
	return namespace
}

// addSelectorFlag registers the shared label selector flag.
func addSelectorFlag(flags *pflag.FlagSet, selector *string) {
	flags.StringVarP(selector, "selector", "l", "", "Label selector to filter on")
}
