package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"

	corev1 "github.com/dtomasi/kclient/apis/core/v1"
	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// GroupName is the name of this API group.
const GroupName = "apps"

// Version is the version of this API group.
const Version = "v1"

// DeploymentGVR is the GroupVersionResource for Deployment.
var DeploymentGVR = schema.GroupVersionResource{Group: GroupName, Version: Version, Resource: "deployments"}

// Deployment manages a replicated set of pods described by a template.
type Deployment struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec            DeploymentSpec    `json:"spec,omitempty"`
	Status          DeploymentStatus  `json:"status,omitempty"`
}

// DeploymentSpec describes the desired deployment state.
type DeploymentSpec struct {
	// Replicas is the desired pod count; nil means the server default of 1.
	Replicas *int32 `json:"replicas,omitempty"`
	// Selector matches the pods owned by this deployment.
	Selector *LabelSelector `json:"selector,omitempty"`
	// Template is the pod template the deployment stamps out.
	Template PodTemplateSpec `json:"template,omitempty"`
}

// LabelSelector selects objects by exact label values.
type LabelSelector struct {
	// MatchLabels requires each listed label to match exactly.
	MatchLabels map[string]string `json:"matchLabels,omitempty"`
}

// PodTemplateSpec is the metadata and spec stamped onto created pods.
type PodTemplateSpec struct {
	Metadata metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec     corev1.PodSpec    `json:"spec,omitempty"`
}

// DeploymentStatus reports the observed deployment state.
type DeploymentStatus struct {
	// Replicas is the number of non-terminated pods.
	Replicas int32 `json:"replicas,omitempty"`
	// ReadyReplicas is the number of pods passing readiness.
	ReadyReplicas int32 `json:"readyReplicas,omitempty"`
	// AvailableReplicas is the number of pods available to serve.
	AvailableReplicas int32 `json:"availableReplicas,omitempty"`
}

// DeploymentList is a list of Deployment objects.
type DeploymentList struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Deployment    `json:"items"`
}

// GetTypeMeta returns the serialized envelope of the object.
func (in *Deployment) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for Deployment.
func (in *Deployment) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: GroupName + "/" + Version, Kind: "Deployment"}
}

// GetObjectMeta returns the object metadata.
func (in *Deployment) GetObjectMeta() *metav1.ObjectMeta { return &in.Metadata }

// GetTypeMeta returns the serialized envelope of the list.
func (in *DeploymentList) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for DeploymentList.
func (in *DeploymentList) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: GroupName + "/" + Version, Kind: "DeploymentList"}
}

// GetListMeta returns the list metadata.
func (in *DeploymentList) GetListMeta() *metav1.ListMeta { return &in.Metadata }

// ListItems returns the items of the list in server order.
func (in *DeploymentList) ListItems() []metav1.Object {
	out := make([]metav1.Object, len(in.Items))
	for i := range in.Items {
		out[i] = &in.Items[i]
	}
	return out
}
