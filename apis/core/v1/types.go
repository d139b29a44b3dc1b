package v1

import (
	"k8s.io/apimachinery/pkg/util/intstr"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// Namespace provides a scope for names and a unit of multi-tenancy.
type Namespace struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec            NamespaceSpec     `json:"spec,omitempty"`
	Status          NamespaceStatus   `json:"status,omitempty"`
}

// NamespaceSpec describes the behaviour of a namespace.
type NamespaceSpec struct {
	// Finalizers must be empty before the namespace can be deleted.
	Finalizers []string `json:"finalizers,omitempty"`
}

// NamespaceStatus reports the current lifecycle phase of a namespace.
type NamespaceStatus struct {
	// Phase is "Active" or "Terminating".
	Phase string `json:"phase,omitempty"`
}

// NamespaceList is a list of Namespace objects.
type NamespaceList struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Namespace     `json:"items"`
}

// Pod is a group of containers scheduled onto one node.
type Pod struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec            PodSpec           `json:"spec,omitempty"`
	Status          PodStatus         `json:"status,omitempty"`
}

// PodSpec describes the containers of a pod and how to run them.
type PodSpec struct {
	// Containers run in the pod. At least one is required.
	Containers []Container `json:"containers"`
	// RestartPolicy is "Always", "OnFailure" or "Never".
	RestartPolicy string `json:"restartPolicy,omitempty"`
	// NodeName is the node the pod is scheduled to.
	NodeName string `json:"nodeName,omitempty"`
}

// Container is a single container within a pod.
type Container struct {
	// Name of the container, unique within the pod.
	Name string `json:"name"`
	// Image is the container image reference.
	Image string `json:"image,omitempty"`
	// Command is the entrypoint; the image default is used when empty.
	Command []string `json:"command,omitempty"`
	// Args are the entrypoint arguments.
	Args []string `json:"args,omitempty"`
	// Ports lists the ports the container exposes.
	Ports []ContainerPort `json:"ports,omitempty"`
}

// ContainerPort is a network port exposed by a container.
type ContainerPort struct {
	// Name is an optional IANA_SVC_NAME for the port.
	Name string `json:"name,omitempty"`
	// ContainerPort is the port number on the pod's IP address.
	ContainerPort int32 `json:"containerPort"`
	// Protocol is "TCP", "UDP" or "SCTP"; defaults to "TCP".
	Protocol string `json:"protocol,omitempty"`
}

// PodStatus reports the observed state of a pod.
type PodStatus struct {
	// Phase is the coarse lifecycle phase, e.g. "Running".
	Phase string `json:"phase,omitempty"`
	// Message is a human-readable note on the current state.
	Message string `json:"message,omitempty"`
	// PodIP is the address allocated to the pod.
	PodIP string `json:"podIP,omitempty"`
}

// PodList is a list of Pod objects.
type PodList struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Pod           `json:"items"`
}

// ConfigMap holds configuration data for consumption by pods.
type ConfigMap struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Data            map[string]string `json:"data,omitempty"`
}

// ConfigMapList is a list of ConfigMap objects.
type ConfigMapList struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ConfigMap     `json:"items"`
}

// Service exposes a set of pods as a named network endpoint.
type Service struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec            ServiceSpec       `json:"spec,omitempty"`
}

// ServiceSpec describes the selector and ports of a service.
type ServiceSpec struct {
	// Selector routes traffic to pods with matching labels.
	Selector map[string]string `json:"selector,omitempty"`
	// Ports are the ports exposed by the service.
	Ports []ServicePort `json:"ports,omitempty"`
	// ClusterIP is the allocated virtual address.
	ClusterIP string `json:"clusterIP,omitempty"`
	// Type is "ClusterIP", "NodePort" or "LoadBalancer".
	Type string `json:"type,omitempty"`
}

// ServicePort is one port exposed by a service.
type ServicePort struct {
	// Name is required when more than one port is defined.
	Name string `json:"name,omitempty"`
	// Protocol is "TCP", "UDP" or "SCTP"; defaults to "TCP".
	Protocol string `json:"protocol,omitempty"`
	// Port is the port exposed by the service.
	Port int32 `json:"port"`
	// TargetPort is the port or named port on the backing pods.
	TargetPort intstr.IntOrString `json:"targetPort,omitempty"`
}

// ServiceList is a list of Service objects.
type ServiceList struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Service       `json:"items"`
}
