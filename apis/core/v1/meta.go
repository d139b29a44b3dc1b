package v1

import (
	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// GetTypeMeta returns the serialized envelope of the object.
func (in *Namespace) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for Namespace.
func (in *Namespace) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "Namespace"}
}

// GetObjectMeta returns the object metadata.
func (in *Namespace) GetObjectMeta() *metav1.ObjectMeta { return &in.Metadata }

// GetTypeMeta returns the serialized envelope of the list.
func (in *NamespaceList) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for NamespaceList.
func (in *NamespaceList) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "NamespaceList"}
}

// GetListMeta returns the list metadata.
func (in *NamespaceList) GetListMeta() *metav1.ListMeta { return &in.Metadata }

// ListItems returns the items of the list in server order.
func (in *NamespaceList) ListItems() []metav1.Object {
	out := make([]metav1.Object, len(in.Items))
	for i := range in.Items {
		out[i] = &in.Items[i]
	}
	return out
}

// GetTypeMeta returns the serialized envelope of the object.
func (in *Pod) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for Pod.
func (in *Pod) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "Pod"}
}

// GetObjectMeta returns the object metadata.
func (in *Pod) GetObjectMeta() *metav1.ObjectMeta { return &in.Metadata }

// GetTypeMeta returns the serialized envelope of the list.
func (in *PodList) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for PodList.
func (in *PodList) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "PodList"}
}

// GetListMeta returns the list metadata.
func (in *PodList) GetListMeta() *metav1.ListMeta { return &in.Metadata }

// ListItems returns the items of the list in server order.
func (in *PodList) ListItems() []metav1.Object {
	out := make([]metav1.Object, len(in.Items))
	for i := range in.Items {
		out[i] = &in.Items[i]
	}
	return out
}

// GetTypeMeta returns the serialized envelope of the object.
func (in *ConfigMap) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for ConfigMap.
func (in *ConfigMap) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "ConfigMap"}
}

// GetObjectMeta returns the object metadata.
func (in *ConfigMap) GetObjectMeta() *metav1.ObjectMeta { return &in.Metadata }

// GetTypeMeta returns the serialized envelope of the list.
func (in *ConfigMapList) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for ConfigMapList.
func (in *ConfigMapList) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "ConfigMapList"}
}

// GetListMeta returns the list metadata.
func (in *ConfigMapList) GetListMeta() *metav1.ListMeta { return &in.Metadata }

// ListItems returns the items of the list in server order.
func (in *ConfigMapList) ListItems() []metav1.Object {
	out := make([]metav1.Object, len(in.Items))
	for i := range in.Items {
		out[i] = &in.Items[i]
	}
	return out
}

// GetTypeMeta returns the serialized envelope of the object.
func (in *Service) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for Service.
func (in *Service) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "Service"}
}

// GetObjectMeta returns the object metadata.
func (in *Service) GetObjectMeta() *metav1.ObjectMeta { return &in.Metadata }

// GetTypeMeta returns the serialized envelope of the list.
func (in *ServiceList) GetTypeMeta() *metav1.TypeMeta { return &in.TypeMeta }

// ExpectedTypeMeta returns the envelope constants for ServiceList.
func (in *ServiceList) ExpectedTypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: Version, Kind: "ServiceList"}
}

// GetListMeta returns the list metadata.
func (in *ServiceList) GetListMeta() *metav1.ListMeta { return &in.Metadata }

// ListItems returns the items of the list in server order.
func (in *ServiceList) ListItems() []metav1.Object {
	out := make([]metav1.Object, len(in.Items))
	for i := range in.Items {
		out[i] = &in.Items[i]
	}
	return out
}
