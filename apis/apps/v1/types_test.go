package v1_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appsv1 "github.com/dtomasi/kclient/apis/apps/v1"
)

var _ = Describe("Apps Types", func() {
	It("should identify deployments in the apps group", func() {
		Expect(appsv1.DeploymentGVR.Group).To(Equal("apps"))
		Expect(appsv1.DeploymentGVR.Version).To(Equal("v1"))
		Expect(appsv1.DeploymentGVR.Resource).To(Equal("deployments"))
	})

	It("should expect a group-qualified apiVersion", func() {
		d := &appsv1.Deployment{}
		Expect(d.ExpectedTypeMeta().APIVersion).To(Equal("apps/v1"))
		Expect(d.ExpectedTypeMeta().Kind).To(Equal("Deployment"))
	})

	It("should decode a deployment from its wire form", func() {
		body := `{
			"apiVersion": "apps/v1",
			"kind": "Deployment",
			"metadata": {"name": "web", "namespace": "default"},
			"spec": {
				"replicas": 3,
				"selector": {"matchLabels": {"app": "web"}},
				"template": {
					"metadata": {"labels": {"app": "web"}},
					"spec": {"containers": [{"name": "web", "image": "nginx:1.27"}]}
				}
			},
			"status": {"replicas": 3, "readyReplicas": 2}
		}`

		var d appsv1.Deployment
		Expect(json.Unmarshal([]byte(body), &d)).To(Succeed())
		Expect(d.TypeMeta.Validate(d.ExpectedTypeMeta())).To(Succeed())
		Expect(*d.Spec.Replicas).To(Equal(int32(3)))
		Expect(d.Spec.Template.Spec.Containers[0].Image).To(Equal("nginx:1.27"))
		Expect(d.Status.ReadyReplicas).To(Equal(int32(2)))
	})
})
