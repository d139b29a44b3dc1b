package v1_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

var _ = Describe("Meta Types", func() {
	Describe("Status", func() {
		It("should decode a server failure payload", func() {
			body := `{
				"apiVersion": "v1",
				"kind": "Status",
				"status": "Failure",
				"message": "pods \"missing\" not found",
				"reason": "NotFound",
				"details": {"name": "missing", "kind": "pods"},
				"code": 404
			}`

			var st metav1.Status
			Expect(json.Unmarshal([]byte(body), &st)).To(Succeed())
			Expect(st.TypeMeta.Validate(metav1.StatusTypeMeta)).To(Succeed())
			Expect(st.Status).To(Equal(metav1.StatusFailure))
			Expect(st.Reason).To(Equal("NotFound"))
			Expect(st.Code).To(Equal(int32(404)))
			Expect(st.Details.Name).To(Equal("missing"))
		})
	})

	Describe("ListMeta", func() {
		It("should expose the continuation cursor", func() {
			var lm metav1.ListMeta
			Expect(json.Unmarshal([]byte(`{"resourceVersion":"10245","continue":"opaque-token"}`), &lm)).To(Succeed())
			Expect(lm.Continue).To(Equal("opaque-token"))
			Expect(lm.ResourceVersion).To(Equal("10245"))
		})
	})

	Describe("WatchEvent", func() {
		It("should keep the payload raw", func() {
			line := `{"type":"ADDED","object":{"apiVersion":"v1","kind":"Pod"}}`

			var ev metav1.WatchEvent
			Expect(json.Unmarshal([]byte(line), &ev)).To(Succeed())
			Expect(ev.Type).To(Equal(metav1.Added))
			Expect(ev.Object).To(MatchJSON(`{"apiVersion":"v1","kind":"Pod"}`))
		})
	})
})
