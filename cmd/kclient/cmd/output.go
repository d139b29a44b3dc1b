package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// printObject renders a single object in the configured output format.
func printObject(w io.Writer, obj metav1.Object) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "name":
		_, err := fmt.Fprintf(w, "%s/%s\n", obj.ExpectedTypeMeta().Kind, obj.GetObjectMeta().Name)
		return err
	case "yaml":
		data, err := yaml.Marshal(obj)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
