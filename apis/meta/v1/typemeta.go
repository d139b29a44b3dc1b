package v1

import "fmt"

// TypeMeta is the apiVersion/kind envelope carried by every serialized API
// object. It is embedded in concrete types; the expected values for a given
// type are constants declared through the Object and List interfaces, not
// data a caller sets at runtime.
type TypeMeta struct {
	// APIVersion is the group/version of the object, e.g. "v1" or "apps/v1".
	APIVersion string `json:"apiVersion,omitempty"`
	// Kind is the object kind, e.g. "Pod".
	Kind string `json:"kind,omitempty"`
}

// String renders the pair in the canonical "apiVersion/kind" form used in
// error messages.
func (tm TypeMeta) String() string {
	return fmt.Sprintf("%s/%s", tm.APIVersion, tm.Kind)
}

// MissingFieldError reports an envelope that carries exactly one of
// apiVersion and kind. A half-specified envelope is never valid.
type MissingFieldError struct {
	// Field is the name of the absent envelope field.
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// TypeMismatchError reports an envelope whose apiVersion/kind pair does not
// match the constants expected for the destination type.
type TypeMismatchError struct {
	// Expected is the constant pair declared by the destination type.
	Expected TypeMeta
	// Found is the pair present on the wire.
	Found TypeMeta
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid value: %s, expected %s", e.Found, e.Expected)
}

// Validate checks a decoded envelope against the constants expected for the
// destination type:
//
//   - both fields present and equal to the expected pair: valid
//   - both fields absent: valid, the surrounding context is trusted
//   - exactly one field present: *MissingFieldError naming the absent field
//   - both present but not the expected pair: *TypeMismatchError
func (tm TypeMeta) Validate(expected TypeMeta) error {
	switch {
	case tm.APIVersion != "" && tm.Kind != "":
		if tm != expected {
			return &TypeMismatchError{Expected: expected, Found: tm}
		}
		return nil
	case tm.APIVersion == "" && tm.Kind == "":
		return nil
	case tm.Kind == "":
		return &MissingFieldError{Field: "kind"}
	default:
		return &MissingFieldError{Field: "apiVersion"}
	}
}
