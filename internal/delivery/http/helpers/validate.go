package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Validator is implemented by request payloads that can validate themselves.
// It returns a list of problems, empty when the payload is valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes a JSON body into dst and runs its validation.
// Unknown fields are rejected.
func DecodeAndValidate(r *http.Request, dst Validator) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if problems := dst.Validate(); len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
