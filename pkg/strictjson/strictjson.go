// Package strictjson decodes request bodies that must match their target
// type exactly.
package strictjson

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"lifeplan/pkg/apperr"
)

// Decode reads one JSON value into v. Unknown fields, type mismatches,
// empty bodies and trailing data are all validation errors.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("empty body")
		}
		return apperr.Invalid("%s", strings.TrimPrefix(err.Error(), "json: "))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperr.Invalid("unexpected data after object")
	}
	return nil
}
