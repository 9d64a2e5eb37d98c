// Package schemas defines the typed records the Zoom API exchanges:
// meetings, registrants, participants, and users. Records are constructed
// from decoded JSON mappings and validated field by field; a shape mismatch
// surfaces as *client.InvalidDataError.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/licht1stein/gozoom/pkg/client"
)

// validator is implemented by records that check required fields after decode.
type validator interface {
	Validate() error
}

// Decode constructs a typed record from a decoded JSON mapping, validating
// required fields.
func Decode(m map[string]any, into any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}
	return DecodeBytes(raw, into)
}

// DecodeBytes constructs a typed record from raw JSON.
func DecodeBytes(raw []byte, into any) error {
	if err := json.Unmarshal(raw, into); err != nil {
		return &client.InvalidDataError{
			Record: recordName(into),
			Reason: err.Error(),
		}
	}

	if v, ok := into.(validator); ok {
		return v.Validate()
	}
	return nil
}

// recordName derives a short record label from the target type.
func recordName(into any) string {
	name := fmt.Sprintf("%T", into)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// missingField builds the InvalidDataError for an absent required field.
func missingField(record, field string) error {
	return &client.InvalidDataError{
		Record: record,
		Reason: fmt.Sprintf("missing required field %q", field),
	}
}
