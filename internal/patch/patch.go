// Package patch applies an ordered sequence of replace/add/remove
// operations to a villa DTO. Field access is a typed switch over the
// known wire fields rather than reflection, so an operation can only
// ever touch a field the DTO actually has.
package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magicvilla/villa-api/internal/api/dto"
)

type Op string

const (
	OpAdd     Op = "add"
	OpReplace Op = "replace"
	OpRemove  Op = "remove"
)

// Operation is a single patch step. Value is kept raw until the target
// field is known, then decoded into that field's type.
type Operation struct {
	Op    Op              `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Document is an ordered patch; operations apply in sequence.
type Document []Operation

// FieldError reports an operation that could not be applied.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("patch operation on %q: %s", e.Path, e.Reason)
}

// Apply runs every operation against the DTO in order and stops at the
// first failure. Id and the timestamp pair are owned by the store and
// cannot be patched.
func (d Document) Apply(villa *dto.VillaDTO) error {
	for _, op := range d {
		if err := op.apply(villa); err != nil {
			return err
		}
	}
	return nil
}

func (o Operation) apply(villa *dto.VillaDTO) error {
	field, ok := strings.CutPrefix(o.Path, "/")
	if !ok {
		return &FieldError{Path: o.Path, Reason: "path must start with /"}
	}

	switch o.Op {
	case OpAdd, OpReplace, OpRemove:
	default:
		return &FieldError{Path: o.Path, Reason: fmt.Sprintf("unsupported op %q", o.Op)}
	}

	// Paths are matched case-insensitively, the same way the JSON binder
	// matches body fields.
	switch {
	case strings.EqualFold(field, "Name"):
		return o.applyString(&villa.Name)
	case strings.EqualFold(field, "Details"):
		return o.applyString(&villa.Details)
	case strings.EqualFold(field, "Amenity"):
		return o.applyString(&villa.Amenity)
	case strings.EqualFold(field, "ImageUrl"):
		return o.applyString(&villa.ImageUrl)
	case strings.EqualFold(field, "Occupancy"):
		return o.applyInt(&villa.Occupancy)
	case strings.EqualFold(field, "Sqft"):
		return o.applyInt(&villa.Sqft)
	case strings.EqualFold(field, "Rate"):
		return o.applyFloat(&villa.Rate)
	case strings.EqualFold(field, "Id"),
		strings.EqualFold(field, "CreatedDate"),
		strings.EqualFold(field, "UpdateDate"):
		return &FieldError{Path: o.Path, Reason: "field is not patchable"}
	default:
		return &FieldError{Path: o.Path, Reason: "unknown field"}
	}
}

func (o Operation) applyString(target *string) error {
	if o.Op == OpRemove {
		*target = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return &FieldError{Path: o.Path, Reason: "value must be a string"}
	}
	*target = v
	return nil
}

func (o Operation) applyInt(target *int) error {
	if o.Op == OpRemove {
		*target = 0
		return nil
	}
	var v int
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return &FieldError{Path: o.Path, Reason: "value must be an integer"}
	}
	*target = v
	return nil
}

func (o Operation) applyFloat(target *float64) error {
	if o.Op == OpRemove {
		*target = 0
		return nil
	}
	var v float64
	if err := json.Unmarshal(o.Value, &v); err != nil {
		return &FieldError{Path: o.Path, Reason: "value must be a number"}
	}
	*target = v
	return nil
}
