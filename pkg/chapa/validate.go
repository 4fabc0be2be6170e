package chapa

import (
	"encoding/json"
	"fmt"
)

type fieldKind string

const (
	kindNumber fieldKind = "number"
	kindString fieldKind = "string"
	kindObject fieldKind = "object"
)

type fieldRule struct {
	name string
	kind fieldKind
}

// requiredFields is every key Initialize insists on, in the order their
// violations are reported.
var requiredFields = []fieldRule{
	{"amount", kindNumber},
	{"currency", kindString},
	{"email", kindString},
	{"first_name", kindString},
	{"last_name", kindString},
	{"callback_url", kindString},
}

// validate checks req against the rule table and collects every violation
// before failing. A field reports either a presence violation or a type
// violation, never both.
func validate(req TransactionRequest, opts Options) error {
	var violations []string

	for _, r := range requiredFields {
		v := req[r.name]
		switch {
		case !truthy(v):
			violations = append(violations, fmt.Sprintf("Field '%s' is required!", r.name))
		case !r.kind.matches(v):
			violations = append(violations, fmt.Sprintf("Field '%s' must be of type '%s'.", r.name, r.kind))
		}
	}

	if v := req["customization"]; truthy(v) && !kindObject.matches(v) {
		violations = append(violations, fmt.Sprintf("Field 'customization' must be of type '%s'.", kindObject))
	}

	if !truthy(req["tx_ref"]) && !opts.AutoRef {
		violations = append(violations, "Field 'tx_ref' is required! Pass it or set AutoRef to true.")
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (k fieldKind) matches(v any) bool {
	switch k {
	case kindNumber:
		_, ok := asFloat(v)
		return ok
	case kindString:
		_, ok := v.(string)
		return ok
	case kindObject:
		_, ok := asObject(v)
		return ok
	default:
		return false
	}
}

// truthy reports whether a field value counts as supplied: nil, empty
// strings, zero numbers and false do not.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := asFloat(v); ok {
		return f != 0
	}
	switch x := v.(type) {
	case string:
		return x != ""
	case bool:
		return x
	}
	return true
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}

func asObject(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case TransactionRequest:
		return x, true
	}
	return nil, false
}
