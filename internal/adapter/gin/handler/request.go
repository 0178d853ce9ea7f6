package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON decodes the register body leniently. Text fields accept
// numbers and booleans as their literal text; percentage accepts a numeric
// string. Keys are matched case-sensitively and unknown keys are ignored.
func (r *RegisterUserRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	texts := []struct {
		key string
		dst **string
	}{
		{"name", &r.Name},
		{"email", &r.Email},
		{"course", &r.Course},
		{"studentClass", &r.StudentClass},
		{"branch", &r.Branch},
		{"mobileNumber", &r.MobileNumber},
	}
	for _, f := range texts {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		s, err := textValue(v)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.key, err)
		}
		*f.dst = s
	}

	if v, ok := raw["percentage"]; ok {
		p, err := numberValue(v)
		if err != nil {
			return fmt.Errorf("field %q: %w", "percentage", err)
		}
		r.Percentage = p
	}

	return nil
}

func scalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func textValue(raw json.RawMessage) (*string, error) {
	v, err := scalar(raw)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	case json.Number:
		s := t.String()
		return &s, nil
	case bool:
		s := strconv.FormatBool(t)
		return &s, nil
	default:
		return nil, fmt.Errorf("cannot use %s as text", raw)
	}
}

func numberValue(raw json.RawMessage) (*float64, error) {
	v, err := scalar(raw)
	if err != nil {
		return nil, err
	}

	var s string
	switch t := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("cannot use %s as a number", raw)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("cannot use %s as a number", raw)
	}
	return &f, nil
}
