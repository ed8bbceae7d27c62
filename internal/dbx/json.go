package dbx

import (
	"encoding/json"
	"fmt"
)

// NullJSON encodes v for a nullable JSON column. A nil v is stored as NULL.
func NullJSON[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return raw, nil
}

// ScanNullJSON decodes a value read from a nullable JSON column.
// NULL and empty input yield nil.
func ScanNullJSON[T any](raw []byte) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode %T: %w", v, err)
	}
	return v, nil
}
