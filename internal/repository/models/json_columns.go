package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice is stored as a JSON array string (Oracle CLOB).
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface. NULL, "" and "null" scan to an empty slice.
func (s *StringSlice) Scan(value interface{}) error {
	var out []string
	if err := scanJSON(value, &out); err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*s = out
	return nil
}

// JSONList is a list of structs stored as a JSON array string.
type JSONList[T any] []T

func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal([]T(l))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (l *JSONList[T]) Scan(value interface{}) error {
	var out []T
	if err := scanJSON(value, &out); err != nil {
		return fmt.Errorf("JSONList Scan: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	*l = out
	return nil
}

func scanJSON(value interface{}, dest interface{}) error {
	var bytesToParse []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return nil
	}
	return json.Unmarshal(bytesToParse, dest)
}
