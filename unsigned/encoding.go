// SPDX-License-Identifier: MIT

package unsigned

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Codecs. Encoding is total for finite values; decoding always re-validates,
// so an F64 read from text, JSON, YAML or a database row satisfies the
// invariant just like one built with New.

var (
	_ encoding.TextMarshaler   = F64{}
	_ encoding.TextUnmarshaler = (*F64)(nil)
	_ json.Marshaler           = F64{}
	_ json.Unmarshaler         = (*F64)(nil)
	_ yaml.Marshaler           = F64{}
	_ yaml.Unmarshaler         = (*F64)(nil)
	_ driver.Valuer            = F64{}
	_ sql.Scanner              = (*F64)(nil)
)

// decodeErrorf tags a decoding failure with its source so callers can both
// read the context and match the sentinel with errors.Is.
func decodeErrorf(codec string, src any) error {
	return fmt.Errorf("unsigned: %s %v: %w", codec, src, ErrInvariant)
}

// set validates v and stores it, reporting failure with the codec's tag.
func (f *F64) set(codec string, v float64) error {
	if !valid(v) {
		return decodeErrorf(codec, v)
	}
	f.v = v

	return nil
}

// MarshalText encodes f in the same form as String; +Inf becomes "+Inf".
func (f F64) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, f.v, 'g', -1, 64), nil
}

// UnmarshalText parses any form strconv.ParseFloat accepts and validates it.
// "-1" and "NaN" fail with ErrInvariant; "inf" is accepted.
func (f *F64) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return fmt.Errorf("unsigned: text %q: %w", text, err)
	}

	return f.set("text", v)
}

// MarshalJSON encodes f as a JSON number. JSON has no infinity or NaN, so
// those values fail to encode.
func (f F64) MarshalJSON() ([]byte, error) {
	if math.IsInf(f.v, 0) || math.IsNaN(f.v) {
		return nil, fmt.Errorf("unsigned: json: unsupported value %s", f)
	}

	return strconv.AppendFloat(nil, f.v, 'g', -1, 64), nil
}

// UnmarshalJSON decodes a JSON number and validates it. A JSON null leaves f
// unchanged, following encoding/json conventions.
func (f *F64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("unsigned: json %s: %w", data, err)
	}

	return f.set("json", v)
}

// MarshalYAML encodes f as a YAML float; +Inf is written as .inf.
func (f F64) MarshalYAML() (any, error) {
	return f.v, nil
}

// UnmarshalYAML decodes a scalar node as float64 and validates it.
// ".inf" is accepted; "-.inf", ".nan" and negative numbers are rejected.
func (f *F64) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("unsigned: yaml line %d: %w", node.Line, err)
	}

	return f.set("yaml", v)
}

// Value stores f as a float64 column value.
func (f F64) Value() (driver.Value, error) {
	return f.v, nil
}

// Scan reads a numeric or textual column value and validates it.
// SQL NULL fails with ErrInvariant: there is no absent F64.
func (f *F64) Scan(src any) error {
	switch x := src.(type) {
	case float64:
		return f.set("sql", x)
	case float32:
		return f.set("sql", float64(x))
	case int64:
		return f.set("sql", float64(x))
	case []byte:
		return f.scanText(x)
	case string:
		return f.scanText([]byte(x))
	case nil:
		return decodeErrorf("sql", "NULL")
	default:
		return fmt.Errorf("unsigned: sql: unsupported source type %T", src)
	}
}

func (f *F64) scanText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return fmt.Errorf("unsigned: sql %q: %w", text, err)
	}

	return f.set("sql", v)
}
