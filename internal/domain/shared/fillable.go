package shared

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Attributes is an untyped attribute bag, usually decoded from a request body
type Attributes map[string]any

// Fillable is the mass-assignment whitelist of an entity: the only
// attribute names a bulk Fill may write.
type Fillable []string

// Allows reports whether name is in the whitelist
func (f Fillable) Allows(name string) bool {
	for _, n := range f {
		if n == name {
			return true
		}
	}
	return false
}

// Filter returns the subset of attrs whose keys are whitelisted
func (f Fillable) Filter(attrs Attributes) Attributes {
	out := make(Attributes, len(attrs))
	for k, v := range attrs {
		if f.Allows(k) {
			out[k] = v
		}
	}
	return out
}

// Setter converts and stores a single raw attribute value
type Setter func(value any) error

// Fields maps attribute names to the setter writing the typed field
type Fields map[string]Setter

// Assign writes every whitelisted attribute in attrs through its setter.
// Keys outside fillable, or without a setter, are dropped silently.
// A conversion failure aborts with an INVALID_INPUT error naming the key.
func Assign(attrs Attributes, fillable Fillable, fields Fields) error {
	for key, value := range fillable.Filter(attrs) {
		set, ok := fields[key]
		if !ok {
			continue
		}
		if err := set(value); err != nil {
			return NewInvalidInputError(key, err)
		}
	}
	return nil
}

// StringField sets a string; nil clears it
func StringField(dst *string) Setter {
	return func(v any) error {
		if v == nil {
			*dst = ""
			return nil
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}
}

// NullableStringField sets a *string; nil or blank stores nil
func NullableStringField(dst **string) Setter {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*dst = nil
			return nil
		}
		*dst = &s
		return nil
	}
}

// Uint64Field sets a uint64 identifier; nil stores zero
func Uint64Field(dst *uint64) Setter {
	return func(v any) error {
		if v == nil {
			*dst = 0
			return nil
		}
		n, err := toUint64(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

// NullableUint64Field sets an optional foreign key; nil stores nil
func NullableUint64Field(dst **uint64) Setter {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		n, err := toUint64(v)
		if err != nil {
			return err
		}
		*dst = &n
		return nil
	}
}

// IntField sets an int; nil stores zero
func IntField(dst *int) Setter {
	return func(v any) error {
		if v == nil {
			*dst = 0
			return nil
		}
		n, err := toInt(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

// BoolField sets a bool; nil stores false
func BoolField(dst *bool) Setter {
	return func(v any) error {
		if v == nil {
			*dst = false
			return nil
		}
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

// DateField sets an optional calendar date; nil or "" stores nil.
// Accepts "2006-01-02", RFC 3339 and the other layouts cast understands.
func DateField(dst **time.Time) Setter {
	return func(v any) error {
		if v == nil {
			*dst = nil
			return nil
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			*dst = nil
			return nil
		}
		t, err := cast.ToTimeE(v)
		if err != nil {
			return err
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		*dst = &d
		return nil
	}
}

// DecimalField sets a monetary amount; nil stores zero
func DecimalField(dst *decimal.Decimal) Setter {
	return func(v any) error {
		if v == nil {
			*dst = decimal.Zero
			return nil
		}
		d, err := toDecimal(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

// Decimal strings are parsed in base 10 so "08" stays eight.
func toInt(v any) (int, error) {
	if n, ok := v.(json.Number); ok {
		v = n.String()
	}
	if s, ok := v.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return cast.ToIntE(v)
}

func toUint64(v any) (uint64, error) {
	if n, ok := v.(json.Number); ok {
		v = n.String()
	}
	if s, ok := v.(string); ok {
		return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	}
	return cast.ToUint64E(v)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	case json.Number:
		return decimal.NewFromString(x.String())
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unable to cast %#v of type %T to decimal", v, v)
	}
	return decimal.NewFromInt(n), nil
}
