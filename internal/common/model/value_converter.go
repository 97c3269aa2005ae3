/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package model

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ConversionError reports a value that cannot be coerced into its declared
// XSD type. It always names both the offending input and the target type.
type ConversionError struct {
	Value any
	Type  DataTypeDefXsd
	Hint  string
}

func (e *ConversionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("cannot convert %v to %s. %s", e.Value, e.Type, e.Hint)
	}
	return fmt.Sprintf("cannot convert %v to %s", e.Value, e.Type)
}

// ErrNegativeUnsignedLong marks the dedicated failure for negative input to
// xs:unsignedLong, distinct from a generic parse error.
var ErrNegativeUnsignedLong = errors.New("xs:unsignedLong cannot be negative")

// ErrUnsupportedValueType marks an unrecognized type tag. This is a
// configuration error of the caller, never a per-value conversion failure.
var ErrUnsupportedValueType = errors.New("unsupported value type tag")

var dateLayouts = []string{"2006-01-02", "02-01-2006", "01/02/2006", "02/01/2006"}

var dateTimeLayouts = []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "02-01-2006 15:04:05"}

// ConvertValue coerces untyped external input into the canonical Go value
// for the declared XSD type. nil and "" map to nil, except for xs:anyURI
// where empty input maps to the empty string: the UI treats an unset URL
// field as "", not as absent.
//
// Returned canonical types: string, int64, uint64, float64, bool, time.Time.
func ConvertValue(value any, valueType DataTypeDefXsd) (any, error) {
	if value == nil || value == "" {
		if valueType == XsAnyURI {
			return "", nil
		}
		return nil, nil
	}

	switch valueType {
	case XsString:
		return stringify(value), nil

	case XsInteger, XsLong:
		n, err := toInt64(value)
		if err != nil {
			return nil, &ConversionError{Value: value, Type: valueType}
		}
		return n, nil

	case XsUnsignedLong:
		n, err := toUint64(value)
		if err != nil {
			if errors.Is(err, ErrNegativeUnsignedLong) {
				return nil, fmt.Errorf("%w: %v", ErrNegativeUnsignedLong, value)
			}
			return nil, &ConversionError{Value: value, Type: valueType}
		}
		return n, nil

	case XsFloat, XsDouble:
		f, err := toFloat64(value)
		if err != nil {
			return nil, &ConversionError{Value: value, Type: valueType}
		}
		return f, nil

	case XsBoolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		if s, ok := value.(string); ok {
			switch strings.ToLower(s) {
			case "true", "1":
				return true, nil
			case "false", "0":
				return false, nil
			}
		}
		return nil, &ConversionError{Value: value, Type: valueType}

	case XsDate:
		if t, ok := value.(time.Time); ok {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
		if s, ok := value.(string); ok {
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, s); err == nil {
					return t, nil
				}
			}
		}
		return nil, &ConversionError{Value: value, Type: valueType, Hint: "Expected format: YYYY-MM-DD."}

	case XsDateTime:
		if t, ok := value.(time.Time); ok {
			return t, nil
		}
		if s, ok := value.(string); ok {
			for _, layout := range dateTimeLayouts {
				if t, err := time.Parse(layout, s); err == nil {
					return t, nil
				}
			}
		}
		return nil, &ConversionError{Value: value, Type: valueType, Hint: "Expected format: YYYY-MM-DDTHH:MM:SS."}

	case XsAnyURI:
		s := stringify(value)
		parsed, err := url.Parse(s)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, &ConversionError{Value: value, Type: valueType}
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValueType, valueType)
	}
}

// FormatValue renders a converted value back into the canonical string kept
// in Property.Value. An unset (nil) value renders as "".
func FormatValue(value any, valueType DataTypeDefXsd) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case time.Time:
		if valueType == XsDate {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02T15:04:05")
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return stringify(value)
	}
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// toInt64 parses strings as base-10 integers and truncates native numbers,
// matching the lenient handling of JSON input where every number arrives as
// a float64. Floats outside the int64 range are an error: int64(v) would
// produce an implementation-defined value, not a saturation.
func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		if v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("integer out of range: %v", v)
		}
		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return 0, fmt.Errorf("not an integer: %v", value)
	}
}

// toUint64 mirrors toInt64 for the unsigned range. Negative input returns
// ErrNegativeUnsignedLong so the caller can report it distinctly from a
// parse failure; strings go through ParseUint so the full 0..2^64-1 range
// is accepted.
func toUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return 0, ErrNegativeUnsignedLong
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, ErrNegativeUnsignedLong
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		if v < 0 {
			return 0, ErrNegativeUnsignedLong
		}
		if v >= math.MaxUint64 {
			return 0, fmt.Errorf("integer out of range: %v", v)
		}
		return uint64(v), nil
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "-") {
			return 0, ErrNegativeUnsignedLong
		}
		return strconv.ParseUint(s, 10, 64)
	default:
		return 0, fmt.Errorf("not an integer: %v", value)
	}
}

func toFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}
