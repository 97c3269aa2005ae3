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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertValueNilAndEmpty(t *testing.T) {
	t.Parallel()

	v, err := ConvertValue(nil, XsString)
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = ConvertValue("", XsInteger)
	require.NoError(t, err)
	require.Nil(t, v)

	// xs:anyURI is the deliberate exception: empty input stays "".
	v, err = ConvertValue("", XsAnyURI)
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = ConvertValue(nil, XsAnyURI)
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestConvertValueIntegers(t *testing.T) {
	t.Parallel()

	v, err := ConvertValue("42", XsInteger)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = ConvertValue(float64(7), XsLong)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	_, err = ConvertValue("seven", XsInteger)
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, XsInteger, convErr.Type)
	assert.Equal(t, "seven", convErr.Value)
}

func TestConvertValueIntegerRejectsOutOfRangeFloat(t *testing.T) {
	t.Parallel()

	// int64(v) on an out-of-range float64 yields an implementation-defined
	// value; the conversion must fail instead of persisting garbage.
	for _, input := range []float64{1e30, -1e30, math.Ldexp(1, 63)} {
		_, err := ConvertValue(input, XsLong)
		require.Error(t, err, "input %v", input)
		var convErr *ConversionError
		require.ErrorAs(t, err, &convErr, "input %v", input)
		assert.Equal(t, XsLong, convErr.Type, "input %v", input)

		_, err = ConvertValue(input, XsInteger)
		require.Error(t, err, "input %v", input)
	}

	// A large but in-range float still converts.
	v, err := ConvertValue(math.Ldexp(1, 62), XsLong)
	require.NoError(t, err)
	require.Equal(t, int64(1)<<62, v)
}

func TestConvertValueUnsignedLongFullRange(t *testing.T) {
	t.Parallel()

	// 2^63 is above the int64 range but well within xs:unsignedLong.
	v, err := ConvertValue("9223372036854775808", XsUnsignedLong)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63, v)

	v, err = ConvertValue("18446744073709551615", XsUnsignedLong)
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), v)
	require.Equal(t, "18446744073709551615", FormatValue(v, XsUnsignedLong))

	_, err = ConvertValue("18446744073709551616", XsUnsignedLong)
	require.Error(t, err)

	_, err = ConvertValue(float64(1e30), XsUnsignedLong)
	require.Error(t, err)
}

func TestConvertValueUnsignedLongRejectsNegative(t *testing.T) {
	t.Parallel()

	v, err := ConvertValue("18446744073709", XsUnsignedLong)
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709), v)

	_, err = ConvertValue("-1", XsUnsignedLong)
	require.Error(t, err)
	// Must be the dedicated negative-value error, not a generic parse error.
	require.ErrorIs(t, err, ErrNegativeUnsignedLong)
}

func TestConvertValueFloats(t *testing.T) {
	t.Parallel()

	v, err := ConvertValue("3.14", XsDouble)
	require.NoError(t, err)
	require.InDelta(t, 3.14, v, 1e-9)

	_, err = ConvertValue("pi", XsFloat)
	require.Error(t, err)
}

func TestConvertValueBoolean(t *testing.T) {
	t.Parallel()

	cases := map[any]bool{
		true:    true,
		false:   false,
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"false": false,
		"0":     false,
	}
	for input, want := range cases {
		v, err := ConvertValue(input, XsBoolean)
		require.NoError(t, err, "input %v", input)
		require.Equal(t, want, v, "input %v", input)
	}

	_, err := ConvertValue("yes", XsBoolean)
	require.Error(t, err)

	_, err = ConvertValue(float64(1), XsBoolean)
	require.Error(t, err)
}

func TestConvertValueDateFormats(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2024-01-15", "15-01-2024", "01/15/2024", "15/01/2024"} {
		v, err := ConvertValue(input, XsDate)
		require.NoError(t, err, "input %s", input)
		require.Equal(t, want, v, "input %s", input)
	}

	_, err := ConvertValue("Jan 15, 2024", XsDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestConvertValueDateFirstFormatWins(t *testing.T) {
	t.Parallel()

	// 03/04/2024 is ambiguous; MM/DD/YYYY is tried before DD/MM/YYYY.
	v, err := ConvertValue("03/04/2024", XsDate)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), v)
}

func TestConvertValueDateTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	for _, input := range []string{"2024-01-15T10:30:00", "2024-01-15 10:30:00", "15-01-2024 10:30:00"} {
		v, err := ConvertValue(input, XsDateTime)
		require.NoError(t, err, "input %s", input)
		require.Equal(t, want, v, "input %s", input)
	}
}

func TestConvertValueAnyURI(t *testing.T) {
	t.Parallel()

	v, err := ConvertValue("https://example.com/spec", XsAnyURI)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/spec", v)

	// Scheme without authority is rejected.
	_, err = ConvertValue("example.com", XsAnyURI)
	require.Error(t, err)

	_, err = ConvertValue("mailto:someone", XsAnyURI)
	require.Error(t, err)
}

func TestConvertValueUnknownTagIsConfigurationError(t *testing.T) {
	t.Parallel()

	_, err := ConvertValue("x", DataTypeDefXsd("xs:gYear"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedValueType)
}

func TestFormatValueRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw       string
		valueType DataTypeDefXsd
	}{
		{"2024-01-15", XsDate},
		{"2024-01-15T10:30:00", XsDateTime},
		{"42", XsInteger},
		{"true", XsBoolean},
		{"3.5", XsDouble},
		{"https://example.com/a", XsAnyURI},
		{"plain", XsString},
	}
	for _, tc := range cases {
		v, err := ConvertValue(tc.raw, tc.valueType)
		require.NoError(t, err, "input %s", tc.raw)
		require.Equal(t, tc.raw, FormatValue(v, tc.valueType), "input %s", tc.raw)
	}
}
