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

// DataTypeDefXsd is the XSD primitive type tag carried by Property and Range
// elements. Only the subset used by the DPP templates is supported; passing
// any other tag to the value converter is a configuration error.
type DataTypeDefXsd string

const (
	XsString       DataTypeDefXsd = "xs:string"
	XsInteger      DataTypeDefXsd = "xs:integer"
	XsLong         DataTypeDefXsd = "xs:long"
	XsUnsignedLong DataTypeDefXsd = "xs:unsignedLong"
	XsFloat        DataTypeDefXsd = "xs:float"
	XsDouble       DataTypeDefXsd = "xs:double"
	XsBoolean      DataTypeDefXsd = "xs:boolean"
	XsDate         DataTypeDefXsd = "xs:date"
	XsDateTime     DataTypeDefXsd = "xs:dateTime"
	XsAnyURI       DataTypeDefXsd = "xs:anyURI"
)

// SupportedDataTypes lists every value type tag the converter understands.
func SupportedDataTypes() []DataTypeDefXsd {
	return []DataTypeDefXsd{
		XsString, XsInteger, XsLong, XsUnsignedLong,
		XsFloat, XsDouble, XsBoolean, XsDate, XsDateTime, XsAnyURI,
	}
}
