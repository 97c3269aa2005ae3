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

// LangStringNameType is a language-tagged display name entry.
type LangStringNameType struct {
	Language string `json:"language"`

	Text string `json:"text"`
}

// LangStringTextType is a language-tagged description entry.
type LangStringTextType struct {
	Language string `json:"language"`

	Text string `json:"text"`
}

// SingleLangName wraps a plain string into a one-entry english display name,
// the shape metadata updates arrive in.
func SingleLangName(text string) []LangStringNameType {
	return []LangStringNameType{{Language: "en", Text: text}}
}

// SingleLangText wraps a plain string into a one-entry english description.
func SingleLangText(text string) []LangStringTextType {
	return []LangStringTextType{{Language: "en", Text: text}}
}
