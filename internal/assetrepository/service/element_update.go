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

package service

import (
	"fmt"

	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// applyElementUpdate writes a new value into a resolved node. Properties go
// through the typed value converter and store the canonical string form.
// MultiLanguageProperties replace their entire language set with the
// supplied entries. Files take the value as a plain string. Other element
// kinds are not mutable through path updates and report false.
func applyElementUpdate(el model.SubmodelElement, value any) (bool, error) {
	switch v := el.(type) {
	case *model.Property:
		converted, err := model.ConvertValue(value, v.ValueType)
		if err != nil {
			return false, err
		}
		v.Value = model.FormatValue(converted, v.ValueType)
		return true, nil

	case *model.MultiLanguageProperty:
		entries, err := langEntries(value)
		if err != nil {
			return false, err
		}
		v.Value = entries
		return true, nil

	case *model.File:
		if value == nil {
			v.Value = ""
		} else {
			v.Value = fmt.Sprintf("%v", value)
		}
		return true, nil

	default:
		return false, nil
	}
}

// langEntries converts a decoded JSON array of {language, text} objects
// into lang string entries.
func langEntries(value any) ([]model.LangStringTextType, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, common.NewErrBadRequest("value for MultiLanguageProperty must be an array")
	}

	entries := make([]model.LangStringTextType, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, common.NewErrBadRequest("value for MultiLanguageProperty must contain {language, text} objects")
		}
		language, _ := entry["language"].(string)
		if language == "" {
			return nil, common.NewErrBadRequest("language entry is missing a language code")
		}
		entries = append(entries, model.LangStringTextType{
			Language: language,
			Text:     fmt.Sprintf("%v", entry["text"]),
		})
	}
	return entries, nil
}
