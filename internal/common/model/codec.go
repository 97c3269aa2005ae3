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
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// The canonical serialization codec used at every persistence boundary.
// serialize -> deserialize is the identity transform on element content and
// on the ordering of list-like children.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalSubmodel renders a submodel to its canonical JSON form.
func MarshalSubmodel(s *Submodel) ([]byte, error) {
	data, err := codec.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal submodel %s: %w", s.ID, err)
	}
	return data, nil
}

// UnmarshalSubmodelJSON parses a canonical JSON document into a submodel.
func UnmarshalSubmodelJSON(data []byte) (*Submodel, error) {
	var s Submodel
	if err := codec.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal submodel: %w", err)
	}
	return &s, nil
}

// MarshalShell renders a shell to its canonical JSON form.
func MarshalShell(s *AssetAdministrationShell) ([]byte, error) {
	data, err := codec.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal shell %s: %w", s.ID, err)
	}
	return data, nil
}

// UnmarshalShellJSON parses a canonical JSON document into a shell.
func UnmarshalShellJSON(data []byte) (*AssetAdministrationShell, error) {
	var s AssetAdministrationShell
	if err := codec.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal shell: %w", err)
	}
	return &s, nil
}

// DeepCopySubmodel clones a submodel through the codec. Template
// instantiation mutates the copy, never the catalog's original.
func DeepCopySubmodel(s *Submodel) (*Submodel, error) {
	data, err := MarshalSubmodel(s)
	if err != nil {
		return nil, err
	}
	return UnmarshalSubmodelJSON(data)
}
