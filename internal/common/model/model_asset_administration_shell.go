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

// AssetKind discriminates asset instances from asset types.
type AssetKind string

const (
	AssetKindInstance AssetKind = "Instance"
	AssetKindType     AssetKind = "Type"
)

// AssetInformation identifies the physical or logical asset a shell
// represents.
type AssetInformation struct {
	AssetKind AssetKind `json:"assetKind"`

	GlobalAssetID string `json:"globalAssetId,omitempty"`
}

// AssetAdministrationShell is the root aggregate for one asset. Submodel
// membership is held as references by identifier; the bodies live in their
// own store records and are merged in during aggregate assembly.
type AssetAdministrationShell struct {
	ID string `json:"id"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	ModelType string `json:"modelType"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	Administration *AdministrativeInformation `json:"administration,omitempty"`

	AssetInformation AssetInformation `json:"assetInformation"`

	Submodels []Reference `json:"submodels,omitempty"`
}

// NewAssetAdministrationShell creates a shell for an asset instance with the
// given identifiers.
func NewAssetAdministrationShell(id string, globalAssetID string) *AssetAdministrationShell {
	return &AssetAdministrationShell{
		ID:        id,
		ModelType: "AssetAdministrationShell",
		AssetInformation: AssetInformation{
			AssetKind:     AssetKindInstance,
			GlobalAssetID: globalAssetID,
		},
	}
}

// HasSubmodelReference reports whether the shell references the submodel.
func (s *AssetAdministrationShell) HasSubmodelReference(submodelID string) bool {
	for _, ref := range s.Submodels {
		if ref.FirstKeyValue() == submodelID {
			return true
		}
	}
	return false
}

// RemoveSubmodelReference drops the reference to the given submodel and
// reports whether one was present.
func (s *AssetAdministrationShell) RemoveSubmodelReference(submodelID string) bool {
	for i, ref := range s.Submodels {
		if ref.FirstKeyValue() == submodelID {
			s.Submodels = append(s.Submodels[:i], s.Submodels[i+1:]...)
			return true
		}
	}
	return false
}
