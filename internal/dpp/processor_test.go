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

package dpp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

func TestProjectPropertyRederivesTypedValue(t *testing.T) {
	weight := model.NewProperty("Weight", model.XsInteger)
	weight.Value = "42"

	projected := projectProperty(weight)
	require.NotNil(t, projected)
	require.Equal(t, int64(42), projected["value"])
	require.Equal(t, "xs:integer", projected["valueType"])
}

func TestProjectPropertyFallsBackToRawOnConversionFailure(t *testing.T) {
	weight := model.NewProperty("Weight", model.XsInteger)
	weight.Value = "not-a-number"

	projected := projectProperty(weight)
	require.NotNil(t, projected)
	require.Equal(t, "not-a-number", projected["value"])
}

func TestProjectPropertyEmptyValueIsDropped(t *testing.T) {
	require.Nil(t, projectProperty(model.NewProperty("Empty", model.XsString)))
}

func TestProjectMultiLanguagePropertyLastWriteWins(t *testing.T) {
	name := model.NewMultiLanguageProperty("ProductName")
	name.Value = []model.LangStringTextType{
		{Language: "en", Text: "Pump"},
		{Language: "de", Text: "Pumpe"},
		{Language: "en", Text: "Centrifugal Pump"},
	}

	projected := projectMultiLanguageProperty(name)
	require.NotNil(t, projected)
	require.Equal(t, map[string]any{"en": "Centrifugal Pump", "de": "Pumpe"}, projected["value"])
}

func TestProjectDropsEmptyContainers(t *testing.T) {
	empty := model.NewSubmodelElementCollection("Empty")
	holder := model.NewSubmodelElementCollection("Holder")
	holder.Value = []model.SubmodelElement{empty}

	sm := &model.Submodel{ID: "urn:uuid:sm-1", IdShort: "Test", ModelType: "Submodel"}
	sm.SubmodelElements = []model.SubmodelElement{holder}

	projected := projectSubmodel(sm)
	elements := projected["elements"].(map[string]any)
	require.Empty(t, elements)
}

func TestProjectSkipsNodesWithoutIdShort(t *testing.T) {
	anonymous := model.NewProperty("", model.XsString)
	anonymous.Value = "hidden"
	named := model.NewProperty("Visible", model.XsString)
	named.Value = "shown"

	sm := &model.Submodel{ID: "urn:uuid:sm-2", IdShort: "Test", ModelType: "Submodel"}
	sm.SubmodelElements = []model.SubmodelElement{anonymous, named}

	projected := projectSubmodel(sm)
	elements := projected["elements"].(map[string]any)
	require.Len(t, elements, 1)
	require.Contains(t, elements, "Visible")
}

func TestProjectCycleGuardEmitsReferenceMarker(t *testing.T) {
	inner := model.NewSubmodelElementCollection("Inner")
	outer := model.NewSubmodelElementCollection("Outer")
	outer.Value = []model.SubmodelElement{inner}
	inner.Value = []model.SubmodelElement{outer}

	projector := newTreeProjector()
	projected := projector.project(outer)
	require.NotNil(t, projected)

	innerNode := projected["elements"].(map[string]any)["Inner"].(map[string]any)
	marker := innerNode["elements"].(map[string]any)["Outer"].(map[string]any)
	require.Equal(t, true, marker["reference"])
	require.Equal(t, "Outer", marker["idShort"])
}

func TestProjectFileAndReferenceElement(t *testing.T) {
	manual := model.NewFile("OperatingManual", "application/pdf")
	manual.Value = "/aasx/docs/manual.pdf"

	projected := projectFile(manual)
	require.NotNil(t, projected)
	require.Equal(t, "/aasx/docs/manual.pdf", projected["value"])
	require.Equal(t, "application/pdf", projected["contentType"])

	ref := &model.ReferenceElement{ModelType: "ReferenceElement"}
	ref.SetIdShort("SupplierRef")
	ref.Value = model.NewExternalReference("https://example.com/suppliers/acme")

	projected = projectReferenceElement(ref)
	require.NotNil(t, projected)
	require.Equal(t, "https://example.com/suppliers/acme", projected["value"])

	// A reference without keys carries nothing.
	ref.Value = &model.Reference{Type: model.ExternalReference}
	require.Nil(t, projectReferenceElement(ref))
}

func TestProjectListKeepsOrder(t *testing.T) {
	first := model.NewProperty("First", model.XsString)
	first.Value = "a"
	second := model.NewProperty("Second", model.XsString)
	second.Value = "b"

	list := &model.SubmodelElementList{ModelType: "SubmodelElementList", OrderRelevant: true}
	list.SetIdShort("Items")
	list.Value = []model.SubmodelElement{first, second}

	projector := newTreeProjector()
	projected := projector.project(list)
	require.NotNil(t, projected)
	require.Equal(t, true, projected["orderRelevant"])

	elements := projected["elements"].([]any)
	require.Len(t, elements, 2)
	require.Equal(t, "First", elements[0].(map[string]any)["idShort"])
	require.Equal(t, "Second", elements[1].(map[string]any)["idShort"])
}

func TestProjectSubmodelMetadataIncludesVersion(t *testing.T) {
	serial := model.NewProperty("SerialNumber", model.XsString)
	serial.Value = "SN-1"

	sm := &model.Submodel{
		ID:             "urn:uuid:sm-3",
		IdShort:        "Nameplate",
		ModelType:      "Submodel",
		Administration: &model.AdministrativeInformation{Version: "3"},
	}
	sm.SubmodelElements = []model.SubmodelElement{serial}

	projected := projectSubmodel(sm)
	metadata := projected["metadata"].(map[string]any)
	require.Equal(t, "urn:uuid:sm-3", metadata["id"])
	require.Equal(t, "Nameplate", metadata["idShort"])
	require.Equal(t, "3", metadata["version"])
}
