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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence/inmemory"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/templates"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

const nameplateTemplateID = "T1"

func nameplateTemplate() *model.Submodel {
	serial := model.NewProperty("SerialNumber", model.XsString)
	weight := model.NewProperty("Weight", model.XsInteger)
	return &model.Submodel{
		ID:               nameplateTemplateID,
		IdShort:          "Nameplate",
		ModelType:        "Submodel",
		Kind:             model.KindTemplate,
		SubmodelElements: []model.SubmodelElement{serial, weight},
	}
}

func newTestService(t *testing.T) (*AssetService, *inmemory.InMemoryAssetDatabase) {
	t.Helper()
	db := inmemory.NewInMemoryAssetDatabase()
	catalog := templates.NewInMemoryCatalog()
	catalog.Add(nameplateTemplate())
	return NewAssetService(db, catalog), db
}

func createTestAsset(t *testing.T, sut *AssetService) *Aggregate {
	t.Helper()
	name := "Industrial Pump"
	aggregate, err := sut.CreateAssetFromTemplates(context.Background(), []string{nameplateTemplateID}, AssetMetadata{DisplayName: &name})
	require.NoError(t, err)
	return aggregate
}

func TestCreateAssetInstantiatesTemplate(t *testing.T) {
	sut, _ := newTestService(t)

	aggregate := createTestAsset(t, sut)

	require.Len(t, aggregate.Submodels, 1)
	instance := aggregate.Submodels[0]
	require.Equal(t, nameplateTemplateID, instance.TemplateID())
	require.NotEqual(t, nameplateTemplateID, instance.ID)
	require.True(t, strings.HasPrefix(instance.ID, "urn:uuid:"))
	require.Equal(t, model.KindInstance, instance.Kind)
	require.True(t, aggregate.Shell.HasSubmodelReference(instance.ID))
	require.Equal(t, "Industrial Pump", aggregate.Shell.DisplayName[0].Text)
}

func TestCreateAssetUnknownTemplateFails(t *testing.T) {
	sut, _ := newTestService(t)

	_, err := sut.CreateAssetFromTemplates(context.Background(), []string{"nope"}, AssetMetadata{})
	require.Error(t, err)
	require.True(t, common.IsErrBadRequest(err))
}

func TestUpdateSubmodelElementsBySimplifiedPath(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)
	assetID := aggregate.Shell.ID
	submodelID := aggregate.Submodels[0].ID

	result, err := sut.UpdateSubmodelElements(context.Background(), assetID, submodelID, map[string]any{
		"Nameplate/SerialNumber": "XYZ-1",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"SerialNumber"}, result.UpdatedPaths)
	require.Empty(t, result.SkippedPaths)

	reread, err := sut.GetAsset(context.Background(), assetID)
	require.NoError(t, err)
	element, _, ok := newPathIndex(reread.Submodels[0]).Resolve("SerialNumber")
	require.True(t, ok)
	property := element.(*model.Property)
	require.Equal(t, "XYZ-1", property.Value)
	require.Equal(t, model.XsString, property.ValueType)
}

func TestUpdateSubmodelElementsSkipsUnknownPaths(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	result, err := sut.UpdateSubmodelElements(context.Background(), aggregate.Shell.ID, aggregate.Submodels[0].ID, map[string]any{
		"Stale/Bogus": "ignored",
	})
	require.NoError(t, err)
	require.Empty(t, result.UpdatedPaths)
	require.Equal(t, []string{"Stale/Bogus"}, result.SkippedPaths)
}

func TestUpdateSubmodelElementsConversionFailureIsLoud(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	_, err := sut.UpdateSubmodelElements(context.Background(), aggregate.Shell.ID, aggregate.Submodels[0].ID, map[string]any{
		"Nameplate/Weight": "not-a-number",
	})
	require.Error(t, err)
	require.True(t, common.IsErrBadRequest(err))
	require.Contains(t, err.Error(), "Nameplate/Weight")
}

func TestUpdateSubmodelElementsOverflowingNumberIsLoud(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	// A JSON number beyond the int64 range must fail the request, not
	// persist a wrapped-around value.
	_, err := sut.UpdateSubmodelElements(context.Background(), aggregate.Shell.ID, aggregate.Submodels[0].ID, map[string]any{
		"Nameplate/Weight": float64(1e30),
	})
	require.Error(t, err)
	require.True(t, common.IsErrBadRequest(err))
	require.Contains(t, err.Error(), "Nameplate/Weight")

	reread, err := sut.GetAsset(context.Background(), aggregate.Shell.ID)
	require.NoError(t, err)
	element, _, ok := newPathIndex(reread.Submodels[0]).Resolve("Weight")
	require.True(t, ok)
	require.Equal(t, "", element.(*model.Property).Value)
}

func TestUpdateSubmodelElementsNotAttachedFails(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	_, err := sut.UpdateSubmodelElements(context.Background(), aggregate.Shell.ID, "urn:uuid:other", map[string]any{
		"Nameplate/SerialNumber": "XYZ-1",
	})
	require.Error(t, err)
	require.True(t, common.IsErrNotFound(err))
}

func TestDetachSubmodelRemovesReferenceAndRecord(t *testing.T) {
	sut, db := newTestService(t)
	aggregate := createTestAsset(t, sut)
	assetID := aggregate.Shell.ID
	submodelID := aggregate.Submodels[0].ID

	detached, err := sut.DetachSubmodel(context.Background(), assetID, submodelID)
	require.NoError(t, err)
	require.False(t, detached.Shell.HasSubmodelReference(submodelID))
	require.Empty(t, detached.Submodels)

	_, err = db.GetSubmodel(context.Background(), submodelID)
	require.True(t, common.IsErrNotFound(err))
}

func TestDetachUnknownSubmodelFails(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	_, err := sut.DetachSubmodel(context.Background(), aggregate.Shell.ID, "urn:uuid:other")
	require.Error(t, err)
	require.True(t, common.IsErrNotFound(err))
}

func TestGetAssetDegradesToUnresolvedMarker(t *testing.T) {
	sut, db := newTestService(t)
	aggregate := createTestAsset(t, sut)
	submodelID := aggregate.Submodels[0].ID

	// Submodel vanishes behind the shell's back.
	require.NoError(t, db.DeleteSubmodel(context.Background(), submodelID))

	reread, err := sut.GetAsset(context.Background(), aggregate.Shell.ID)
	require.NoError(t, err)
	require.Empty(t, reread.Submodels)
	require.Equal(t, []string{submodelID}, reread.Unresolved)
}

func TestUpdateAssetMetadataIsPartial(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	globalID := "urn:asset:pump-42"
	updated, err := sut.UpdateAssetMetadata(context.Background(), aggregate.Shell.ID, AssetMetadata{GlobalAssetID: &globalID})
	require.NoError(t, err)
	require.Equal(t, globalID, updated.Shell.AssetInformation.GlobalAssetID)
	// untouched fields survive
	require.Equal(t, "Industrial Pump", updated.Shell.DisplayName[0].Text)
}

func TestDeleteAssetCascades(t *testing.T) {
	sut, db := newTestService(t)
	aggregate := createTestAsset(t, sut)
	submodelID := aggregate.Submodels[0].ID

	require.NoError(t, sut.DeleteAsset(context.Background(), aggregate.Shell.ID))

	_, err := sut.GetAsset(context.Background(), aggregate.Shell.ID)
	require.True(t, common.IsErrNotFound(err))
	_, err = db.GetSubmodel(context.Background(), submodelID)
	require.True(t, common.IsErrNotFound(err))
}

func TestAttachSubmodelsAddsInstance(t *testing.T) {
	sut, _ := newTestService(t)
	aggregate := createTestAsset(t, sut)

	updated, err := sut.AttachSubmodels(context.Background(), aggregate.Shell.ID, []string{nameplateTemplateID})
	require.NoError(t, err)
	require.Len(t, updated.Submodels, 2)
	require.NotEqual(t, updated.Submodels[0].ID, updated.Submodels[1].ID)
	for _, sm := range updated.Submodels {
		require.Equal(t, nameplateTemplateID, sm.TemplateID())
	}
}

func TestListAssets(t *testing.T) {
	sut, _ := newTestService(t)
	first := createTestAsset(t, sut)
	second := createTestAsset(t, sut)

	shells, err := sut.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, shells, 2)
	ids := []string{shells[0].ID, shells[1].ID}
	require.ElementsMatch(t, ids, []string{first.Shell.ID, second.Shell.ID})
}
