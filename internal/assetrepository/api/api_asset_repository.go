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

// Package api exposes the asset repository operations over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/service"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AssetRepositoryAPI bridges HTTP requests to the asset service.
type AssetRepositoryAPI struct {
	service *service.AssetService
}

// NewAssetRepositoryAPI creates the HTTP facade.
func NewAssetRepositoryAPI(svc *service.AssetService) *AssetRepositoryAPI {
	return &AssetRepositoryAPI{service: svc}
}

// RegisterRoutes mounts the asset routes under {contextPath}/aas.
func (a *AssetRepositoryAPI) RegisterRoutes(r chi.Router, contextPath string) {
	r.Route(contextPath+"/aas", func(r chi.Router) {
		r.Get("/", a.ListAssets)
		r.Post("/", a.CreateAsset)
		r.Get("/templates", a.ListTemplates)
		r.Get("/{aasId}", a.GetAsset)
		r.Patch("/{aasId}", a.UpdateAssetMetadata)
		r.Delete("/{aasId}", a.DeleteAsset)
		r.Post("/{aasId}/submodels", a.AttachSubmodels)
		r.Delete("/{aasId}/submodels/{submodelId}", a.DetachSubmodel)
		r.Patch("/{aasId}/submodels/{submodelId}", a.UpdateSubmodelElements)
	})
}

type createAssetRequest struct {
	TemplateIDs []string              `json:"templateIds"`
	Metadata    service.AssetMetadata `json:"metadata"`
}

// CreateAsset instantiates a new asset from the selected templates.
func (a *AssetRepositoryAPI) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var request createAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		common.WriteError(w, common.NewErrBadRequest("invalid request body: "+err.Error()))
		return
	}
	if len(request.TemplateIDs) == 0 {
		common.WriteError(w, common.NewErrBadRequest("templateIds must not be empty"))
		return
	}

	aggregate, err := a.service.CreateAssetFromTemplates(r.Context(), request.TemplateIDs, request.Metadata)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, aggregate)
}

// ListAssets returns all stored shells.
func (a *AssetRepositoryAPI) ListAssets(w http.ResponseWriter, r *http.Request) {
	shells, err := a.service.ListAssets(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, shells)
}

// ListTemplates returns the template catalog entries.
func (a *AssetRepositoryAPI) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSON(w, http.StatusOK, a.service.ListTemplates())
}

// GetAsset returns the resolved aggregate for one asset.
func (a *AssetRepositoryAPI) GetAsset(w http.ResponseWriter, r *http.Request) {
	aggregate, err := a.service.GetAsset(r.Context(), chi.URLParam(r, "aasId"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, aggregate)
}

// UpdateAssetMetadata applies a partial metadata update.
func (a *AssetRepositoryAPI) UpdateAssetMetadata(w http.ResponseWriter, r *http.Request) {
	var metadata service.AssetMetadata
	if err := json.NewDecoder(r.Body).Decode(&metadata); err != nil {
		common.WriteError(w, common.NewErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	aggregate, err := a.service.UpdateAssetMetadata(r.Context(), chi.URLParam(r, "aasId"), metadata)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, aggregate)
}

// DeleteAsset deletes a shell and its submodels.
func (a *AssetRepositoryAPI) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteAsset(r.Context(), chi.URLParam(r, "aasId")); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type attachSubmodelsRequest struct {
	TemplateIDs []string `json:"templateIds"`
}

// AttachSubmodels instantiates templates and attaches them to an asset.
func (a *AssetRepositoryAPI) AttachSubmodels(w http.ResponseWriter, r *http.Request) {
	var request attachSubmodelsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		common.WriteError(w, common.NewErrBadRequest("invalid request body: "+err.Error()))
		return
	}
	if len(request.TemplateIDs) == 0 {
		common.WriteError(w, common.NewErrBadRequest("templateIds must not be empty"))
		return
	}

	aggregate, err := a.service.AttachSubmodels(r.Context(), chi.URLParam(r, "aasId"), request.TemplateIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, aggregate)
}

// DetachSubmodel removes a submodel from an asset and deletes it.
func (a *AssetRepositoryAPI) DetachSubmodel(w http.ResponseWriter, r *http.Request) {
	aggregate, err := a.service.DetachSubmodel(r.Context(), chi.URLParam(r, "aasId"), chi.URLParam(r, "submodelId"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, aggregate)
}

// UpdateSubmodelElements applies a batch of path-addressed value updates.
func (a *AssetRepositoryAPI) UpdateSubmodelElements(w http.ResponseWriter, r *http.Request) {
	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		common.WriteError(w, common.NewErrBadRequest("invalid request body: "+err.Error()))
		return
	}

	result, err := a.service.UpdateSubmodelElements(r.Context(), chi.URLParam(r, "aasId"), chi.URLParam(r, "submodelId"), updates)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, result)
}
