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

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/dpp"
)

// DPPAPI exposes the passport views over HTTP.
type DPPAPI struct {
	service *dpp.DPPService
}

func NewDPPAPI(service *dpp.DPPService) *DPPAPI {
	return &DPPAPI{service: service}
}

func (a *DPPAPI) RegisterRoutes(r chi.Router, contextPath string) {
	r.Route(contextPath+"/dpp/{aasId}", func(r chi.Router) {
		r.Get("/sections", a.ListSections)
		r.Get("/section/{sectionId}", a.GetSection)
		r.Get("/download", a.Download)
	})
}

// ListSections handles GET /dpp/{aasId}/sections. The optional status query
// parameter narrows the listing to available or incomplete sections.
func (a *DPPAPI) ListSections(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	if statusFilter != "" && statusFilter != dpp.StatusAvailable && statusFilter != dpp.StatusIncomplete {
		common.WriteError(w, common.NewErrBadRequest("status must be 'available' or 'incomplete'"))
		return
	}

	sections, err := a.service.ListSections(r.Context(), chi.URLParam(r, "aasId"), statusFilter)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]any{"sections": sections})
}

// GetSection handles GET /dpp/{aasId}/section/{sectionId}.
func (a *DPPAPI) GetSection(w http.ResponseWriter, r *http.Request) {
	section, err := a.service.GetSection(r.Context(), chi.URLParam(r, "aasId"), chi.URLParam(r, "sectionId"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, section)
}

// Download handles GET /dpp/{aasId}/download. Null leaves are pruned unless
// raw=true is given.
func (a *DPPAPI) Download(w http.ResponseWriter, r *http.Request) {
	passport, err := a.service.GenerateComplete(r.Context(), chi.URLParam(r, "aasId"), r.URL.Query().Get("raw") == "true")
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, passport)
}
