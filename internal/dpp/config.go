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

// Package dpp derives Digital Product Passport views from resolved asset
// aggregates. A declarative section schema maps section ids to the submodel
// templates they need; section processors project the matched submodels
// into reduced, UI-oriented structures.
package dpp

// Template ids of the DPP-relevant submodels.
const (
	TemplateNameplate       = "https://admin-shell.io/idta/SubmodelTemplate/DigitalNameplate/3/0"
	TemplateTechnicalData   = "https://admin-shell.io/ZVEI/TechnicalData/Submodel/1/2"
	TemplateCarbonFootprint = "https://admin-shell.io/idta/SubmodelTemplate/CarbonFootprint/0/9"
	TemplateContact         = "https://admin-shell.io/idta/SubmodelTemplate/ContactInformation/1/0"
	TemplateDocumentation   = "https://admin-shell.io/idta/SubmodelTemplate/HandoverDocumentation/1/0"
	TemplateHierarchy       = "https://admin-shell.io/idta/SubmodelTemplate/HierarchicalStructuresBoM/1/1"
	TemplateAssetLocation   = "https://admin-shell.io/idta/SubmodelTemplate/DataModelforAssetLocation/1/0"
	TemplateTimeSeries      = "https://admin-shell.io/idta/SubmodelTemplate/TimeSeries/1/1"
)

// Section availability states.
const (
	StatusAvailable  = "available"
	StatusIncomplete = "incomplete"
)

// SectionRequirement declares what a section needs and how it is shown.
type SectionRequirement struct {
	Required    []string
	Optional    []string
	Title       string
	Icon        string
	Description string
}

// SectionRequirements maps section ids to their declared submodel
// templates. A section is available when every required template is
// present among the aggregate's submodels (matched by template lineage
// id); partial coverage, or optional-only coverage, reports incomplete;
// no coverage omits the section.
var SectionRequirements = map[string]SectionRequirement{
	"identification": {
		Required:    []string{TemplateNameplate},
		Title:       "Product Identification",
		Icon:        "identification-badge",
		Description: "Basic product and manufacturer identification information",
	},
	"technical": {
		Required:    []string{TemplateTechnicalData},
		Title:       "Technical Data",
		Icon:        "gear",
		Description: "Technical specifications and parameters",
	},
	"sustainability": {
		Required:    []string{TemplateCarbonFootprint},
		Title:       "Environmental Impact",
		Icon:        "leaf",
		Description: "Carbon footprint and environmental impact data",
	},
	"business": {
		Required:    []string{TemplateContact},
		Title:       "Business Information",
		Icon:        "building",
		Description: "Contact information and business details",
	},
	"materials": {
		Required:    []string{TemplateHierarchy},
		Title:       "Materials & Composition",
		Icon:        "cube",
		Description: "Product composition and material information",
	},
	"documentation": {
		Required:    []string{TemplateDocumentation},
		Title:       "Documentation",
		Icon:        "file-text",
		Description: "Technical documentation and manuals",
	},
	"compliance": {
		Required:    []string{TemplateNameplate},
		Optional:    []string{TemplateContact},
		Title:       "Compliance & Standards",
		Icon:        "check-circle",
		Description: "Regulatory compliance and certification information",
	},
	"location": {
		Required:    []string{TemplateAssetLocation},
		Title:       "Asset Location",
		Icon:        "map-pin",
		Description: "Location tracking and history information",
	},
	"usage": {
		Required:    []string{TemplateTimeSeries},
		Optional:    []string{TemplateAssetLocation},
		Title:       "Usage Data",
		Icon:        "activity",
		Description: "Product usage statistics and history",
	},
}

// SectionOrder is the EU DPP display priority of the sections.
var SectionOrder = []string{
	"identification",
	"compliance",
	"technical",
	"materials",
	"sustainability",
	"business",
	"documentation",
	"location",
	"usage",
}
