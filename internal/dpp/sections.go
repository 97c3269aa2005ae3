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
	"strings"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/service"
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// sectionProcessor projects one section out of a resolved aggregate. It
// returns nil when the aggregate carries no data for the section. Every
// section's output pairs named convenience fields with an "additional"
// bucket of whatever was not extracted, so no source field appears twice.
type sectionProcessor func(agg *service.Aggregate) map[string]any

var sectionProcessors = map[string]sectionProcessor{
	"identification": identificationSection,
	"compliance":     complianceSection,
	"technical":      technicalSection,
	"materials":      materialsSection,
	"sustainability": sustainabilitySection,
	"business":       businessSection,
	"documentation":  documentationSection,
	"location":       locationSection,
	"usage":          usageSection,
}

// elementMap is the "elements" projection of one submodel.
type elementMap map[string]any

func submodelElements(agg *service.Aggregate, templateID string) elementMap {
	sm := agg.SubmodelByTemplateID(templateID)
	if sm == nil {
		return nil
	}
	projected := projectSubmodel(sm)
	elements, _ := projected["elements"].(map[string]any)
	if len(elements) == 0 {
		return nil
	}
	return elements
}

// value extracts the projected value for a top-level element.
func (m elementMap) value(idShort string) any {
	node, ok := m[idShort].(map[string]any)
	if !ok {
		return nil
	}
	return node["value"]
}

// nested descends into a projected collection's elements.
func (m elementMap) nested(idShort string) elementMap {
	node, ok := m[idShort].(map[string]any)
	if !ok {
		return nil
	}
	elements, _ := node["elements"].(map[string]any)
	return elements
}

// additional returns everything not already extracted under a named field.
func (m elementMap) additional(extracted ...string) map[string]any {
	if len(m) == 0 {
		return nil
	}
	taken := make(map[string]struct{}, len(extracted))
	for _, key := range extracted {
		taken[key] = struct{}{}
	}
	bucket := map[string]any{}
	for key, node := range m {
		if _, ok := taken[key]; !ok {
			bucket[key] = node
		}
	}
	if len(bucket) == 0 {
		return nil
	}
	return bucket
}

func identificationSection(agg *service.Aggregate) map[string]any {
	elements := submodelElements(agg, TemplateNameplate)
	if elements == nil {
		return nil
	}

	extracted := []string{
		"ManufacturerProductDesignation", "ManufacturerProductType", "SerialNumber",
		"ProductArticleNumberOfManufacturer", "YearOfConstruction", "CountryOfOrigin",
		"ManufacturerName", "ManufacturerProductFamily",
		"HardwareVersion", "SoftwareVersion", "FirmwareVersion",
	}

	return map[string]any{
		"product": map[string]any{
			"name":               elements.value("ManufacturerProductDesignation"),
			"type":               elements.value("ManufacturerProductType"),
			"serial":             elements.value("SerialNumber"),
			"articleNumber":      elements.value("ProductArticleNumberOfManufacturer"),
			"yearOfConstruction": elements.value("YearOfConstruction"),
			"countryOfOrigin":    elements.value("CountryOfOrigin"),
		},
		"manufacturer": map[string]any{
			"name":          elements.value("ManufacturerName"),
			"productFamily": elements.value("ManufacturerProductFamily"),
		},
		"versions": map[string]any{
			"hardware": elements.value("HardwareVersion"),
			"software": elements.value("SoftwareVersion"),
			"firmware": elements.value("FirmwareVersion"),
		},
		"additional": elements.additional(extracted...),
	}
}

// complianceSection extracts the markings carried on the nameplate.
func complianceSection(agg *service.Aggregate) map[string]any {
	nameplate := agg.SubmodelByTemplateID(TemplateNameplate)
	if nameplate == nil {
		return nil
	}

	markings := []any{}
	projector := newTreeProjector()
	for _, el := range nameplate.SubmodelElements {
		if el.GetIdShort() != "Markings" {
			continue
		}
		for _, child := range markingChildren(el) {
			projected := projector.project(child)
			if projected == nil {
				continue
			}
			elements, _ := projected["elements"].(map[string]any)
			entry := elementMap(elements)
			markings = append(markings, map[string]any{
				"name":       entry.value("MarkingName"),
				"file":       entry.value("MarkingFile"),
				"validFrom":  entry.value("MarkingValidFrom"),
				"validUntil": entry.value("MarkingValidUntil"),
			})
		}
	}

	return map[string]any{
		"certifications": []any{},
		"standards":      []any{},
		"markings":       markings,
	}
}

func markingChildren(el model.SubmodelElement) []model.SubmodelElement {
	switch v := el.(type) {
	case *model.SubmodelElementCollection:
		return v.Value
	case *model.SubmodelElementList:
		return v.Value
	default:
		return nil
	}
}

// technicalSection passes the complete technical data tree through.
func technicalSection(agg *service.Aggregate) map[string]any {
	sm := agg.SubmodelByTemplateID(TemplateTechnicalData)
	if sm == nil {
		return nil
	}
	return projectSubmodel(sm)
}

func sustainabilitySection(agg *service.Aggregate) map[string]any {
	elements := submodelElements(agg, TemplateCarbonFootprint)
	if elements == nil {
		return nil
	}
	pcf := elements.nested("ProductCarbonFootprint")
	if pcf == nil {
		return nil
	}

	return map[string]any{
		"carbonFootprint": map[string]any{
			"value":             pcf.value("PCFCO2eq"),
			"unit":              "kg CO2 eq",
			"calculationMethod": pcf.value("PCFCalculationMethod"),
			"validFrom":         pcf.value("PublicationDate"),
			"validUntil":        pcf.value("ExpirationDate"),
			"lifecycle": map[string]any{
				"phases":    pcf.value("PCFLifeCyclePhase"),
				"reference": pcf.value("PCFReferenceValueForCalculation"),
			},
		},
		"additional": elements.additional("ProductCarbonFootprint"),
	}
}

func businessSection(agg *service.Aggregate) map[string]any {
	elements := submodelElements(agg, TemplateContact)
	if elements == nil {
		return nil
	}
	contact := elements.nested("ContactInformation")
	if contact == nil {
		return nil
	}

	return map[string]any{
		"contacts": []any{
			map[string]any{
				"role":       contact.value("RoleOfContactPerson"),
				"company":    contact.value("Company"),
				"department": contact.value("Department"),
				"address": map[string]any{
					"street":   contact.value("Street"),
					"city":     contact.value("CityTown"),
					"postCode": contact.value("Zipcode"),
					"country":  contact.value("NationalCode"),
				},
				"communication": map[string]any{
					"email": contact.nested("Email").value("EmailAddress"),
					"phone": contact.nested("Phone").value("TelephoneNumber"),
				},
			},
		},
		"additional": elements.additional("ContactInformation"),
	}
}

// materialsSection walks the hierarchical BoM entity tree.
func materialsSection(agg *service.Aggregate) map[string]any {
	hierarchy := agg.SubmodelByTemplateID(TemplateHierarchy)
	if hierarchy == nil {
		return nil
	}

	structure := map[string]any{}
	for _, el := range hierarchy.SubmodelElements {
		if el.GetIdShort() != "EntryNode" {
			continue
		}
		if entry, ok := el.(*model.Entity); ok {
			structure = materialNode(entry, map[*model.Entity]struct{}{})
		}
	}

	return map[string]any{
		"structure": structure,
		"recycling": map[string]any{
			"recyclable": nil,
			"materials":  []any{},
		},
	}
}

func materialNode(entity *model.Entity, visited map[*model.Entity]struct{}) map[string]any {
	node := map[string]any{
		"id":         entity.IdShort,
		"type":       string(entity.EntityType),
		"components": []any{},
	}
	if _, revisited := visited[entity]; revisited {
		return node
	}
	visited[entity] = struct{}{}

	components := []any{}
	for _, statement := range entity.Statements {
		if child, ok := statement.(*model.Entity); ok {
			components = append(components, materialNode(child, visited))
		}
	}
	node["components"] = components
	return node
}

func documentationSection(agg *service.Aggregate) map[string]any {
	docs := agg.SubmodelByTemplateID(TemplateDocumentation)
	if docs == nil {
		return nil
	}

	documents := []any{}
	projector := newTreeProjector()
	for _, el := range docs.SubmodelElements {
		if !strings.HasPrefix(el.GetIdShort(), "Document") {
			continue
		}
		projected := projector.project(el)
		if projected == nil {
			continue
		}
		elements, _ := projected["elements"].(map[string]any)
		doc := elementMap(elements)
		version := doc.nested("DocumentVersion")
		documents = append(documents, map[string]any{
			"id":       doc.nested("DocumentId").value("DocumentIdentifier"),
			"title":    version.value("Title"),
			"type":     doc.nested("DocumentClassification").value("ClassId"),
			"version":  version.value("Version"),
			"language": version.value("Language"),
			"file":     version.value("DigitalFile"),
		})
	}

	return map[string]any{"documents": documents}
}

func locationSection(agg *service.Aggregate) map[string]any {
	elements := submodelElements(agg, TemplateAssetLocation)
	if elements == nil {
		return nil
	}
	return map[string]any{
		"currentLocation": elements["CurrentLocation"],
		"addresses":       elements["Addresses"],
		"history":         elements["LocationHistory"],
		"additional":      elements.additional("CurrentLocation", "Addresses", "LocationHistory"),
	}
}

func usageSection(agg *service.Aggregate) map[string]any {
	elements := submodelElements(agg, TemplateTimeSeries)
	if elements == nil {
		return nil
	}
	return map[string]any{
		"metadata":   elements["Metadata"],
		"segments":   elements["Segments"],
		"additional": elements.additional("Metadata", "Segments"),
	}
}
