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
	"context"
	"fmt"
	"time"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/service"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

// SectionSummary describes one passport section and its availability.
type SectionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// SectionView is one fully projected section.
type SectionView struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

// CompleteDPP is a full passport document, every available section included.
type CompleteDPP struct {
	ID          string         `json:"id"`
	GeneratedAt string         `json:"generatedAt"`
	Format      string         `json:"format"`
	Sections    map[string]any `json:"sections"`
	Metadata    map[string]any `json:"metadata"`
}

// DPPService derives passport views from the asset repository.
type DPPService struct {
	assets *service.AssetService
	now    func() time.Time
}

func NewDPPService(assets *service.AssetService) *DPPService {
	return &DPPService{assets: assets, now: time.Now}
}

// ListSections reports the sections the asset can serve, in presentation
// order. Sections with no matching submodel at all are omitted; statusFilter
// narrows the listing to one status when non-empty.
func (s *DPPService) ListSections(ctx context.Context, aasID string, statusFilter string) ([]SectionSummary, error) {
	agg, err := s.assets.GetAsset(ctx, aasID)
	if err != nil {
		return nil, err
	}

	summaries := []SectionSummary{}
	for _, sectionID := range SectionOrder {
		req := SectionRequirements[sectionID]
		status, covered := sectionStatus(agg, req)
		if !covered {
			continue
		}
		if statusFilter != "" && status != statusFilter {
			continue
		}
		summaries = append(summaries, SectionSummary{
			ID:          sectionID,
			Title:       req.Title,
			Icon:        req.Icon,
			Description: req.Description,
			Status:      status,
		})
	}
	return summaries, nil
}

// GetSection projects a single section. Unknown section ids and sections
// whose required templates are absent both answer not found.
func (s *DPPService) GetSection(ctx context.Context, aasID string, sectionID string) (*SectionView, error) {
	req, known := SectionRequirements[sectionID]
	if !known {
		return nil, common.NewErrNotFound(fmt.Sprintf("section '%s' is not recognized", sectionID))
	}

	agg, err := s.assets.GetAsset(ctx, aasID)
	if err != nil {
		return nil, err
	}

	status, covered := sectionStatus(agg, req)
	if !covered {
		return nil, common.NewErrNotFound(fmt.Sprintf("section '%s' has no data for asset '%s'", sectionID, aasID))
	}

	data := sectionProcessors[sectionID](agg)
	if data == nil {
		data = map[string]any{}
	}
	return &SectionView{
		ID:     sectionID,
		Title:  req.Title,
		Status: status,
		Data:   data,
	}, nil
}

// GenerateComplete builds the whole passport. When raw is false, null leaves
// are pruned from every section before assembly.
func (s *DPPService) GenerateComplete(ctx context.Context, aasID string, raw bool) (*CompleteDPP, error) {
	agg, err := s.assets.GetAsset(ctx, aasID)
	if err != nil {
		return nil, err
	}

	format := "clean"
	if raw {
		format = "raw"
	}

	sections := map[string]any{}
	for _, sectionID := range SectionOrder {
		req := SectionRequirements[sectionID]
		status, covered := sectionStatus(agg, req)
		if !covered {
			continue
		}
		data := sectionProcessors[sectionID](agg)
		section := map[string]any{
			"title":  req.Title,
			"status": status,
			"data":   data,
		}
		if !raw {
			section, _ = CleanNulls(section, defaultPreservePaths).(map[string]any)
		}
		sections[sectionID] = section
	}

	generatedAt := s.now().UTC().Format(time.RFC3339)
	return &CompleteDPP{
		ID:          "dpp:" + aasID,
		GeneratedAt: generatedAt,
		Format:      format,
		Sections:    sections,
		Metadata: map[string]any{
			"generatedBy":   "DPP Service v1.0",
			"generatedAt":   generatedAt,
			"sourceAssetId": aasID,
			"format":        format,
		},
	}, nil
}

// sectionStatus classifies a section against one aggregate. The second
// return is false when neither required nor optional templates matched.
func sectionStatus(agg *service.Aggregate, req SectionRequirement) (string, bool) {
	requiredHits := 0
	for _, templateID := range req.Required {
		if agg.SubmodelByTemplateID(templateID) != nil {
			requiredHits++
		}
	}
	optionalHits := 0
	for _, templateID := range req.Optional {
		if agg.SubmodelByTemplateID(templateID) != nil {
			optionalHits++
		}
	}

	switch {
	case len(req.Required) > 0 && requiredHits == len(req.Required):
		return StatusAvailable, true
	case requiredHits > 0 || optionalHits > 0:
		return StatusIncomplete, true
	default:
		return "", false
	}
}
