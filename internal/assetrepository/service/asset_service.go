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

// Package service implements the asset repository operations: instantiating
// assets from templates, assembling resolved aggregates, attaching and
// detaching submodels, and path-addressed element updates.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/logger"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence"
	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/templates"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// Aggregate is a shell with all submodel references resolved into embedded
// bodies. References to submodels that no longer exist stay in Unresolved;
// partial resolution degrades gracefully instead of failing the read.
type Aggregate struct {
	Shell      *model.AssetAdministrationShell `json:"shell"`
	Submodels  []*model.Submodel               `json:"submodels"`
	Unresolved []string                        `json:"unresolved,omitempty"`
}

// SubmodelByTemplateID returns the first resolved submodel instantiated
// from the given template, or nil.
func (a *Aggregate) SubmodelByTemplateID(templateID string) *model.Submodel {
	for _, sm := range a.Submodels {
		if sm.TemplateID() == templateID {
			return sm
		}
	}
	return nil
}

// AssetMetadata carries the caller-supplied metadata for instantiation and
// metadata updates. Nil fields are left untouched on update.
type AssetMetadata struct {
	GlobalAssetID *string `json:"globalAssetId,omitempty"`
	DisplayName   *string `json:"displayName,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// UpdateResult is the outcome of a batch element update. Skipped paths did
// not resolve to any node and were dropped; they are surfaced so callers
// can detect stale UI state instead of silently losing intent.
type UpdateResult struct {
	Submodel     *model.Submodel `json:"submodel"`
	UpdatedPaths []string        `json:"updatedPaths"`
	SkippedPaths []string        `json:"skippedPaths,omitempty"`
}

// AssetService implements the asset repository operations on top of an
// asset database and a template catalog.
type AssetService struct {
	db      persistence.AssetDatabase
	catalog templates.Catalog
}

// NewAssetService creates the service.
func NewAssetService(db persistence.AssetDatabase, catalog templates.Catalog) *AssetService {
	return &AssetService{db: db, catalog: catalog}
}

// ListTemplates returns the template catalog entries.
func (s *AssetService) ListTemplates() []templates.TemplateInfo {
	return s.catalog.List()
}

// CreateAssetFromTemplates instantiates a new asset: a fresh shell plus one
// submodel instance per selected template, persisted and returned as a
// resolved aggregate.
func (s *AssetService) CreateAssetFromTemplates(ctx context.Context, templateIDs []string, metadata AssetMetadata) (*Aggregate, error) {
	globalAssetID := "urn:default:global"
	if metadata.GlobalAssetID != nil && *metadata.GlobalAssetID != "" {
		globalAssetID = *metadata.GlobalAssetID
	}

	shell := model.NewAssetAdministrationShell(newIdentifier(), globalAssetID)
	if metadata.DisplayName != nil {
		shell.DisplayName = model.SingleLangName(*metadata.DisplayName)
	}
	if metadata.Description != nil {
		shell.Description = model.SingleLangText(*metadata.Description)
	}

	instances := make([]*model.Submodel, 0, len(templateIDs))
	for _, templateID := range templateIDs {
		template, err := s.catalog.Load(templateID)
		if err != nil {
			if common.IsErrNotFound(err) {
				return nil, common.NewErrBadRequest(fmt.Sprintf("template with id '%s' not found", templateID))
			}
			return nil, err
		}
		instance := instantiateSubmodel(template)
		instances = append(instances, instance)
		shell.Submodels = append(shell.Submodels, model.NewSubmodelReference(instance.ID))
	}

	for _, instance := range instances {
		if err := s.putSubmodel(ctx, instance); err != nil {
			return nil, err
		}
	}
	if err := s.putShell(ctx, shell); err != nil {
		return nil, err
	}

	return s.assemble(ctx, shell)
}

// instantiateSubmodel turns a template into a fresh instance: new
// identifier, kind Instance, template lineage recorded in administration.
func instantiateSubmodel(template *model.Submodel) *model.Submodel {
	if template.Administration == nil {
		template.Administration = &model.AdministrativeInformation{}
	}
	template.Administration.TemplateID = template.ID
	template.ID = newIdentifier()
	template.Kind = model.KindInstance
	return template
}

func newIdentifier() string {
	return "urn:uuid:" + uuid.NewString()
}

// ListAssets returns all stored shells without resolving submodels.
func (s *AssetService) ListAssets(ctx context.Context) ([]*model.AssetAdministrationShell, error) {
	records, err := s.db.ListShells(ctx)
	if err != nil {
		return nil, err
	}
	shells := make([]*model.AssetAdministrationShell, 0, len(records))
	for _, record := range records {
		shell, err := model.UnmarshalShellJSON(record.Data)
		if err != nil {
			logger.LogError("deserializing shell "+record.ID, err)
			continue
		}
		shells = append(shells, shell)
	}
	return shells, nil
}

// GetAsset loads a shell and resolves its submodel references into an
// aggregate.
func (s *AssetService) GetAsset(ctx context.Context, id string) (*Aggregate, error) {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, shell)
}

// UpdateAssetMetadata applies a partial metadata update to a shell and
// returns the re-assembled aggregate.
func (s *AssetService) UpdateAssetMetadata(ctx context.Context, id string, metadata AssetMetadata) (*Aggregate, error) {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return nil, err
	}

	if metadata.GlobalAssetID != nil {
		shell.AssetInformation.GlobalAssetID = *metadata.GlobalAssetID
	}
	if metadata.DisplayName != nil {
		shell.DisplayName = model.SingleLangName(*metadata.DisplayName)
	}
	if metadata.Description != nil {
		shell.Description = model.SingleLangText(*metadata.Description)
	}

	if err := s.putShell(ctx, shell); err != nil {
		return nil, err
	}
	return s.assemble(ctx, shell)
}

// AttachSubmodels instantiates the given templates and attaches them to an
// existing asset.
func (s *AssetService) AttachSubmodels(ctx context.Context, id string, templateIDs []string) (*Aggregate, error) {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return nil, err
	}

	instances := make([]*model.Submodel, 0, len(templateIDs))
	for _, templateID := range templateIDs {
		template, err := s.catalog.Load(templateID)
		if err != nil {
			if common.IsErrNotFound(err) {
				return nil, common.NewErrBadRequest(fmt.Sprintf("template with id '%s' not found", templateID))
			}
			return nil, err
		}
		instance := instantiateSubmodel(template)
		instances = append(instances, instance)
		shell.Submodels = append(shell.Submodels, model.NewSubmodelReference(instance.ID))
	}

	for _, instance := range instances {
		if err := s.putSubmodel(ctx, instance); err != nil {
			return nil, err
		}
	}
	if err := s.putShell(ctx, shell); err != nil {
		return nil, err
	}
	return s.assemble(ctx, shell)
}

// DetachSubmodel removes a submodel reference from the shell and deletes
// the stored submodel.
func (s *AssetService) DetachSubmodel(ctx context.Context, id string, submodelID string) (*Aggregate, error) {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return nil, err
	}

	if !shell.RemoveSubmodelReference(submodelID) {
		return nil, common.NewErrNotFound(fmt.Sprintf("submodel '%s' is not part of asset '%s'", submodelID, id))
	}

	if err := s.db.DeleteSubmodel(ctx, submodelID); err != nil && !common.IsErrNotFound(err) {
		return nil, err
	}
	if err := s.putShell(ctx, shell); err != nil {
		return nil, err
	}
	return s.assemble(ctx, shell)
}

// DeleteAsset deletes a shell and cascades to all referenced submodels.
func (s *AssetService) DeleteAsset(ctx context.Context, id string) error {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return err
	}

	for _, ref := range shell.Submodels {
		submodelID := ref.FirstKeyValue()
		if submodelID == "" {
			continue
		}
		if err := s.db.DeleteSubmodel(ctx, submodelID); err != nil && !common.IsErrNotFound(err) {
			return err
		}
	}
	return s.db.DeleteShell(ctx, id)
}

// UpdateSubmodelElements applies a batch of path-addressed value updates to
// one submodel of an asset. The whole batch is applied in memory first; the
// mutated submodel is persisted only when at least one path resolved. Paths
// that resolve to nothing are skipped and reported, not failed.
func (s *AssetService) UpdateSubmodelElements(ctx context.Context, id string, submodelID string, updates map[string]any) (*UpdateResult, error) {
	shell, err := s.getShell(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shell.HasSubmodelReference(submodelID) {
		return nil, common.NewErrNotFound(fmt.Sprintf("submodel '%s' is not part of asset '%s'", submodelID, id))
	}

	record, err := s.db.GetSubmodel(ctx, submodelID)
	if err != nil {
		return nil, err
	}
	submodel, err := model.UnmarshalSubmodelJSON(record.Data)
	if err != nil {
		return nil, fmt.Errorf("deserialize submodel %s: %w", submodelID, err)
	}

	index := newPathIndex(submodel)
	result := &UpdateResult{Submodel: submodel}

	for path, value := range updates {
		element, canonicalPath, ok := index.Resolve(path)
		if !ok {
			logger.LogWarning("update path did not resolve: " + path)
			result.SkippedPaths = append(result.SkippedPaths, path)
			continue
		}

		applied, err := applyElementUpdate(element, value)
		if err != nil {
			return nil, common.NewErrBadRequest(fmt.Sprintf("failed to update value at %s: %v", path, err))
		}
		if !applied {
			result.SkippedPaths = append(result.SkippedPaths, path)
			continue
		}
		result.UpdatedPaths = append(result.UpdatedPaths, canonicalPath)
	}

	if len(result.UpdatedPaths) > 0 {
		if err := s.putSubmodel(ctx, submodel); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// assemble resolves the shell's submodel references. Missing submodels end
// up in Unresolved with a warning; the aggregate is still produced.
func (s *AssetService) assemble(ctx context.Context, shell *model.AssetAdministrationShell) (*Aggregate, error) {
	aggregate := &Aggregate{Shell: shell, Submodels: make([]*model.Submodel, 0, len(shell.Submodels))}

	for _, ref := range shell.Submodels {
		submodelID := ref.FirstKeyValue()
		if submodelID == "" {
			continue
		}
		record, err := s.db.GetSubmodel(ctx, submodelID)
		if err != nil {
			if common.IsErrNotFound(err) {
				logger.LogWarning("referenced submodel missing during assembly: " + submodelID)
				aggregate.Unresolved = append(aggregate.Unresolved, submodelID)
				continue
			}
			return nil, err
		}
		submodel, err := model.UnmarshalSubmodelJSON(record.Data)
		if err != nil {
			logger.LogError("deserializing submodel "+submodelID, err)
			aggregate.Unresolved = append(aggregate.Unresolved, submodelID)
			continue
		}
		aggregate.Submodels = append(aggregate.Submodels, submodel)
	}
	return aggregate, nil
}

func (s *AssetService) getShell(ctx context.Context, id string) (*model.AssetAdministrationShell, error) {
	record, err := s.db.GetShell(ctx, id)
	if err != nil {
		return nil, err
	}
	shell, err := model.UnmarshalShellJSON(record.Data)
	if err != nil {
		return nil, fmt.Errorf("deserialize shell %s: %w", id, err)
	}
	return shell, nil
}

func (s *AssetService) putShell(ctx context.Context, shell *model.AssetAdministrationShell) error {
	data, err := model.MarshalShell(shell)
	if err != nil {
		return fmt.Errorf("serialize shell %s: %w", shell.ID, err)
	}
	return s.db.PutShell(ctx, persistence.Record{ID: shell.ID, Data: data})
}

func (s *AssetService) putSubmodel(ctx context.Context, submodel *model.Submodel) error {
	data, err := model.MarshalSubmodel(submodel)
	if err != nil {
		return fmt.Errorf("serialize submodel %s: %w", submodel.ID, err)
	}
	return s.db.PutSubmodel(ctx, persistence.Record{ID: submodel.ID, Data: data})
}
