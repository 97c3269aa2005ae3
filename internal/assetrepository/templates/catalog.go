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

// Package templates provides the submodel template catalog. Templates are
// fully materialized submodels (kind=Template) used as blueprints for
// instantiation.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/eclipse-basyx/dpp-go-components/internal/common"
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// TemplateInfo describes one catalog entry.
type TemplateInfo struct {
	TemplateID  string `json:"templateId"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	IdShort     string `json:"idShort,omitempty"`
	Description string `json:"description,omitempty"`
}

// Catalog provides template discovery and loading. Load returns a fresh
// deep copy on every call so callers are free to mutate the result.
type Catalog interface {
	List() []TemplateInfo
	Load(templateID string) (*model.Submodel, error)
}

// DirectoryCatalog reads templates from <dir>/<category>/*.json files.
// Each file holds one serialized submodel; the template id is the
// submodel's identifier. The directory is scanned once at construction.
type DirectoryCatalog struct {
	infos map[string]TemplateInfo
	paths map[string]string
	order []string

	mu    sync.Mutex
	cache map[string]*model.Submodel
}

// NewDirectoryCatalog scans dir and builds the catalog index. Files that
// do not parse as submodels are skipped with an error returned alongside
// the catalog only if nothing could be read at all.
func NewDirectoryCatalog(dir string) (*DirectoryCatalog, error) {
	catalog := &DirectoryCatalog{
		infos: make(map[string]TemplateInfo),
		paths: make(map[string]string),
		cache: make(map[string]*model.Submodel),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read template directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		category := entry.Name()
		files, err := os.ReadDir(filepath.Join(dir, category))
		if err != nil {
			return nil, fmt.Errorf("read template category %s: %w", category, err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			path := filepath.Join(dir, category, file.Name())
			if err := catalog.index(path, category); err != nil {
				return nil, fmt.Errorf("index template %s: %w", path, err)
			}
		}
	}

	sort.Strings(catalog.order)
	return catalog, nil
}

func (c *DirectoryCatalog) index(path string, category string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sm, err := model.UnmarshalSubmodelJSON(data)
	if err != nil {
		return err
	}
	if sm.ID == "" {
		return fmt.Errorf("template has no identifier")
	}

	info := TemplateInfo{
		TemplateID: sm.ID,
		Name:       templateName(sm),
		Category:   category,
		IdShort:    sm.IdShort,
	}
	if len(sm.Description) > 0 {
		info.Description = sm.Description[0].Text
	}

	c.infos[sm.ID] = info
	c.paths[sm.ID] = path
	c.order = append(c.order, sm.ID)
	return nil
}

// List returns all catalog entries ordered by template id.
func (c *DirectoryCatalog) List() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(c.order))
	for _, id := range c.order {
		infos = append(infos, c.infos[id])
	}
	return infos
}

// Load parses the template file for the given id and returns a deep copy.
func (c *DirectoryCatalog) Load(templateID string) (*model.Submodel, error) {
	path, ok := c.paths[templateID]
	if !ok {
		return nil, common.NewErrNotFound(templateID)
	}

	c.mu.Lock()
	cached, ok := c.cache[templateID]
	c.mu.Unlock()
	if ok {
		return model.DeepCopySubmodel(cached)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", templateID, err)
	}
	sm, err := model.UnmarshalSubmodelJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", templateID, err)
	}

	c.mu.Lock()
	c.cache[templateID] = sm
	c.mu.Unlock()
	return model.DeepCopySubmodel(sm)
}

func templateName(sm *model.Submodel) string {
	for _, name := range sm.DisplayName {
		if name.Language == "en" && name.Text != "" {
			return name.Text
		}
	}
	if len(sm.DisplayName) > 0 && sm.DisplayName[0].Text != "" {
		return sm.DisplayName[0].Text
	}
	return sm.IdShort
}

// InMemoryCatalog holds templates directly in memory. Used in tests and
// for programmatically seeded catalogs.
type InMemoryCatalog struct {
	templates map[string]*model.Submodel
	order     []string
}

// NewInMemoryCatalog creates an empty catalog.
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{templates: make(map[string]*model.Submodel)}
}

// Add registers a template under its submodel identifier.
func (c *InMemoryCatalog) Add(sm *model.Submodel) {
	if _, ok := c.templates[sm.ID]; !ok {
		c.order = append(c.order, sm.ID)
	}
	c.templates[sm.ID] = sm
}

// List returns all catalog entries in insertion order.
func (c *InMemoryCatalog) List() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(c.order))
	for _, id := range c.order {
		sm := c.templates[id]
		infos = append(infos, TemplateInfo{
			TemplateID: sm.ID,
			Name:       templateName(sm),
			IdShort:    sm.IdShort,
		})
	}
	return infos
}

// Load returns a deep copy of the registered template.
func (c *InMemoryCatalog) Load(templateID string) (*model.Submodel, error) {
	sm, ok := c.templates[templateID]
	if !ok {
		return nil, common.NewErrNotFound(templateID)
	}
	return model.DeepCopySubmodel(sm)
}
