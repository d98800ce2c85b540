// Package cache keeps an in-memory, read-mostly copy of project records
// keyed by secret, so the hot upload path never touches the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/server/models"
	"github.com/dmitrijs2005/scindn/internal/server/repositories/projects"
)

// Entry is a cached project together with its pre-parsed origin list, so the
// JSON column is not reparsed on every request.
type Entry struct {
	Project       *models.Project
	ParsedOrigins []string
}

// ProjectCache is safe for concurrent use. It is an accelerator only: the
// relational store stays authoritative.
type ProjectCache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

func NewProjectCache() *ProjectCache {
	return &ProjectCache{entries: make(map[string]*Entry)}
}

// Load warms the cache with every project in the store. Lookups racing
// Load at startup may miss not-yet-loaded projects and fail as not-found;
// project creation inserts into the cache directly, so fresh projects are
// always visible.
func (c *ProjectCache) Load(ctx context.Context, repo projects.Repository) error {
	all, err := repo.SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	for _, p := range all {
		if err := c.Put(p); err != nil {
			return fmt.Errorf("failed to cache project %s: %w", p.UUID, err)
		}
	}
	return nil
}

// Get returns the cache entry for the given secret, or common.ErrorNotFound.
func (c *ProjectCache) Get(secret string) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[secret]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return entry, nil
}

// Put parses the project's origin list and inserts (or replaces) its entry.
func (c *ProjectCache) Put(project *models.Project) error {
	var origins []string
	if err := json.Unmarshal([]byte(project.JSOrigins), &origins); err != nil {
		return fmt.Errorf("failed to parse origins: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[project.Secret] = &Entry{Project: project, ParsedOrigins: origins}
	return nil
}

// Len reports the number of cached projects.
func (c *ProjectCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
