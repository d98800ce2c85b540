package projects

import (
	"context"

	"github.com/dmitrijs2005/scindn/internal/server/models"
)

type Repository interface {
	// Create inserts a new project row.
	Create(ctx context.Context, project *models.Project) error
	// GetBySecret returns the project with the given secret, or
	// common.ErrorNotFound.
	GetBySecret(ctx context.Context, secret string) (*models.Project, error)
	// SelectAll returns every registered project; used to warm the cache at
	// startup.
	SelectAll(ctx context.Context) ([]*models.Project, error)
}
