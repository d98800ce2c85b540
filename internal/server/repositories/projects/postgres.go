package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/dbx"
	"github.com/dmitrijs2005/scindn/internal/server/models"
)

// PostgresRepository implements project storage over a *sql.DB; writes run
// inside a transaction via dbx.WithTx.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository constructs a repository bound to the given database.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new project row. Exactly one row must be affected; the
// insert is rolled back otherwise.
func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (uuid, owner_uuid, name, client_id, secret, js_origins)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query,
			project.UUID, project.OwnerUUID, project.Name, project.ClientID, project.Secret, project.JSOrigins)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected error: %w", err)
		}
		if n != 1 {
			return fmt.Errorf("unexpected rows affected: %d", n)
		}
		return nil
	})
}

// GetBySecret returns the project row for the given secret.
func (r *PostgresRepository) GetBySecret(ctx context.Context, secret string) (*models.Project, error) {
	query := `SELECT uuid, owner_uuid, name, client_id, secret, js_origins FROM projects
		WHERE secret=$1
	`

	result := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, secret).
		Scan(&result.UUID, &result.OwnerUUID, &result.Name, &result.ClientID, &result.Secret, &result.JSOrigins)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select project: %w", err)
	}
	return result, nil
}

// SelectAll returns every project row.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Project, error) {
	query := `SELECT uuid, owner_uuid, name, client_id, secret, js_origins FROM projects`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		var item models.Project
		if err := rows.Scan(&item.UUID, &item.OwnerUUID, &item.Name, &item.ClientID, &item.Secret, &item.JSOrigins); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
