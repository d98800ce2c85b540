// Package db wires the relational store: it opens the connection, runs the
// embedded migrations and hands out repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/scindn/internal/server/repositories/projects"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Projects() projects.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
