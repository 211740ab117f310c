// Package repository defines the storage contracts for each record type and
// picks the backend that serves them.
//
// The concrete stores live in subpackages: postgres (pgx pool), sqlite
// (database/sql with modernc.org/sqlite) and memory (tests).
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/repository/memory"
	"github.com/deppfellow/portfolio-backend/internal/repository/postgres"
	"github.com/deppfellow/portfolio-backend/internal/repository/sqlite"
	"github.com/deppfellow/portfolio-backend/internal/server"
)

// FormMessageRepository stores contact form messages.
//
// List never returns a nil slice. Create inserts inside a transaction and
// returns the row as persisted, including its generated id.
type FormMessageRepository interface {
	List(ctx context.Context) ([]model.FormMessage, error)
	Create(ctx context.Context, msg model.FormMessage) (model.FormMessage, error)
}

// WorkExperienceRepository stores work experience entries, newest start first.
type WorkExperienceRepository interface {
	List(ctx context.Context) ([]model.WorkExperience, error)
	Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error)
}

// PersonalProjectRepository stores personal projects in insertion order.
type PersonalProjectRepository interface {
	List(ctx context.Context) ([]model.PersonalProject, error)
	Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	FormMessages     FormMessageRepository
	WorkExperience   WorkExperienceRepository
	PersonalProjects PersonalProjectRepository
}

// NewRepositories wires the repositories to whichever store s.DB opened.
func NewRepositories(s *server.Server) (*Repositories, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	switch s.DB.Driver() {
	case config.DriverPostgres:
		return &Repositories{
			FormMessages:     postgres.NewFormMessageRepository(s.DB.Pool),
			WorkExperience:   postgres.NewWorkExperienceRepository(s.DB.Pool),
			PersonalProjects: postgres.NewPersonalProjectRepository(s.DB.Pool),
		}, nil
	case config.DriverSQLite:
		return &Repositories{
			FormMessages:     sqlite.NewFormMessageRepository(s.DB.SQL),
			WorkExperience:   sqlite.NewWorkExperienceRepository(s.DB.SQL),
			PersonalProjects: sqlite.NewPersonalProjectRepository(s.DB.SQL),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", s.DB.Driver())
	}
}

// NewMemoryRepositories returns process-local repositories with no database.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		FormMessages:     memory.NewFormMessageRepository(),
		WorkExperience:   memory.NewWorkExperienceRepository(),
		PersonalProjects: memory.NewPersonalProjectRepository(),
	}
}
