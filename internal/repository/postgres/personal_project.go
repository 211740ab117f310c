package postgres

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonalProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPersonalProjectRepository(pool *pgxpool.Pool) *PersonalProjectRepository {
	return &PersonalProjectRepository{pool: pool}
}

const personalProjectColumns = `id::text, name, description, skills, url`

func scanPersonalProject(row scanner) (model.PersonalProject, error) {
	var (
		project model.PersonalProject
		skills  []string
	)

	if err := row.Scan(&project.ID, &project.Name, &project.Description, &skills, &project.URL); err != nil {
		return model.PersonalProject{}, err
	}

	project.Skills = model.NormalizeSkills(skills)
	return project, nil
}

func (r *PersonalProjectRepository) List(ctx context.Context) ([]model.PersonalProject, error) {
	projects, err := listAll(ctx, r.pool, scanPersonalProject,
		`SELECT `+personalProjectColumns+` FROM personal_projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal projects: %w", err)
	}
	return projects, nil
}

func (r *PersonalProjectRepository) Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error) {
	stmt := `
		INSERT INTO personal_projects (name, description, skills, url)
		VALUES (@name, @description, @skills, @url)
		RETURNING ` + personalProjectColumns

	created, err := insertReturning(ctx, r.pool, scanPersonalProject, stmt, pgx.NamedArgs{
		"name":        project.Name,
		"description": project.Description,
		"skills":      skillsArg(project.Skills),
		"url":         project.URL,
	})
	if err != nil {
		return model.PersonalProject{}, fmt.Errorf("failed to create personal project: %w", err)
	}
	return created, nil
}
