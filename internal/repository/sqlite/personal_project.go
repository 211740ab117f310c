package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

type PersonalProjectRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewPersonalProjectRepository(db *sql.DB) *PersonalProjectRepository {
	return &PersonalProjectRepository{db: db, now: time.Now}
}

const personalProjectColumns = `id, name, description, skills, url`

func scanPersonalProject(row scanner) (model.PersonalProject, error) {
	var (
		project model.PersonalProject
		skills  sql.NullString
		url     sql.NullString
	)

	if err := row.Scan(&project.ID, &project.Name, &project.Description, &skills, &url); err != nil {
		return model.PersonalProject{}, err
	}

	var err error
	if project.Skills, err = decodeSkills(skills); err != nil {
		return model.PersonalProject{}, err
	}
	if url.Valid {
		project.URL = &url.String
	}
	return project, nil
}

func (r *PersonalProjectRepository) List(ctx context.Context) ([]model.PersonalProject, error) {
	projects, err := listAll(ctx, r.db, scanPersonalProject,
		`SELECT `+personalProjectColumns+` FROM personal_projects ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal projects: %w", err)
	}
	return projects, nil
}

func (r *PersonalProjectRepository) Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error) {
	skills, err := encodeSkills(project.Skills)
	if err != nil {
		return model.PersonalProject{}, fmt.Errorf("failed to encode skills: %w", err)
	}

	stmt := `
		INSERT INTO personal_projects (id, name, description, skills, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + personalProjectColumns

	created, err := insertReturning(ctx, r.db, scanPersonalProject, stmt,
		uuid.New().String(),
		project.Name,
		project.Description,
		skills,
		nullableString(project.URL),
		formatTimestamp(r.now()),
	)
	if err != nil {
		return model.PersonalProject{}, fmt.Errorf("failed to create personal project: %w", err)
	}
	return created, nil
}
