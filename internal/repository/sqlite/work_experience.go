package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

type WorkExperienceRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewWorkExperienceRepository(db *sql.DB) *WorkExperienceRepository {
	return &WorkExperienceRepository{db: db, now: time.Now}
}

const workExperienceColumns = `id, company, position, description, skills, start_date, end_date`

func scanWorkExperience(row scanner) (model.WorkExperience, error) {
	var (
		exp       model.WorkExperience
		skills    sql.NullString
		startDate string
		endDate   sql.NullString
	)

	if err := row.Scan(&exp.ID, &exp.Company, &exp.Position, &exp.Description, &skills, &startDate, &endDate); err != nil {
		return model.WorkExperience{}, err
	}

	var err error
	if exp.Skills, err = decodeSkills(skills); err != nil {
		return model.WorkExperience{}, err
	}
	if exp.StartDate, err = model.ParseDate(startDate); err != nil {
		return model.WorkExperience{}, err
	}
	if endDate.Valid {
		end, err := model.ParseDate(endDate.String)
		if err != nil {
			return model.WorkExperience{}, err
		}
		exp.EndDate = &end
	}
	return exp, nil
}

func (r *WorkExperienceRepository) List(ctx context.Context) ([]model.WorkExperience, error) {
	experience, err := listAll(ctx, r.db, scanWorkExperience,
		`SELECT `+workExperienceColumns+` FROM work_experience ORDER BY start_date DESC, created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}
	return experience, nil
}

func (r *WorkExperienceRepository) Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error) {
	skills, err := encodeSkills(exp.Skills)
	if err != nil {
		return model.WorkExperience{}, fmt.Errorf("failed to encode skills: %w", err)
	}

	var endDate sql.NullString
	if exp.EndDate != nil {
		endDate = sql.NullString{String: exp.EndDate.String(), Valid: true}
	}

	stmt := `
		INSERT INTO work_experience (id, company, position, description, skills, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + workExperienceColumns

	created, err := insertReturning(ctx, r.db, scanWorkExperience, stmt,
		uuid.New().String(),
		exp.Company,
		exp.Position,
		exp.Description,
		skills,
		exp.StartDate.String(),
		endDate,
		formatTimestamp(r.now()),
	)
	if err != nil {
		return model.WorkExperience{}, fmt.Errorf("failed to create work experience: %w", err)
	}
	return created, nil
}
