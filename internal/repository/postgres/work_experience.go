package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewWorkExperienceRepository(pool *pgxpool.Pool) *WorkExperienceRepository {
	return &WorkExperienceRepository{pool: pool}
}

const workExperienceColumns = `id::text, company, position, description, skills, start_date, end_date`

func scanWorkExperience(row scanner) (model.WorkExperience, error) {
	var (
		exp       model.WorkExperience
		skills    []string
		startDate time.Time
		endDate   *time.Time
	)

	if err := row.Scan(&exp.ID, &exp.Company, &exp.Position, &exp.Description, &skills, &startDate, &endDate); err != nil {
		return model.WorkExperience{}, err
	}

	exp.Skills = model.NormalizeSkills(skills)
	exp.StartDate = model.DateOf(startDate)
	if endDate != nil {
		end := model.DateOf(*endDate)
		exp.EndDate = &end
	}
	return exp, nil
}

func (r *WorkExperienceRepository) List(ctx context.Context) ([]model.WorkExperience, error) {
	experience, err := listAll(ctx, r.pool, scanWorkExperience,
		`SELECT `+workExperienceColumns+` FROM work_experience ORDER BY start_date DESC, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list work experience: %w", err)
	}
	return experience, nil
}

func (r *WorkExperienceRepository) Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error) {
	stmt := `
		INSERT INTO work_experience (company, position, description, skills, start_date, end_date)
		VALUES (@company, @position, @description, @skills, @start_date, @end_date)
		RETURNING ` + workExperienceColumns

	var endDate *time.Time
	if exp.EndDate != nil {
		endDate = &exp.EndDate.Time
	}

	created, err := insertReturning(ctx, r.pool, scanWorkExperience, stmt, pgx.NamedArgs{
		"company":     exp.Company,
		"position":    exp.Position,
		"description": exp.Description,
		"skills":      skillsArg(exp.Skills),
		"start_date":  exp.StartDate.Time,
		"end_date":    endDate,
	})
	if err != nil {
		return model.WorkExperience{}, fmt.Errorf("failed to create work experience: %w", err)
	}
	return created, nil
}

// skillsArg maps an empty list to a SQL NULL text[].
func skillsArg(skills model.Skills) []string {
	if len(skills) == 0 {
		return nil
	}
	return []string(skills)
}
