package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/repository"
)

type WorkExperienceService struct {
	repo repository.WorkExperienceRepository
}

func NewWorkExperienceService(repo repository.WorkExperienceRepository) *WorkExperienceService {
	return &WorkExperienceService{repo: repo}
}

func (s *WorkExperienceService) List(ctx context.Context) ([]model.WorkExperience, error) {
	return s.repo.List(ctx)
}

// Create normalizes skills and stores exp. A nil EndDate stays nil.
func (s *WorkExperienceService) Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error) {
	exp.Skills = model.NormalizeSkills(exp.Skills)
	return s.repo.Create(ctx, exp)
}
