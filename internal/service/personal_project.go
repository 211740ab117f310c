package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/repository"
)

type PersonalProjectService struct {
	repo repository.PersonalProjectRepository
}

func NewPersonalProjectService(repo repository.PersonalProjectRepository) *PersonalProjectService {
	return &PersonalProjectService{repo: repo}
}

func (s *PersonalProjectService) List(ctx context.Context) ([]model.PersonalProject, error) {
	return s.repo.List(ctx)
}

func (s *PersonalProjectService) Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error) {
	project.Skills = model.NormalizeSkills(project.Skills)
	return s.repo.Create(ctx, project)
}
