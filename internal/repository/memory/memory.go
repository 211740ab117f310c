// Package memory keeps records in process memory. It backs service and
// handler tests; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

// store is a mutex-guarded append-only slice.
type store[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (s *store[T]) add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *store[T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

type FormMessageRepository struct {
	store store[model.FormMessage]
}

func NewFormMessageRepository() *FormMessageRepository {
	return &FormMessageRepository{}
}

func (r *FormMessageRepository) List(ctx context.Context) ([]model.FormMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := r.store.snapshot()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *FormMessageRepository) Create(ctx context.Context, msg model.FormMessage) (model.FormMessage, error) {
	if err := ctx.Err(); err != nil {
		return model.FormMessage{}, err
	}
	msg.ID = uuid.New().String()
	msg.CreatedAt = msg.CreatedAt.UTC()
	r.store.add(msg)
	return msg, nil
}

type WorkExperienceRepository struct {
	store store[model.WorkExperience]
}

func NewWorkExperienceRepository() *WorkExperienceRepository {
	return &WorkExperienceRepository{}
}

func (r *WorkExperienceRepository) List(ctx context.Context) ([]model.WorkExperience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := r.store.snapshot()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate.After(items[j].StartDate.Time)
	})
	return items, nil
}

func (r *WorkExperienceRepository) Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error) {
	if err := ctx.Err(); err != nil {
		return model.WorkExperience{}, err
	}
	exp.ID = uuid.New().String()
	exp.Skills = cloneSkills(exp.Skills)
	if exp.EndDate != nil {
		end := *exp.EndDate
		exp.EndDate = &end
	}
	r.store.add(exp)
	return exp, nil
}

type PersonalProjectRepository struct {
	store store[model.PersonalProject]
}

func NewPersonalProjectRepository() *PersonalProjectRepository {
	return &PersonalProjectRepository{}
}

func (r *PersonalProjectRepository) List(ctx context.Context) ([]model.PersonalProject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.snapshot(), nil
}

func (r *PersonalProjectRepository) Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error) {
	if err := ctx.Err(); err != nil {
		return model.PersonalProject{}, err
	}
	project.ID = uuid.New().String()
	project.Skills = cloneSkills(project.Skills)
	if project.URL != nil {
		url := *project.URL
		project.URL = &url
	}
	r.store.add(project)
	return project, nil
}

// cloneSkills copies the caller's slice so later mutation cannot reach the
// stored row.
func cloneSkills(skills model.Skills) model.Skills {
	if len(skills) == 0 {
		return nil
	}
	return append(model.Skills(nil), skills...)
}

