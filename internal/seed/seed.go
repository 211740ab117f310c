// Package seed loads work experience and personal projects from a fixture
// directory and creates them through the service layer.
//
// The directory layout is
//
//	<dir>/work_experience/work_experience.json
//	<dir>/personal_project/personal_project.json
//
// Each file holds a JSON array of create payloads. An item may name a
// "description_file" next to the JSON file instead of an inline description.
package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	KindWorkExperience  = "work_experience"
	KindPersonalProject = "personal_project"

	descriptionFileKey = "description_file"
)

type WorkExperienceCreator interface {
	Create(ctx context.Context, exp model.WorkExperience) (model.WorkExperience, error)
}

type PersonalProjectCreator interface {
	Create(ctx context.Context, project model.PersonalProject) (model.PersonalProject, error)
}

// Result counts the records created by a run.
type Result struct {
	WorkExperience   int
	PersonalProjects int
}

type Seeder struct {
	dir              string
	workExperience   WorkExperienceCreator
	personalProjects PersonalProjectCreator
	logger           *zerolog.Logger
}

func New(dir string, workExperience WorkExperienceCreator, personalProjects PersonalProjectCreator, logger *zerolog.Logger) *Seeder {
	return &Seeder{
		dir:              dir,
		workExperience:   workExperience,
		personalProjects: personalProjects,
		logger:           logger,
	}
}

// Run creates every work experience entry, then every personal project.
// Both files are read and validated before anything is written; a create
// failure stops the run and earlier records stay stored.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	experiences, err := load[model.CreateWorkExperiencePayload](s.dir, KindWorkExperience)
	if err != nil {
		return res, err
	}
	projects, err := load[model.CreatePersonalProjectPayload](s.dir, KindPersonalProject)
	if err != nil {
		return res, err
	}

	for i, payload := range experiences {
		s.logger.Info().Int("item", i+1).Int("total", len(experiences)).Msg("creating work experience")
		if _, err := s.workExperience.Create(ctx, payload.WorkExperience()); err != nil {
			return res, errors.Wrapf(err, "create work experience %d", i+1)
		}
		res.WorkExperience++
	}

	for i, payload := range projects {
		s.logger.Info().Int("item", i+1).Int("total", len(projects)).Msg("creating personal project")
		if _, err := s.personalProjects.Create(ctx, payload.PersonalProject()); err != nil {
			return res, errors.Wrapf(err, "create personal project %d", i+1)
		}
		res.PersonalProjects++
	}

	return res, nil
}

// load reads <dir>/<kind>/<kind>.json, inlines description files and
// decodes every item into a validated payload.
func load[T any, P interface {
	*T
	validation.Validatable
}](dir, kind string) ([]T, error) {
	items, err := readItems(dir, kind)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, raw := range items {
		var payload T
		if err := json.Unmarshal(raw, P(&payload)); err != nil {
			return nil, errors.Wrapf(err, "decode %s item %d", kind, i+1)
		}
		if err := P(&payload).Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid %s item %d", kind, i+1)
		}
		out = append(out, payload)
	}
	return out, nil
}

func readItems(dir, kind string) ([]json.RawMessage, error) {
	kindDir := filepath.Join(dir, kind)

	data, err := os.ReadFile(filepath.Join(kindDir, kind+".json"))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s fixtures", kind)
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "parse %s fixtures", kind)
	}

	out := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		if rawName, ok := item[descriptionFileKey]; ok {
			var name string
			if err := json.Unmarshal(rawName, &name); err != nil {
				return nil, errors.Wrapf(err, "%s item %d: %s must be a string", kind, i+1, descriptionFileKey)
			}

			description, err := os.ReadFile(filepath.Join(kindDir, name))
			if err != nil {
				return nil, errors.Wrapf(err, "%s item %d: read description", kind, i+1)
			}

			encoded, err := json.Marshal(string(description))
			if err != nil {
				return nil, errors.WithStack(err)
			}
			item["description"] = encoded
			delete(item, descriptionFileKey)
		}

		raw, err := json.Marshal(item)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out = append(out, raw)
	}
	return out, nil
}
