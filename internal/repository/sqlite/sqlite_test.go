package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/database"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(config.DatabaseConfig{SQLitePath: filepath.Join(t.TempDir(), "portfolio.db")})
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestListOnEmptyTables(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	messages, err := NewFormMessageRepository(db).List(ctx)
	if err != nil || messages == nil || len(messages) != 0 {
		t.Fatalf("form messages = %#v, %v", messages, err)
	}
	experience, err := NewWorkExperienceRepository(db).List(ctx)
	if err != nil || experience == nil || len(experience) != 0 {
		t.Fatalf("work experience = %#v, %v", experience, err)
	}
	projects, err := NewPersonalProjectRepository(db).List(ctx)
	if err != nil || projects == nil || len(projects) != 0 {
		t.Fatalf("personal projects = %#v, %v", projects, err)
	}
}

func TestFormMessageCreateAndList(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewFormMessageRepository(db)

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	second, err := repo.Create(ctx, model.FormMessage{Name: "Bo", Email: "bo@example.com", Message: "later", CreatedAt: base.Add(time.Second)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	first, err := repo.Create(ctx, model.FormMessage{Name: "Al", Email: "al@example.com", Message: "earlier", CreatedAt: base.Add(500 * time.Millisecond)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("ids should be unique and non-empty: %q %q", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(base.Add(500 * time.Millisecond)) {
		t.Fatalf("created_at = %v", first.CreatedAt)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("List should order by created_at: %#v", all)
	}
}

func TestWorkExperienceRoundTrip(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewWorkExperienceRepository(db)

	end := model.NewDate(2021, time.December, 31)
	older, err := repo.Create(ctx, model.WorkExperience{
		Company: "Acme", Position: "Engineer", Description: "built things",
		Skills: model.Skills{"Go", "Postgres"}, StartDate: model.NewDate(2019, time.March, 4), EndDate: &end,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	newer, err := repo.Create(ctx, model.WorkExperience{
		Company: "Initech", Position: "Lead", Description: "leads", StartDate: model.NewDate(2022, time.January, 10),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if newer.EndDate != nil || newer.Skills != nil {
		t.Fatalf("nullable fields should round-trip as nil: %#v", newer)
	}
	if older.EndDate == nil || older.EndDate.String() != "2021-12-31" {
		t.Fatalf("end_date = %v", older.EndDate)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != newer.ID || all[1].ID != older.ID {
		t.Fatalf("List should order by start_date desc: %#v", all)
	}
	if got := all[1].Skills; len(got) != 2 || got[0] != "Go" || got[1] != "Postgres" {
		t.Fatalf("skills = %#v", got)
	}
	if all[1].StartDate.String() != "2019-03-04" {
		t.Fatalf("start_date = %s", all[1].StartDate)
	}
}

func TestPersonalProjectRoundTrip(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPersonalProjectRepository(db)

	url := "https://github.com/example/site"
	withURL, err := repo.Create(ctx, model.PersonalProject{Name: "site", Description: "d", Skills: model.Skills{"Go"}, URL: &url})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	bare, err := repo.Create(ctx, model.PersonalProject{Name: "cli", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if withURL.URL == nil || *withURL.URL != url {
		t.Fatalf("url = %v", withURL.URL)
	}
	if bare.URL != nil || bare.Skills != nil {
		t.Fatalf("nullable fields should be nil: %#v", bare)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != withURL.ID || all[1].ID != bare.ID {
		t.Fatalf("List should keep insertion order: %#v", all)
	}
}

func TestCreateRollsBackOnConstraintFailure(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewWorkExperienceRepository(db)

	_, err := repo.Create(ctx, model.WorkExperience{
		Company: strings.Repeat("x", 256), Position: "p", Description: "d", StartDate: model.NewDate(2020, time.January, 1),
	})
	if err == nil {
		t.Fatalf("expected a constraint error")
	}
	if got := sqlerr.ErrCode(err); got != sqlerr.CheckViolation {
		t.Fatalf("ErrCode = %q, want %q (%v)", got, sqlerr.CheckViolation, err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("failed insert left %d rows", len(all))
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	got, err := parseTimestamp(formatTimestamp(want))
	if err != nil {
		t.Fatalf("parseTimestamp: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("parseTimestamp = %v, want %v", got, want)
	}

	if _, err := parseTimestamp("yesterday"); err == nil {
		t.Fatalf("expected an error for garbage input")
	}
}
