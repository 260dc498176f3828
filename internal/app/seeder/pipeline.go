package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"registry", "profiles", "locations", "textbooks"}

// PhaseResult holds statistics from a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates demo seeding. Every row gets an id derived from the
// school domain and a natural key, so a second run skips what exists.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	results map[string]PhaseResult

	ns       uuid.UUID
	school   *domain.School
	students []studentRecord
	books    []bookRecord
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repos:   repos,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
		ns:      uuid.NewSHA1(uuid.NameSpaceDNS, []byte(strings.ToLower(cfg.SchoolDomain))),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if p.cfg.SchoolDomain == "" {
		return errors.New("school domain is required")
	}

	// Step 1: Parse embedded data.
	var err error
	if p.students, err = parseStudents(strings.NewReader(studentsCSV)); err != nil {
		return err
	}
	if p.cfg.MaxStudents > 0 && len(p.students) > p.cfg.MaxStudents {
		p.students = p.students[:p.cfg.MaxStudents]
	}
	if p.books, err = parseTextbooks(strings.NewReader(textbooksCSV)); err != nil {
		return err
	}

	// Step 2: Register the school.
	if err := p.upsertSchool(ctx); err != nil {
		return fmt.Errorf("upsert school: %w", err)
	}

	// Step 3: Determine which phases to run.
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	// Step 4: Execute phases in order.
	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "registry":
			result = p.runRegistry(ctx)
		case "profiles":
			result = p.runProfiles(ctx)
		case "locations":
			result = p.runLocations(ctx)
		case "textbooks":
			result = p.runTextbooks(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed",
		slog.String("school", p.school.Domain),
		slog.Int("phases_run", len(toRun)),
	)
	return nil
}

func (p *Pipeline) id(kind, key string) uuid.UUID {
	return uuid.NewSHA1(p.ns, []byte(kind+":"+strings.ToLower(key)))
}

func (p *Pipeline) upsertSchool(ctx context.Context) error {
	s := &domain.School{
		ID:        p.id("school", p.cfg.SchoolDomain),
		Name:      p.cfg.SchoolName,
		Domain:    strings.ToLower(p.cfg.SchoolDomain),
		CreatedAt: time.Now().UTC(),
	}
	if p.cfg.DryRun {
		p.school = s
		return nil
	}

	stored, err := p.repos.Schools.Upsert(ctx, s)
	if err != nil {
		return err
	}
	p.school = stored
	return nil
}

func (p *Pipeline) runRegistry(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.students)}
	}

	now := time.Now().UTC()
	entries := make([]domain.RegistryStudent, len(p.students))
	for i, s := range p.students {
		entries[i] = domain.RegistryStudent{
			ID:           p.id("registry", s.StudentIDNum),
			SchoolID:     p.school.ID,
			StudentIDNum: s.StudentIDNum,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Email:        s.Email,
			IsActive:     true,
			CreatedAt:    now,
		}
	}

	inserted, err := batchProcess(entries, p.cfg.BatchSize, func(batch []domain.RegistryStudent) (int, error) {
		return p.repos.Registry.BulkInsert(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: fmt.Errorf("insert registry: %w", err)}
	}
	return PhaseResult{Inserted: inserted, Skipped: len(entries) - inserted}
}

func (p *Pipeline) runProfiles(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.students)}
	}

	var result PhaseResult
	now := time.Now().UTC()
	for _, s := range p.students {
		prof := &domain.Profile{
			ID:        p.id("profile", s.Email),
			Email:     s.Email,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			SchoolID:  p.school.ID,
			CreatedAt: now,
		}
		p.tally(&result, "profile", s.Email, p.repos.Profiles.CreateProfile(ctx, prof))
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}
	}

	if admin := strings.ToLower(strings.TrimSpace(p.cfg.AdminEmail)); admin != "" {
		if err := p.repos.Profiles.SetRole(ctx, p.id("profile", admin), domain.UserRoleAdmin); err != nil {
			result.Err = fmt.Errorf("grant admin to %s: %w", admin, err)
		}
	}
	return result
}

func (p *Pipeline) runLocations(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.cfg.Locations)}
	}

	var result PhaseResult
	now := time.Now().UTC()
	for _, name := range p.cfg.Locations {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		loc := &domain.Location{
			ID:        p.id("location", name),
			SchoolID:  p.school.ID,
			Name:      name,
			CreatedAt: now,
		}
		p.tally(&result, "location", name, p.repos.Locations.Create(ctx, loc))
	}
	return result
}

// runTextbooks lists one book per student, cycling through the sample shelf.
func (p *Pipeline) runTextbooks(ctx context.Context) PhaseResult {
	if p.cfg.DryRun || len(p.books) == 0 {
		return PhaseResult{Skipped: len(p.students)}
	}

	var result PhaseResult
	now := time.Now().UTC()
	for i, s := range p.students {
		b := p.books[i%len(p.books)]
		tb := &domain.Textbook{
			ID:        p.id("textbook", s.Email),
			OwnerID:   p.id("profile", s.Email),
			SchoolID:  &p.school.ID,
			Title:     b.Title,
			Author:    optional(b.Author),
			ISBN:      optional(b.ISBN),
			Edition:   optional(b.Edition),
			Condition: &b.Condition,
			Status:    domain.TextbookStatusAvailable,
			CreatedAt: now,
		}
		_, err := p.repos.Textbooks.Create(ctx, tb)
		p.tally(&result, "textbook", s.Email, err)
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}
	}
	return result
}

// tally records the outcome of a single insert. Rows that already exist
// count as skipped.
func (p *Pipeline) tally(result *PhaseResult, entity, key string, err error) {
	switch {
	case err == nil:
		result.Inserted++
	case errors.Is(err, domain.ErrAlreadyExists):
		result.Skipped++
	default:
		result.Errors++
		p.log.Warn("seed row failed",
			slog.String("entity", entity),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
