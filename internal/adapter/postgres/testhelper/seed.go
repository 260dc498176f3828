package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Burns17/book-pass-on/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedSchool inserts a school with a unique domain and returns its id.
func SeedSchool(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	suffix := uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO schools (id, name, domain) VALUES ($1, $2, $3)`,
		id, "School "+suffix, suffix+".school.test",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSchool: %v", err)
	}
	return id
}

// SeedProfile creates a student profile in schoolID.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, schoolID uuid.UUID) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Profile{
		ID:        uuid.New(),
		Email:     "student-" + suffix + "@school.test",
		FirstName: "Student",
		LastName:  suffix,
		SchoolID:  schoolID,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, email, first_name, last_name, school_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Email, p.FirstName, p.LastName, p.SchoolID, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedRole assigns role to userID.
func SeedRole(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, role domain.UserRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role`,
		userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}
}

// SeedLocation creates a pickup location in schoolID.
func SeedLocation(t *testing.T, pool *pgxpool.Pool, schoolID uuid.UUID, name string) domain.Location {
	t.Helper()

	loc := domain.Location{
		ID:        uuid.New(),
		SchoolID:  schoolID,
		Name:      name,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO locations (id, school_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		loc.ID, loc.SchoolID, loc.Name, loc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLocation: %v", err)
	}
	return loc
}

// SeedTextbook lists an available textbook owned by owner.
func SeedTextbook(t *testing.T, pool *pgxpool.Pool, owner domain.Profile) domain.Textbook {
	t.Helper()

	schoolID := owner.SchoolID
	tb := domain.Textbook{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		SchoolID:  &schoolID,
		Title:     "Algebra 1 " + uniqueSuffix(),
		Status:    domain.TextbookStatusAvailable,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO textbooks (id, owner_id, school_id, title, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tb.ID, tb.OwnerID, tb.SchoolID, tb.Title, string(tb.Status), tb.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTextbook: %v", err)
	}
	return tb
}

// SeedRequest creates a request by borrowerID for textbookID in the given
// status. The lender is the textbook's current owner.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, borrowerID, textbookID uuid.UUID, status domain.RequestStatus) domain.Request {
	t.Helper()

	var lenderID uuid.UUID
	err := pool.QueryRow(context.Background(), `SELECT owner_id FROM textbooks WHERE id = $1`, textbookID).Scan(&lenderID)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest lookup owner: %v", err)
	}

	ts := now()
	r := domain.Request{
		ID:         uuid.New(),
		BorrowerID: borrowerID,
		LenderID:   lenderID,
		TextbookID: textbookID,
		Status:     status,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO requests (id, borrower_id, lender_id, textbook_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.BorrowerID, r.LenderID, r.TextbookID, string(r.Status), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}
	return r
}
