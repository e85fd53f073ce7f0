package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
)

// TutorRepo defines the persistence operations for Tutors.
// Soft-deleted tutors are invisible to every method.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TutorRepo interface {
	// List returns all live tutors ordered by created_at.
	List(ctx context.Context) ([]domain.Tutor, error)

	// GetByID retrieves a single live tutor.
	// Returns domain.ErrNotFound if it does not exist or was deleted.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tutor, error)

	// Create inserts a new tutor with a generated id and
	// created_at = updated_at = now, and returns the persisted record.
	Create(ctx context.Context, t domain.CreateTutor) (domain.Tutor, error)

	// Update replaces name, pic_url and profile and stamps updated_at.
	// Returns domain.ErrNotFound if the tutor does not exist or was deleted.
	Update(ctx context.Context, id uuid.UUID, t domain.CreateTutor) (domain.Tutor, error)

	// SoftDelete stamps deleted_at and returns the now-deleted record.
	// Returns domain.ErrNotFound if the tutor does not exist or was already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) (domain.Tutor, error)
}

// pgTutorRepo is the Postgres implementation of TutorRepo.
type pgTutorRepo struct {
	db db
}

// NewTutorRepo constructs a TutorRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTutorRepo(db db) TutorRepo {
	return &pgTutorRepo{db: db}
}

const tutorColumns = `id, name, pic_url, profile, created_at, updated_at, deleted_at`

func (r *pgTutorRepo) List(ctx context.Context) ([]domain.Tutor, error) {
	const q = `
		SELECT ` + tutorColumns + `
		FROM tutors
		WHERE deleted_at IS NULL
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapError("repo.TutorRepo.List", err)
	}
	defer rows.Close()

	tutors := []domain.Tutor{}
	for rows.Next() {
		t, err := scanTutor(rows)
		if err != nil {
			return nil, mapError("repo.TutorRepo.List: scan", err)
		}
		tutors = append(tutors, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("repo.TutorRepo.List: rows", err)
	}
	return tutors, nil
}

func (r *pgTutorRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	const q = `
		SELECT ` + tutorColumns + `
		FROM tutors
		WHERE id = @id AND deleted_at IS NULL`

	result, err := scanTutor(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Tutor{}, mapError("repo.TutorRepo.GetByID", err)
	}
	return result, nil
}

// Create uses one timestamp for created_at and updated_at so the two are equal.
func (r *pgTutorRepo) Create(ctx context.Context, t domain.CreateTutor) (domain.Tutor, error) {
	const q = `
		INSERT INTO tutors (id, name, pic_url, profile, created_at, updated_at)
		VALUES (@id, @name, @pic_url, @profile, @now, @now)
		RETURNING ` + tutorColumns

	args := pgx.NamedArgs{
		"id":      uuid.New(),
		"name":    t.Name,
		"pic_url": t.PicURL,
		"profile": t.Profile,
		"now":     now(),
	}

	result, err := scanTutor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Tutor{}, mapError("repo.TutorRepo.Create", err)
	}
	return result, nil
}

func (r *pgTutorRepo) Update(ctx context.Context, id uuid.UUID, t domain.CreateTutor) (domain.Tutor, error) {
	const q = `
		UPDATE tutors
		SET name       = @name,
		    pic_url    = @pic_url,
		    profile    = @profile,
		    updated_at = @now
		WHERE id = @id AND deleted_at IS NULL
		RETURNING ` + tutorColumns

	args := pgx.NamedArgs{
		"id":      id,
		"name":    t.Name,
		"pic_url": t.PicURL,
		"profile": t.Profile,
		"now":     now(),
	}

	result, err := scanTutor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Tutor{}, mapError("repo.TutorRepo.Update", err)
	}
	return result, nil
}

func (r *pgTutorRepo) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	const q = `
		UPDATE tutors
		SET deleted_at = @now
		WHERE id = @id AND deleted_at IS NULL
		RETURNING ` + tutorColumns

	result, err := scanTutor(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "now": now()}))
	if err != nil {
		return domain.Tutor{}, mapError("repo.TutorRepo.SoftDelete", err)
	}
	return result, nil
}

// scanTutor maps a single database row into a domain.Tutor.
// Column order must match tutorColumns.
func scanTutor(s scanner) (domain.Tutor, error) {
	var (
		t         domain.Tutor
		id        pgtype.UUID
		updatedAt pgtype.Timestamptz
		deletedAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &t.Name, &t.PicURL, &t.Profile, &t.CreatedAt, &updatedAt, &deletedAt)
	if err != nil {
		return domain.Tutor{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = timePtr(updatedAt)
	t.DeletedAt = timePtr(deletedAt)
	return t, nil
}

// timePtr converts a nullable timestamptz into *time.Time in UTC.
func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	v := ts.Time.UTC()
	return &v
}
