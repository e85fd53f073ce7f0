package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
)

// CourseRepo defines the persistence operations for Courses.
// All reads, updates and deletes are scoped by (tutorID, courseID): a course
// owned by another tutor is reported as domain.ErrNotFound, exactly like a
// course that does not exist. Soft-deleted courses are invisible to every method.
type CourseRepo interface {
	// ListByTutor returns the tutor's live courses ordered by posted_time.
	// An unknown tutor yields an empty slice, not an error.
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error)

	// Get retrieves one live course owned by tutorID.
	Get(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)

	// Create inserts a course with a generated id and
	// posted_time = created_at = updated_at = now.
	Create(ctx context.Context, c domain.CreateCourse) (domain.Course, error)

	// Update replaces every descriptive field and stamps updated_at.
	// It never inserts: a missing or deleted row is domain.ErrNotFound.
	Update(ctx context.Context, tutorID, courseID uuid.UUID, f domain.CourseFields) (domain.Course, error)

	// SoftDelete stamps deleted_at and returns the now-deleted record.
	SoftDelete(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error)
}

// pgCourseRepo is the Postgres implementation of CourseRepo.
type pgCourseRepo struct {
	db db
}

// NewCourseRepo constructs a CourseRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCourseRepo(db db) CourseRepo {
	return &pgCourseRepo{db: db}
}

const courseColumns = `id, tutor_id, name, description, format, structure, duration,
		price, language, level, posted_time, created_at, updated_at, deleted_at`

func (r *pgCourseRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error) {
	const q = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE tutor_id = @tutor_id AND deleted_at IS NULL
		ORDER BY posted_time, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"tutor_id": tutorID})
	if err != nil {
		return nil, mapError("repo.CourseRepo.ListByTutor", err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, mapError("repo.CourseRepo.ListByTutor: scan", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("repo.CourseRepo.ListByTutor: rows", err)
	}
	return courses, nil
}

func (r *pgCourseRepo) Get(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	const q = `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE tutor_id = @tutor_id AND id = @id AND deleted_at IS NULL`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"tutor_id": tutorID, "id": courseID})
	result, err := scanCourse(row)
	if err != nil {
		return domain.Course{}, mapError("repo.CourseRepo.Get", err)
	}
	return result, nil
}

func (r *pgCourseRepo) Create(ctx context.Context, c domain.CreateCourse) (domain.Course, error) {
	const q = `
		INSERT INTO courses (
			id, tutor_id, name, description, format, structure, duration,
			price, language, level, posted_time, created_at, updated_at
		) VALUES (
			@id, @tutor_id, @name, @description, @format, @structure, @duration,
			@price, @language, @level, @now, @now, @now
		)
		RETURNING ` + courseColumns

	args := fieldArgs(c.CourseFields)
	args["id"] = uuid.New()
	args["tutor_id"] = c.TutorID
	args["now"] = now()

	result, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, mapError("repo.CourseRepo.Create", err)
	}
	return result, nil
}

func (r *pgCourseRepo) Update(ctx context.Context, tutorID, courseID uuid.UUID, f domain.CourseFields) (domain.Course, error) {
	const q = `
		UPDATE courses
		SET name        = @name,
		    description = @description,
		    format      = @format,
		    structure   = @structure,
		    duration    = @duration,
		    price       = @price,
		    language    = @language,
		    level       = @level,
		    updated_at  = @now
		WHERE tutor_id = @tutor_id AND id = @id AND deleted_at IS NULL
		RETURNING ` + courseColumns

	args := fieldArgs(f)
	args["id"] = courseID
	args["tutor_id"] = tutorID
	args["now"] = now()

	result, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, mapError("repo.CourseRepo.Update", err)
	}
	return result, nil
}

func (r *pgCourseRepo) SoftDelete(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	const q = `
		UPDATE courses
		SET deleted_at = @now
		WHERE tutor_id = @tutor_id AND id = @id AND deleted_at IS NULL
		RETURNING ` + courseColumns

	args := pgx.NamedArgs{"tutor_id": tutorID, "id": courseID, "now": now()}

	result, err := scanCourse(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Course{}, mapError("repo.CourseRepo.SoftDelete", err)
	}
	return result, nil
}

// fieldArgs binds the descriptive fields shared by Create and Update.
// nil pointers become NULL.
func fieldArgs(f domain.CourseFields) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        f.Name,
		"description": f.Description,
		"format":      f.Format,
		"structure":   f.Structure,
		"duration":    f.Duration,
		"price":       f.Price,
		"language":    f.Language,
		"level":       f.Level,
	}
}

// scanCourse maps a single database row into a domain.Course.
// Column order must match courseColumns.
func scanCourse(s scanner) (domain.Course, error) {
	var (
		c         domain.Course
		id        pgtype.UUID
		tutorID   pgtype.UUID
		updatedAt pgtype.Timestamptz
		deletedAt pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &tutorID, &c.Name,
		&c.Description, &c.Format, &c.Structure, &c.Duration,
		&c.Price, &c.Language, &c.Level,
		&c.PostedTime, &c.CreatedAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return domain.Course{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.TutorID = uuid.UUID(tutorID.Bytes)
	c.PostedTime = c.PostedTime.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = timePtr(updatedAt)
	c.DeletedAt = timePtr(deletedAt)
	return c, nil
}
