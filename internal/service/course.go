package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
	"github.com/pkordes/tutor-catalog/backend/internal/repo"
)

// CourseService implements business logic for Course operations.
// Every method except Create is scoped by the owning tutor.
type CourseService struct {
	repo repo.CourseRepo
}

// NewCourseService constructs a CourseService backed by the provided CourseRepo.
func NewCourseService(r repo.CourseRepo) *CourseService {
	return &CourseService{repo: r}
}

// ListByTutor returns the tutor's live courses. Always returns a non-nil slice;
// an unknown tutor is an empty list, not an error.
func (s *CourseService) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]domain.Course, error) {
	courses, err := s.repo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("service.CourseService.ListByTutor: %w", err)
	}
	if courses == nil {
		return []domain.Course{}, nil
	}
	return courses, nil
}

// Get returns one live course owned by tutorID.
func (s *CourseService) Get(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	c, err := s.repo.Get(ctx, tutorID, courseID)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Get: %w", err)
	}
	return c, nil
}

// Create validates and persists a new course.
func (s *CourseService) Create(ctx context.Context, in domain.CreateCourse) (domain.Course, error) {
	if err := validateCourse(in.CourseFields); err != nil {
		return domain.Course{}, err
	}
	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Create: %w", err)
	}
	return c, nil
}

// Update replaces every descriptive field of a live course owned by tutorID.
func (s *CourseService) Update(ctx context.Context, tutorID, courseID uuid.UUID, in domain.CourseFields) (domain.Course, error) {
	if err := validateCourse(in); err != nil {
		return domain.Course{}, err
	}
	c, err := s.repo.Update(ctx, tutorID, courseID, in)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.Update: %w", err)
	}
	return c, nil
}

// SoftDelete hides a course and returns the deleted row.
func (s *CourseService) SoftDelete(ctx context.Context, tutorID, courseID uuid.UUID) (domain.Course, error) {
	c, err := s.repo.SoftDelete(ctx, tutorID, courseID)
	if err != nil {
		return domain.Course{}, fmt.Errorf("service.CourseService.SoftDelete: %w", err)
	}
	return c, nil
}

func validateCourse(f domain.CourseFields) error {
	if strings.TrimSpace(f.Name) == "" {
		return domain.InvalidInput("name is required")
	}
	if f.Price != nil && *f.Price < 0 {
		return domain.InvalidInput("price must not be negative")
	}
	return nil
}
