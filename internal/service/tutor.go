// Package service contains the business logic for the Tutor Catalog API.
// Services check business rules and orchestrate repo calls; errors from the
// repo are wrapped with operation context but keep their domain kind.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
	"github.com/pkordes/tutor-catalog/backend/internal/repo"
)

// TutorService implements business logic for Tutor operations.
type TutorService struct {
	repo repo.TutorRepo
}

// NewTutorService constructs a TutorService backed by the provided TutorRepo.
func NewTutorService(r repo.TutorRepo) *TutorService {
	return &TutorService{repo: r}
}

// List returns all live tutors. Always returns a non-nil slice.
func (s *TutorService) List(ctx context.Context) ([]domain.Tutor, error) {
	tutors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TutorService.List: %w", err)
	}
	if tutors == nil {
		return []domain.Tutor{}, nil
	}
	return tutors, nil
}

// GetByID returns a single live tutor.
func (s *TutorService) GetByID(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.GetByID: %w", err)
	}
	return t, nil
}

// Create validates and persists a new tutor.
func (s *TutorService) Create(ctx context.Context, in domain.CreateTutor) (domain.Tutor, error) {
	if err := validateTutor(in); err != nil {
		return domain.Tutor{}, err
	}
	t, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.Create: %w", err)
	}
	return t, nil
}

// Update replaces every writable field of a live tutor.
func (s *TutorService) Update(ctx context.Context, id uuid.UUID, in domain.CreateTutor) (domain.Tutor, error) {
	if err := validateTutor(in); err != nil {
		return domain.Tutor{}, err
	}
	t, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.Update: %w", err)
	}
	return t, nil
}

// PartialUpdate reads the current tutor, overlays the fields present in
// patch and writes the result back as a full replace.
//
// The read and the write are two separate statements. A concurrent update
// between them is overwritten with the values read here, and a concurrent
// delete makes the write return domain.ErrNotFound.
func (s *TutorService) PartialUpdate(ctx context.Context, id uuid.UUID, patch domain.TutorPatch) (domain.Tutor, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.PartialUpdate: %w", err)
	}

	merged := patch.Merge(current)
	if err := validateTutor(merged); err != nil {
		return domain.Tutor{}, err
	}

	t, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.PartialUpdate: %w", err)
	}
	return t, nil
}

// SoftDelete hides a tutor from every later operation and returns the
// deleted row. Deleting twice returns domain.ErrNotFound.
func (s *TutorService) SoftDelete(ctx context.Context, id uuid.UUID) (domain.Tutor, error) {
	t, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return domain.Tutor{}, fmt.Errorf("service.TutorService.SoftDelete: %w", err)
	}
	return t, nil
}

// validateTutor rejects a blank name. Whitespace-only counts as blank.
func validateTutor(t domain.CreateTutor) error {
	if strings.TrimSpace(t.Name) == "" {
		return domain.InvalidInput("name is required")
	}
	return nil
}
