package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/tutor-catalog/backend/internal/domain"
)

// notFoundMessage is shown to clients when a scoped lookup matches nothing.
const notFoundMessage = "Requested resource not found"

// mapError is the single conversion point from pgx failures to domain errors.
// Every exported repo method returns its error through here, so a raw driver
// error can never leak past this package:
//
//   - pgx.ErrNoRows becomes domain.KindNotFound
//   - an error that is already a *domain.Error passes through
//   - everything else becomes domain.KindStorage
//
// op names the failing method and is kept in the cause for the server log.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return fmt.Errorf("%s: %w", op, err)
	}

	cause := fmt.Errorf("%s: %w", op, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.Error{Kind: domain.KindNotFound, Message: notFoundMessage, Cause: cause}
	}
	return domain.StorageFailure(cause)
}
