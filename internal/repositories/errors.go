package repositories

import (
	"errors"

	"loket-backend/internal/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// translate turns driver errors the caller can act on into classified
// errors. Everything else is returned unchanged.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &apperror.Error{
			Kind:    apperror.KindConflict,
			Message: "record already exists (" + pgErr.ConstraintName + ")",
			Err:     err,
		}
	}
	return err
}
