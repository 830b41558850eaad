package user

import (
	"errors"
	"strings"

	usererrors "go-hrms/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates driver-level failures into domain errors.
// Unique violations are detected via the Postgres error code and, for the
// SQLite driver, a message fallback.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_employee_id":
			return usererrors.ErrEmployeeIDTaken
		case "uq_users_email":
			return usererrors.ErrEmailTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "unique constraint failed") {
		if strings.Contains(errMsg, "employee_id") {
			return usererrors.ErrEmployeeIDTaken
		}
		if strings.Contains(errMsg, "email") {
			return usererrors.ErrEmailTaken
		}
	}

	return err
}
