package company

import (
	"database/sql"
	"errors"

	companyerrors "go-quickgas/internal/company/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapCompanyError translates storage errors into domain errors. The unique
// constraint on companies.name is the authoritative enforcement under
// concurrent creates.
func mapCompanyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return companyerrors.ErrCompanyNameExists
	}

	return err
}
