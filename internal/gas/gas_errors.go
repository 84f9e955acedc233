package gas

import (
	"database/sql"
	"errors"

	gaserrors "go-quickgas/internal/gas/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapGasError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return gaserrors.ErrGasNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return gaserrors.ErrGasNameExists
	}

	return err
}
