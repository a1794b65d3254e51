package record

import (
	"errors"
	"strings"

	recorderrors "github.com/kotani6053/nakatu.yasumi/internal/record/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recorderrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_records_name_date" {
			return recorderrors.ErrDuplicateRecord
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_records_name_date") {
		return recorderrors.ErrDuplicateRecord
	}

	return err
}
