package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == uniqueViolation
}

// isMalformedID reports a key that cannot be cast to the column type, such as
// a non-UUID string looked up in a uuid column. Such a row cannot exist.
func isMalformedID(err error) bool {
	return pgErrorCode(err) == invalidTextRepresentation
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || isMalformedID(err)
}
