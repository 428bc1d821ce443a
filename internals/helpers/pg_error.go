// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// PGErrorCode mengambil SQLSTATE dari pgx maupun lib/pq ("" jika bukan error Postgres).
func PGErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsRetryablePGError: bentrokan konkurensi yang aman diulang oleh client.
func IsRetryablePGError(err error) bool {
	switch PGErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgUniqueViolation:
		return true
	}
	return false
}

func MapPGError(err error) (int, string) {
	switch PGErrorCode(err) {
	case pgExclusionViolation:
		return http.StatusConflict, "Bentrok jadwal (exclusion violation)."
	case pgForeignKeyViolation:
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case pgUniqueViolation:
		return http.StatusConflict, "Data duplikat (unique violation)."
	case pgSerializationFailure, pgDeadlockDetected:
		return http.StatusServiceUnavailable, "Transaksi bentrok, silakan coba lagi."
	case "":
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "Database error."
	}
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
