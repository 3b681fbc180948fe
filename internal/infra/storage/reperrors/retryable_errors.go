package reperrors

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE коды PostgreSQL
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
)

// IsRetryableError true для ошибок, после которых транзакцию можно повторить целиком
func IsRetryableError(err error) bool {
	code, ok := pqCode(err)
	if !ok {
		return false
	}
	return code == CodeSerializationFailure || code == CodeDeadlockDetected
}

// IsUniqueViolation true, если нарушено ограничение уникальности
func IsUniqueViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == CodeUniqueViolation
}

// IsForeignKeyViolation true, если нарушен внешний ключ
func IsForeignKeyViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == CodeForeignKeyViolation
}

// pqCode ищет *pq.Error во всей цепочке ошибок (включая fmt.Errorf с несколькими %w)
func pqCode(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}
