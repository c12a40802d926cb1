package sql

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/contract"
)

const resourceReference = "reference"

// translateWriteError maps integrity violations raised by the database into contract
// errors. Foreign key violations mean a referenced row vanished (or never existed) and
// check violations mean a value outside a closed vocabulary slipped past validation.
func translateWriteError(err error, message string) *contract.Error {
	var cErr *contract.Error
	if errors.As(err, &cErr) {
		return cErr
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated), isPgError(err, pgerrcode.ForeignKeyViolation):
		return &contract.Error{
			Code:     contract.ErrorCodeResourceDoesNotExist,
			Message:  "a referenced entity does not exist",
			Resource: resourceReference,
			Inner:    err,
		}
	case isPgError(err, pgerrcode.CheckViolation), isCheckViolationMessage(err):
		return contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			"value outside of the allowed vocabulary",
			err,
		)
	default:
		return contract.NewErrorWith(contract.ErrorCodeInternalError, message, err)
	}
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == code
}

// isCheckViolationMessage covers dialects whose translators do not surface check
// constraint failures as a typed error.
func isCheckViolationMessage(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "check constraint")
}
