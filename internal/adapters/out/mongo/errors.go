package mongo

import (
	"errors"

	"logistics/internal/pkg/errs"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

const writeConflictCode = 112

// isWriteConflict reports a transaction that lost a race for the same document.
// The TransientTransactionError label alone is not enough: network failures inside
// a transaction carry it too.
func isWriteConflict(err error) bool {
	var serverErr mongodriver.ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return serverErr.HasErrorCode(writeConflictCode)
}

// storeError turns a driver error into the error taxonomy. Lost races become
// conflicts on paramName/id; everything else means the store is unavailable.
func storeError(operation, paramName string, id any, err error) error {
	if isWriteConflict(err) {
		return errs.NewConflictErrorWithCause(paramName, id, err)
	}
	return errs.NewStoreUnavailableError(operation, err)
}
