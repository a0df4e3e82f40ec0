package gorm

import (
	"errors"
	"strings"
)

// errDryRunRollback aborts a dry-run transaction after the work is done
// so the result can be reported without persisting anything.
var errDryRunRollback = errors.New("DRY_RUN_ROLLBACK")

// isUniqueViolation matches PostgreSQL duplicate-key failures without
// binding to a specific driver error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
