package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint violations are recognised by GORM's translated errors first
// (TranslateError), then by PostgreSQL SQLSTATE codes and SQLite messages.

type constraintRule struct {
	translated error
	markers    []string
}

//nolint:gochecknoglobals
var (
	uniqueRule     = constraintRule{gorm.ErrDuplicatedKey, []string{"sqlstate 23505", "duplicate key", "unique constraint failed"}}
	foreignKeyRule = constraintRule{gorm.ErrForeignKeyViolated, []string{"sqlstate 23503", "foreign key constraint"}}
	notNullRule    = constraintRule{nil, []string{"sqlstate 23502", "not null constraint"}}
	checkRule      = constraintRule{gorm.ErrCheckConstraintViolated, []string{"sqlstate 23514", "check constraint failed"}}
)

func (r constraintRule) matches(err error) bool {
	if err == nil {
		return false
	}
	if r.translated != nil && errors.Is(err, r.translated) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range r.markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool     { return uniqueRule.matches(err) }
func isForeignKeyConstraintViolation(err error) bool { return foreignKeyRule.matches(err) }
func isNotNullConstraintViolation(err error) bool    { return notNullRule.matches(err) }
func isCheckConstraintViolation(err error) bool      { return checkRule.matches(err) }
