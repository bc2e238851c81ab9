package sqlite

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskbook-api/internal/store"
	"gorm.io/gorm"
)

// MapError translates gorm errors to store errors. gorm reports constraint
// violations without the constraint name, so callers that know which
// constraint a statement can trip pass it as duplicate or invalid.
func MapError(err, duplicate, invalid error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if duplicate == nil {
			duplicate = store.ErrDuplicate
		}
		return fmt.Errorf("%w: %v", duplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		if invalid == nil {
			invalid = store.ErrInvalidEntity
		}
		return fmt.Errorf("%w: %v", invalid, err)
	}
	return err
}
