package performance

import (
	"errors"

	performanceerrors "humanage/internal/performance/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return performanceerrors.ErrReviewNotFound
	}

	return err
}
