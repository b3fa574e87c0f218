package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/info-graph/info-graph-task/pkg/apperr"
)

// notFoundOr maps gorm's missing-record error onto the API's not-found
// taxonomy; anything else passes through untouched.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}
