package service

import (
	"errors"
	"fmt"

	"go_vocab_drill/internal/model"
)

// dependencyError はレコードストアの障害を 503 として返すためのエラーにします。
func dependencyError(message string, err error) error {
	if errors.Is(err, model.ErrDependency) {
		return model.NewAppError("SERVICE_UNAVAILABLE", message, "", err)
	}
	return model.NewAppError("SERVICE_UNAVAILABLE", message, "", fmt.Errorf("%w: %w", model.ErrDependency, err))
}

func notFoundError(message, field string) error {
	return model.NewAppError("NOT_FOUND", message, field, model.ErrNotFound)
}

func conflictError(code, message string) error {
	return model.NewAppError(code, message, "", model.ErrConflict)
}

// passThrough はトランザクション内で作った AppError をそのまま返し、それ以外を依存先エラーにします。
func passThrough(message string, err error) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return dependencyError(message, err)
}
