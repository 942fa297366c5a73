// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
)

// normalizePage clamps a page request to the configured bounds.
func normalizePage(cfg *config.Config, page entity.PageRequest) entity.PageRequest {
	defaultSize, maxSize := 20, 100
	if cfg != nil && cfg.Pagination != nil {
		defaultSize, maxSize = cfg.Pagination.DefaultSize, cfg.Pagination.MaxSize
	}

	if page.Page < 0 {
		page.Page = 0
	}
	if page.Size <= 0 {
		page.Size = defaultSize
	}
	if page.Size > maxSize {
		page.Size = maxSize
	}

	return page
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func pathSeparator(cfg *config.Config) string {
	if cfg != nil && cfg.Location != nil && cfg.Location.PathSeparator != "" {
		return cfg.Location.PathSeparator
	}

	return config.DefaultPathSeparator
}

// checkLength rejects values longer than the column that stores them. Limits count characters, not bytes.
func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return domainerrors.ErrValidationFailed.WrapMessage(field + " must be at most " + strconv.Itoa(limit) + " characters")
	}

	return nil
}

// checkPassword enforces the length bounds of a new password. bcrypt rejects more than 72 bytes.
func checkPassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too short")
	}
	if len(password) > entity.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WrapMessage("password must be at most " + strconv.Itoa(entity.MaxPasswordBytes) + " bytes")
	}

	return nil
}
