package services

import (
	"errors"

	"hospital-management/internal/domain/repositories"
)

var (
	ErrNotFound               = repositories.ErrNotFound
	ErrUnsupportedSearchField = repositories.ErrUnsupportedSearchField

	// ErrInvalidAmount is the format error raised for a non-numeric bill amount.
	ErrInvalidAmount      = errors.New("amount must be a decimal number")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCredentials   = errors.New("username and password are required")
)

// dateLayout is the storage format of every date column.
const dateLayout = "2006-01-02"
