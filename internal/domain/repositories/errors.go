package repositories

import (
	"errors"
	"fmt"

	"hospital-management/internal/domain/dtos"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupportedSearchField is returned for a search on anything but id or name.
	ErrUnsupportedSearchField = errors.New("unsupported search field")
)

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// containsPattern builds the LIKE pattern used by every search. Wildcards typed by
// the user are passed through.
func containsPattern(term string) string {
	return "%" + term + "%"
}

// searchColumn maps a search field to the column of the given id column's table.
func searchColumn(field dtos.SearchField, idColumn string) (string, error) {
	switch field {
	case dtos.SearchByID:
		return idColumn, nil
	case dtos.SearchByName:
		return "name", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSearchField, field)
	}
}
