package dtos

// SearchField selects the column a search matches against.
type SearchField string

const (
	SearchByID   SearchField = "id"
	SearchByName SearchField = "name"
)

// Valid reports whether f is a supported search field.
func (f SearchField) Valid() bool {
	return f == SearchByID || f == SearchByName
}
