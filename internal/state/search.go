package state

import (
	"fmt"
	"strings"
)

// Search field names used in ValidationError.
const (
	FieldFrom = "from"
	FieldTo   = "to"
	FieldDate = "date"
)

// SearchCriteria is a committed origin/destination/date triple.
type SearchCriteria struct {
	From string
	To   string
	Date string
}

// IsZero reports whether every field is empty.
func (c SearchCriteria) IsZero() bool {
	return c == SearchCriteria{}
}

// ValidationError lists required search fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required search field(s): %s", strings.Join(e.Fields, ", "))
}

// Has reports whether field is among the missing fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// NewSearchCriteria trims and uppercases the airport codes and checks that
// all three fields are present. The date is kept as provided.
func NewSearchCriteria(from, to, date string) (SearchCriteria, error) {
	c := SearchCriteria{
		From: normalizeCode(from),
		To:   normalizeCode(to),
		Date: date,
	}

	var missing []string
	if c.From == "" {
		missing = append(missing, FieldFrom)
	}
	if c.To == "" {
		missing = append(missing, FieldTo)
	}
	if strings.TrimSpace(c.Date) == "" {
		missing = append(missing, FieldDate)
	}
	if len(missing) > 0 {
		return SearchCriteria{}, &ValidationError{Fields: missing}
	}
	return c, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
