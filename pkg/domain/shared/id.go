package shared

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// ID is the identifier type used by every domain entity. It wraps a UUID so
// entities never expose the uuid package directly, and it knows how to move
// through sql and json boundaries.
type ID struct {
	value uuid.UUID
}

// NewID returns a random ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// IDFromString parses s as a UUID.
func IDFromString(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid id format: %w", err)
	}
	return ID{value: parsed}, nil
}

// MustIDFromString is IDFromString that panics on error. For tests and seed
// data with known-good literals.
func MustIDFromString(s string) ID {
	id, err := IDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return id.value.String()
}

// IsZero reports whether the ID is the nil UUID.
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}

// Equals reports whether two IDs are the same value.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// Value implements driver.Valuer; IDs are stored as their string form.
func (id ID) Value() (driver.Value, error) {
	return id.value.String(), nil
}

// Scan implements sql.Scanner, accepting string and []byte columns.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return err
		}
		id.value = parsed
	case []byte:
		parsed, err := uuid.ParseBytes(v)
		if err != nil {
			return err
		}
		id.value = parsed
	default:
		return fmt.Errorf("cannot scan type %T into ID", src)
	}
	return nil
}

// MarshalJSON renders the ID as a quoted UUID string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON parses a quoted UUID string.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("invalid id format")
	}
	parsed, err := uuid.Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	id.value = parsed
	return nil
}
