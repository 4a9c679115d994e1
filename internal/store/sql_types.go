package store

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// uuidArray adapts a []uuid.UUID to the textual PostgreSQL array format
// ("{id1,id2}") used by the uuid[] column type when accessed through
// database/sql. The pgx stdlib driver hands arrays to Scan as raw text.
type uuidArray []uuid.UUID

// Scan implements sql.Scanner.
func (a *uuidArray) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into uuidArray", src)
	}

	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	if raw == "" {
		*a = uuidArray{}
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make(uuidArray, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.Trim(part, `" `))
		if err != nil {
			return fmt.Errorf("invalid uuid %q in array: %w", part, err)
		}
		ids = append(ids, id)
	}

	*a = ids
	return nil
}

// Value implements driver.Valuer.
func (a uuidArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}

	parts := make([]string, 0, len(a))
	for _, id := range a {
		parts = append(parts, id.String())
	}

	return "{" + strings.Join(parts, ",") + "}", nil
}
