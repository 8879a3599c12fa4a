package store

import (
	"fmt"
	"regexp"
	"strconv"
)

// Dialect renders the parts of a statement that differ between sql engines.
type Dialect interface {
	Name() string
	// Placeholder returns the n-th (1-based) bind parameter.
	Placeholder(n int) string
	// Field returns an expression that extracts a top level field from the body, value is the
	// value it will be compared with (nil when ordering).
	Field(name string, value any) string
	// Bind converts a filter value to what the driver expects.
	Bind(value any) any
}

var fieldNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkField(name string) error {
	if name == IDField {
		return nil
	}
	if !fieldNameRegex.MatchString(name) {
		return fmt.Errorf("invalid field name '%s'", name)
	}
	return nil
}

// SqliteDialect is used by both modernc sqlite and libsql.
type SqliteDialect struct{}

func (SqliteDialect) Name() string { return "sqlite" }

func (SqliteDialect) Placeholder(int) string { return "?" }

func (SqliteDialect) Field(name string, _ any) string {
	if name == IDField {
		return "id"
	}
	return fmt.Sprintf("json_extract(body, '$.%s')", name)
}

// Bind maps booleans to the integers json_extract returns for them.
func (SqliteDialect) Bind(value any) any {
	if b, ok := value.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return value
}

type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (PostgresDialect) Field(name string, value any) string {
	if name == IDField {
		return "id"
	}
	expr := fmt.Sprintf("(body::jsonb->>'%s')", name)
	switch value.(type) {
	case int, int32, int64, float32, float64:
		return expr + "::numeric"
	}
	return expr
}

func (PostgresDialect) Bind(value any) any {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case int, int32, int64, float32, float64:
		return v
	}
	return fmt.Sprint(value)
}
