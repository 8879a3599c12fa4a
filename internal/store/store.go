// Package store is a small document store with get, query and batch write primitives.
// Documents are JSON objects addressed by (collection, id).
package store

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// IDField refers to the document id instead of a field in its body.
const IDField = "__id__"

// MaxInValues is the most values a single "in" query carries, QueryIn chunks above it.
const MaxInValues = 10

type Op string

const (
	OpEq  Op = "=="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

type Order struct {
	Field string
	Desc  bool
}

type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    []Order
	// Limit <= 0 means no limit.
	Limit int
}

type Document struct {
	Collection string
	ID         string
	Body       json.RawMessage
}

// Decode unmarshals the document body into out.
func (d Document) Decode(out any) error {
	return json.Unmarshal(d.Body, out)
}

// Write is a single document write inside of a batch.
type Write struct {
	Collection string
	ID         string
	// Doc is marshalled to a JSON object.
	Doc any
	// Merge overlays the top level fields of Doc onto the existing document instead of
	// replacing it.
	Merge bool
	// Preserve lists top level fields that keep their existing value under Merge, they are only
	// taken from Doc when the document is created.
	Preserve []string
	// Delete removes the document, Doc is ignored. Deleting a missing document is not an error.
	Delete bool
}

// TransactFunc receives the current body (nil if missing) and returns the next document, a nil
// next leaves the document untouched.
type TransactFunc func(current json.RawMessage) (next any, err error)

// Store is the persistence boundary of the pipeline.
//
// note: fault injection point
type Store interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, q Query) ([]Document, error)
	// QueryIn runs q once per chunk of at most MaxInValues values with an additional
	// "field in values" condition and concatenates the results.
	QueryIn(ctx context.Context, q Query, field string, values []any) ([]Document, error)
	BatchWrite(ctx context.Context, writes []Write) error
	// Update sets only the given top level fields, it returns ErrNotFound if the document does
	// not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Transact(ctx context.Context, collection, id string, fn TransactFunc) error
}

func chunk[T any](values []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		out = append(out, values[start:end])
	}
	return out
}

// mergeBodies overlays next onto current, keeping the preserved fields of current when they
// exist.
func mergeBodies(current json.RawMessage, next []byte, preserve []string) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if len(current) > 0 {
		err := json.Unmarshal(current, &merged)
		if err != nil {
			return nil, err
		}
	}
	overlay := map[string]json.RawMessage{}
	err := json.Unmarshal(next, &overlay)
	if err != nil {
		return nil, err
	}

	keep := map[string]bool{}
	for _, field := range preserve {
		if _, exists := merged[field]; exists {
			keep[field] = true
		}
	}
	for key, value := range overlay {
		if keep[key] {
			continue
		}
		merged[key] = value
	}
	return json.Marshal(merged)
}
