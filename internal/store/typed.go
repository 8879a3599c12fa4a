package store

import (
	"context"
	"fmt"
)

// GetAs reads a single document into a T.
func GetAs[T any](ctx context.Context, s Store, collection, id string) (T, error) {
	var out T
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return out, err
	}
	err = doc.Decode(&out)
	if err != nil {
		return out, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return out, nil
}

func decodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var value T
		err := doc.Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", doc.Collection, doc.ID, err)
		}
		out = append(out, value)
	}
	return out, nil
}

func QueryAs[T any](ctx context.Context, s Store, q Query) ([]T, error) {
	docs, err := s.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](docs)
}

func QueryInAs[T any](ctx context.Context, s Store, q Query, field string, values []string) ([]T, error) {
	anyValues := make([]any, len(values))
	for i, v := range values {
		anyValues[i] = v
	}
	docs, err := s.QueryIn(ctx, q, field, anyValues)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](docs)
}
