package fuzzing

import (
	"context"
	"errors"
	"leaguedecks-backend/internal/store"
	"math/rand"
)

// errInjected reads as transient so the retrying store retries it.
var errInjected = errors.New("503 unavailable (injected)")

// faultyStore fails operations at a configurable rate. Writes either fail before reaching the
// inner store or after it, the latter models a lost acknowledgement.
type faultyStore struct {
	inner store.Store
	rndm  *rand.Rand
	rate  *float64
}

func (s faultyStore) fault() bool {
	return *s.rate > 0 && s.rndm.Float64() < *s.rate
}

func (s faultyStore) write(fn func() error) error {
	if s.fault() {
		return errInjected
	}
	err := fn()
	if err != nil {
		return err
	}
	if s.fault() {
		return errInjected
	}
	return nil
}

func (s faultyStore) Get(ctx context.Context, collection, id string) (store.Document, error) {
	if s.fault() {
		return store.Document{}, errInjected
	}
	return s.inner.Get(ctx, collection, id)
}

func (s faultyStore) Query(ctx context.Context, q store.Query) ([]store.Document, error) {
	if s.fault() {
		return nil, errInjected
	}
	return s.inner.Query(ctx, q)
}

func (s faultyStore) QueryIn(ctx context.Context, q store.Query, field string, values []any) ([]store.Document, error) {
	if s.fault() {
		return nil, errInjected
	}
	return s.inner.QueryIn(ctx, q, field, values)
}

func (s faultyStore) BatchWrite(ctx context.Context, writes []store.Write) error {
	return s.write(func() error {
		return s.inner.BatchWrite(ctx, writes)
	})
}

func (s faultyStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.write(func() error {
		return s.inner.Update(ctx, collection, id, fields)
	})
}

func (s faultyStore) Transact(ctx context.Context, collection, id string, fn store.TransactFunc) error {
	return s.write(func() error {
		return s.inner.Transact(ctx, collection, id, fn)
	})
}
