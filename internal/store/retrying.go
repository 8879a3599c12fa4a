package store

import (
	"context"
	"fmt"
	"leaguedecks-backend/internal/components/retry"
)

// Retrying retries every operation of the inner store on transient errors.
type Retrying struct {
	inner  Store
	policy retry.Policy
	sink   retry.Sink
}

// NewRetrying wraps inner, sink may be nil.
func NewRetrying(inner Store, policy retry.Policy, sink retry.Sink) Retrying {
	return Retrying{inner: inner, policy: policy, sink: sink}
}

// WithSink returns a copy that reports failed attempts to sink.
func (r Retrying) WithSink(sink retry.Sink) Retrying {
	r.sink = sink
	return r
}

func (r Retrying) Get(ctx context.Context, collection, id string) (Document, error) {
	return retry.DoStore(ctx, r.policy, r.sink, fmt.Sprintf("store.get %s/%s", collection, id), func(ctx context.Context) (Document, error) {
		return r.inner.Get(ctx, collection, id)
	})
}

func (r Retrying) Query(ctx context.Context, q Query) ([]Document, error) {
	return retry.DoStore(ctx, r.policy, r.sink, "store.query "+q.Collection, func(ctx context.Context) ([]Document, error) {
		return r.inner.Query(ctx, q)
	})
}

func (r Retrying) QueryIn(ctx context.Context, q Query, field string, values []any) ([]Document, error) {
	return retry.DoStore(ctx, r.policy, r.sink, "store.query-in "+q.Collection, func(ctx context.Context) ([]Document, error) {
		return r.inner.QueryIn(ctx, q, field, values)
	})
}

func (r Retrying) BatchWrite(ctx context.Context, writes []Write) error {
	return retry.RunStore(ctx, r.policy, r.sink, fmt.Sprintf("store.batch-write (%d)", len(writes)), func(ctx context.Context) error {
		return r.inner.BatchWrite(ctx, writes)
	})
}

func (r Retrying) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return retry.RunStore(ctx, r.policy, r.sink, fmt.Sprintf("store.update %s/%s", collection, id), func(ctx context.Context) error {
		return r.inner.Update(ctx, collection, id, fields)
	})
}

func (r Retrying) Transact(ctx context.Context, collection, id string, fn TransactFunc) error {
	return retry.RunStore(ctx, r.policy, r.sink, fmt.Sprintf("store.transact %s/%s", collection, id), func(ctx context.Context) error {
		return r.inner.Transact(ctx, collection, id, fn)
	})
}
