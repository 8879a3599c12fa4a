package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"leaguedecks-backend/internal/components/assert"
	"strings"
	"time"
)

//go:embed schema.sql
var Schema string

// SQLStore keeps every document as a JSON text row of a single table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewSQLStore creates the documents table if it does not exist yet.
func NewSQLStore(ctx context.Context, db *sql.DB, dialect Dialect) (SQLStore, error) {
	assert.NotNil(db, "db")
	assert.NotNil(dialect, "dialect")

	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return SQLStore{}, fmt.Errorf("create schema: %w", err)
	}
	return SQLStore{db: db, dialect: dialect, now: time.Now}, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s SQLStore) getBody(ctx context.Context, q queryer, collection, id string) (json.RawMessage, error) {
	stmt := fmt.Sprintf(
		"select body from documents where collection = %s and id = %s",
		s.dialect.Placeholder(1),
		s.dialect.Placeholder(2),
	)
	var body string
	err := q.QueryRowContext(ctx, stmt, collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (s SQLStore) put(ctx context.Context, q queryer, collection, id string, body []byte) error {
	stmt := fmt.Sprintf(
		`insert into documents (collection, id, body, updated_at) values (%s, %s, %s, %s)
		on conflict (collection, id) do update set body = excluded.body, updated_at = excluded.updated_at`,
		s.dialect.Placeholder(1),
		s.dialect.Placeholder(2),
		s.dialect.Placeholder(3),
		s.dialect.Placeholder(4),
	)
	_, err := q.ExecContext(ctx, stmt, collection, id, string(body), s.now().UnixMilli())
	return err
}

func (s SQLStore) delete(ctx context.Context, q queryer, collection, id string) error {
	stmt := fmt.Sprintf(
		"delete from documents where collection = %s and id = %s",
		s.dialect.Placeholder(1),
		s.dialect.Placeholder(2),
	)
	_, err := q.ExecContext(ctx, stmt, collection, id)
	return err
}

func (s SQLStore) Get(ctx context.Context, collection, id string) (Document, error) {
	body, err := s.getBody(ctx, s.db, collection, id)
	if err != nil {
		return Document{}, err
	}
	return Document{Collection: collection, ID: id, Body: body}, nil
}

type inClause struct {
	field  string
	values []any
}

func (s SQLStore) buildQuery(q Query, in *inClause) (string, []any, error) {
	args := []any{q.Collection}
	conditions := []string{"collection = " + s.dialect.Placeholder(1)}

	for _, f := range q.Filters {
		err := checkField(f.Field)
		if err != nil {
			return "", nil, err
		}
		switch f.Op {
		case OpEq, OpLt, OpLte, OpGt, OpGte:
		default:
			return "", nil, fmt.Errorf("unsupported operator '%s'", f.Op)
		}
		sqlOp := string(f.Op)
		if f.Op == OpEq {
			sqlOp = "="
		}
		args = append(args, s.dialect.Bind(f.Value))
		conditions = append(conditions, fmt.Sprintf(
			"%s %s %s",
			s.dialect.Field(f.Field, f.Value),
			sqlOp,
			s.dialect.Placeholder(len(args)),
		))
	}

	if in != nil {
		err := checkField(in.field)
		if err != nil {
			return "", nil, err
		}
		placeholders := make([]string, len(in.values))
		for i, v := range in.values {
			args = append(args, s.dialect.Bind(v))
			placeholders[i] = s.dialect.Placeholder(len(args))
		}
		var sample any
		if len(in.values) > 0 {
			sample = in.values[0]
		}
		conditions = append(conditions, fmt.Sprintf(
			"%s in (%s)",
			s.dialect.Field(in.field, sample),
			strings.Join(placeholders, ", "),
		))
	}

	stmt := "select id, body from documents where " + strings.Join(conditions, " and ")

	orders := []string{}
	for _, o := range q.OrderBy {
		err := checkField(o.Field)
		if err != nil {
			return "", nil, err
		}
		direction := "asc"
		if o.Desc {
			direction = "desc"
		}
		orders = append(orders, s.dialect.Field(o.Field, nil)+" "+direction)
	}
	// a stable order keeps results deterministic across engines
	orders = append(orders, "id asc")
	stmt += " order by " + strings.Join(orders, ", ")

	if q.Limit > 0 {
		stmt += fmt.Sprintf(" limit %d", q.Limit)
	}
	return stmt, args, nil
}

func (s SQLStore) runQuery(ctx context.Context, q Query, in *inClause) ([]Document, error) {
	stmt, args, err := s.buildQuery(q, in)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var id, body string
		err = rows.Scan(&id, &body)
		if err != nil {
			return nil, err
		}
		out = append(out, Document{
			Collection: q.Collection,
			ID:         id,
			Body:       json.RawMessage(body),
		})
	}
	return out, rows.Err()
}

func (s SQLStore) Query(ctx context.Context, q Query) ([]Document, error) {
	return s.runQuery(ctx, q, nil)
}

func (s SQLStore) QueryIn(ctx context.Context, q Query, field string, values []any) ([]Document, error) {
	var out []Document
	for _, part := range chunk(values, MaxInValues) {
		docs, err := s.runQuery(ctx, q, &inClause{field: field, values: part})
		if err != nil {
			return nil, err
		}
		out = append(out, docs...)
	}
	return out, nil
}

func (s SQLStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = fn(tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s SQLStore) BatchWrite(ctx context.Context, writes []Write) error {
	if len(writes) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, w := range writes {
			if w.Delete {
				err := s.delete(ctx, tx, w.Collection, w.ID)
				if err != nil {
					return fmt.Errorf("delete %s/%s: %w", w.Collection, w.ID, err)
				}
				continue
			}
			body, err := json.Marshal(w.Doc)
			if err != nil {
				return fmt.Errorf("marshal %s/%s: %w", w.Collection, w.ID, err)
			}
			if w.Merge {
				current, err := s.getBody(ctx, tx, w.Collection, w.ID)
				if err != nil && !errors.Is(err, ErrNotFound) {
					return err
				}
				body, err = mergeBodies(current, body, w.Preserve)
				if err != nil {
					return fmt.Errorf("merge %s/%s: %w", w.Collection, w.ID, err)
				}
			}
			err = s.put(ctx, tx, w.Collection, w.ID, body)
			if err != nil {
				return fmt.Errorf("write %s/%s: %w", w.Collection, w.ID, err)
			}
		}
		return nil
	})
}

func (s SQLStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.getBody(ctx, tx, collection, id)
		if err != nil {
			return err
		}
		patch, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		body, err := mergeBodies(current, patch, nil)
		if err != nil {
			return err
		}
		return s.put(ctx, tx, collection, id, body)
	})
}

func (s SQLStore) Transact(ctx context.Context, collection, id string, fn TransactFunc) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.getBody(ctx, tx, collection, id)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		body, err := json.Marshal(next)
		if err != nil {
			return err
		}
		return s.put(ctx, tx, collection, id, body)
	})
}
