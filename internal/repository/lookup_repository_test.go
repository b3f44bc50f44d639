package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

type fakeQuerier struct {
	row     fakeRow
	queries int
	gotSQL  string
	gotArgs []any
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.queries++
	q.gotSQL = sql
	q.gotArgs = args
	return q.row
}

func TestLookupMissResolvesToNil(t *testing.T) {
	lookups := NewLookupRepository()
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

	resolvers := map[string]func() (*int64, error){
		"zone":  func() (*int64, error) { return lookups.ZoneID(context.Background(), q, "Zona Fantasma") },
		"cargo": func() (*int64, error) { return lookups.CargoID(context.Background(), q, "Cargo Fantasma") },
		"reason": func() (*int64, error) {
			return lookups.RejectionReasonID(context.Background(), q, "Motivo Fantasma")
		},
	}

	for name, resolve := range resolvers {
		id, err := resolve()
		if err != nil {
			t.Errorf("%s: a miss must not be an error, got %v", name, err)
		}
		if id != nil {
			t.Errorf("%s: a miss must resolve to nil, got %d", name, *id)
		}
	}
}

func TestLookupHitResolvesID(t *testing.T) {
	lookups := NewLookupRepository()
	q := &fakeQuerier{row: fakeRow{id: 42}}

	id, err := lookups.ZoneID(context.Background(), q, "Zona Norte")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == nil || *id != 42 {
		t.Fatalf("expected id 42, got %v", id)
	}
	if len(q.gotArgs) != 1 || q.gotArgs[0] != "Zona Norte" {
		t.Fatalf("expected the description as query argument, got %v", q.gotArgs)
	}
	if !strings.Contains(q.gotSQL, "FROM zonas") {
		t.Fatalf("expected a zonas lookup, got %q", q.gotSQL)
	}
}

func TestLookupStoreFailurePropagates(t *testing.T) {
	lookups := NewLookupRepository()
	cause := errors.New("connection refused")
	q := &fakeQuerier{row: fakeRow{err: cause}}

	id, err := lookups.CargoID(context.Background(), q, "Secretario")
	if !errors.Is(err, cause) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id on error, got %d", *id)
	}
}

func TestLookupEmptyDescriptionSkipsQuery(t *testing.T) {
	lookups := NewLookupRepository()
	q := &fakeQuerier{row: fakeRow{id: 7}}

	id, err := lookups.RejectionReasonID(context.Background(), q, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Fatalf("expected nil id for empty description, got %d", *id)
	}
	if q.queries != 0 {
		t.Fatalf("expected no query for empty description, got %d", q.queries)
	}
}
