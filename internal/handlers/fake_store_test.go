package handlers

import (
	"context"
	"reflect"

	"github.com/hellofixo/fixit-admin/internal/store"
)

// fakeStore returns canned rows per table and records writes.
type fakeStore struct {
	rows   map[string]any
	totals map[string]int64
	err    error

	lastListParams store.ListParams

	updates []fakeUpdate
	inserts []any
	deletes []store.Filter
}

type fakeUpdate struct {
	table  string
	patch  map[string]any
	filter store.Filter
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:   map[string]any{},
		totals: map[string]int64{},
	}
}

func (f *fakeStore) List(ctx context.Context, table string, dest any, p store.ListParams) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.lastListParams = p

	if rows, ok := f.rows[table]; ok {
		reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(rows))
	}
	return f.totals[table], nil
}

func (f *fakeStore) GetByID(ctx context.Context, table string, id string, dest any) error {
	return f.err
}

func (f *fakeStore) Insert(ctx context.Context, table string, rows any) error {
	if f.err != nil {
		return f.err
	}
	f.inserts = append(f.inserts, rows)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, table string, patch map[string]any, fl store.Filter) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, fakeUpdate{table: table, patch: patch, filter: fl})
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, table string, fl store.Filter) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, fl)
	return nil
}

var _ store.Store = (*fakeStore)(nil)

// nopSink drops audit events in handler tests.
type nopSink struct{}

func (nopSink) Log(actorID *string, action, entity, entityID string, metadata any) error {
	return nil
}
