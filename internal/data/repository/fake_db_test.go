package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	SQL  string
	Args []any
}

// fakeDB implements database.PgxIface and records Exec calls
type fakeDB struct {
	mu       sync.Mutex
	ExecErr  error
	ExecTag  string
	Executed []execCall
}

func newFakeDB() *fakeDB {
	return &fakeDB{ExecTag: "INSERT 0 1"}
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Executed = append(f.Executed, execCall{SQL: sql, Args: args})
	if f.ExecErr != nil {
		return pgconn.CommandTag{}, f.ExecErr
	}
	return pgconn.NewCommandTag(f.ExecTag), nil
}

func (f *fakeDB) Ping(ctx context.Context) error {
	return nil
}

func (f *fakeDB) Close() {}
