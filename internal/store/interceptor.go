package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Querier is the executor contract: SQL text with positional parameters in,
// row cursor out. *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryInterceptor logs every statement at debug level before handing it to
// the wrapped Querier.
type QueryInterceptor struct {
	q      Querier
	logger *zap.SugaredLogger
}

func NewQueryInterceptor(q Querier) QueryInterceptor {
	return QueryInterceptor{q: q, logger: zap.S().Named("query")}
}

func (i QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := i.q.QueryContext(ctx, query, args...)
	i.log("query", query, args, start, err)
	return rows, err
}

func (i QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := i.q.QueryRowContext(ctx, query, args...)
	i.log("query_row", query, args, start, row.Err())
	return row
}

func (i QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := i.q.ExecContext(ctx, query, args...)
	i.log("exec", query, args, start, err)
	return res, err
}

func (i QueryInterceptor) log(kind, query string, args []any, start time.Time, err error) {
	if err != nil {
		i.logger.Debugw(kind, "sql", query, "args", args, "duration", time.Since(start), "error", err)
		return
	}
	i.logger.Debugw(kind, "sql", query, "args", args, "duration", time.Since(start))
}
