package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresBackend executes reads and commits through a shared *sqlx.DB. One
// Apply call runs in one transaction.
type PostgresBackend struct {
	db *sqlx.DB
}

func NewPostgresBackend(db *sqlx.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Get(ctx context.Context, table string, dest any, id int64) error {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(columnsOf(dest), ", "), table,
	)
	if err := b.db.GetContext(ctx, dest, query, id); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound().WithDetail("table", table).WithDetail("id", id)
		}
		return ErrPersistence(err).WithDetail("table", table)
	}
	return nil
}

func (b *PostgresBackend) Select(ctx context.Context, table string, dest any) error {
	query := fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY id`,
		strings.Join(sliceColumns(dest), ", "), table,
	)
	if err := b.db.SelectContext(ctx, dest, query); err != nil {
		return ErrPersistence(err).WithDetail("table", table)
	}
	return nil
}

func (b *PostgresBackend) Apply(ctx context.Context, changes []*Change) (int, error) {
	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, ErrPersistence(err)
	}
	defer tx.Rollback()

	affected := 0
	for _, c := range changes {
		n, err := b.apply(ctx, tx, c)
		if err != nil {
			return 0, err
		}
		affected += n
	}

	if err := tx.Commit(); err != nil {
		return 0, ErrPersistence(err)
	}
	return affected, nil
}

func (b *PostgresBackend) apply(ctx context.Context, tx *sqlx.Tx, c *Change) (int, error) {
	switch c.Op {
	case OpInsert:
		return b.insert(ctx, tx, c)
	case OpUpdate:
		return b.update(ctx, tx, c)
	case OpDelete:
		return b.delete(ctx, tx, c)
	}
	return 0, ErrPersistence(fmt.Errorf("unknown change op %d", c.Op))
}

func (b *PostgresBackend) insert(ctx context.Context, tx *sqlx.Tx, c *Change) (int, error) {
	cols := columnsOf(c.Entity)
	if c.ID == 0 {
		// Fresh row: let the sequence assign the key.
		cols = withoutColumn(cols, "id")
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		c.Table, strings.Join(cols, ", "), namedPlaceholders(cols),
	)

	bound, args, err := sqlx.Named(query, c.Entity)
	if err != nil {
		return 0, ErrPersistence(err).WithDetail("table", c.Table)
	}

	var id int64
	if err := tx.QueryRowxContext(ctx, tx.Rebind(bound), args...).Scan(&id); err != nil {
		return 0, mapPqError(err, c.Table)
	}
	if c.Assign != nil {
		c.Assign(id)
	}
	return 1, nil
}

func (b *PostgresBackend) update(ctx context.Context, tx *sqlx.Tx, c *Change) (int, error) {
	cols := withoutColumn(columnsOf(c.Entity), "id")

	assignments := make([]string, 0, len(cols))
	for _, col := range cols {
		if col == "is_deleted" {
			// A soft-deleted row stays deleted no matter what the entity says.
			assignments = append(assignments, "is_deleted = is_deleted OR :is_deleted")
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = :id`,
		c.Table, strings.Join(assignments, ", "),
	)

	result, err := tx.NamedExecContext(ctx, query, c.Entity)
	if err != nil {
		return 0, mapPqError(err, c.Table)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, ErrPersistence(err).WithDetail("table", c.Table)
	}
	if rows == 0 {
		return 0, ErrNotFound().WithDetail("table", c.Table).WithDetail("id", c.ID)
	}
	return int(rows), nil
}

func (b *PostgresBackend) delete(ctx context.Context, tx *sqlx.Tx, c *Change) (int, error) {
	result, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.Table), c.ID)
	if err != nil {
		return 0, mapPqError(err, c.Table)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, ErrPersistence(err).WithDetail("table", c.Table)
	}
	if rows == 0 {
		return 0, ErrNotFound().WithDetail("table", c.Table).WithDetail("id", c.ID)
	}
	return int(rows), nil
}

func mapPqError(err error, table string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrConflict().WithDetail("table", table).WithDetail("constraint", pqErr.Constraint)
		case "23503": // foreign_key_violation
			return ErrPersistence(err).WithDetail("table", table).WithDetail("constraint", pqErr.Constraint)
		}
	}
	return ErrPersistence(err).WithDetail("table", table)
}

func namedPlaceholders(cols []string) string {
	named := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
	}
	return strings.Join(named, ", ")
}
