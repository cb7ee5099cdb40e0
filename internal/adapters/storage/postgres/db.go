package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// DB wraps the connection pool and hands scoped transactions to the
// repositories in this package.
type DB struct {
	sql *sql.DB
	log *zap.Logger
}

// Open opens a pgx-backed pool against dsn and verifies connectivity.
func Open(dsn string, log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{sql: db, log: log}, nil
}

func (d *DB) Close() error { return d.sql.Close() }

// inTx runs fn inside one transaction: commit when fn returns nil, rollback
// on any error. The error from fn is returned unwrapped so sentinel checks
// still work at the call site.
func (d *DB) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}

	txID := uuid.NewString()
	d.log.Debug("transaction started", zap.String("op", op), zap.String("tx_id", txID))

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%s: %v (rollback: %v)", op, err, rbErr)
		}
		d.log.Warn("transaction rolled back",
			zap.String("op", op), zap.String("tx_id", txID), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	d.log.Debug("transaction committed", zap.String("op", op), zap.String("tx_id", txID))
	return nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
