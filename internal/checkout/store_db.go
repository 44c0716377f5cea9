package checkout

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

const queryTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS receipts (
	id         TEXT PRIMARY KEY,
	visitor_id TEXT NOT NULL,
	subtotal   BIGINT NOT NULL,
	shipping   BIGINT NOT NULL,
	total      BIGINT NOT NULL,
	status     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS receipt_items (
	receipt_id TEXT NOT NULL REFERENCES receipts(id),
	position   INT NOT NULL,
	product_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	qty        INT NOT NULL,
	line_total BIGINT NOT NULL,
	PRIMARY KEY (receipt_id, position)
);`

// PostgresStore keeps receipts in Postgres through the pgx stdlib driver.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) Create(ctx context.Context, r Receipt) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (id, visitor_id, subtotal, shipping, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.VisitorID, r.Subtotal, r.Shipping, r.Total, r.Status, r.CreatedAt)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO receipt_items (receipt_id, position, product_id, name, qty, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range r.Items {
		if _, err := stmt.ExecContext(ctx, r.ID, i, it.ProductID, it.Name, it.Qty, it.LineTotal); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Receipt, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var r Receipt
	err := s.db.QueryRowContext(ctx, `
		SELECT id, visitor_id, subtotal, shipping, total, status, created_at
		FROM receipts
		WHERE id = $1
	`, id).Scan(&r.ID, &r.VisitorID, &r.Subtotal, &r.Shipping, &r.Total, &r.Status, &r.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Receipt{}, false, nil
	}
	if err != nil {
		return Receipt{}, false, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, name, qty, line_total
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position ASC
	`, id)
	if err != nil {
		return Receipt{}, false, err
	}
	defer rows.Close()

	items := make([]Item, 0, 8)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Qty, &it.LineTotal); err != nil {
			return Receipt{}, false, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return Receipt{}, false, err
	}
	r.Items = items

	return r, true, nil
}
