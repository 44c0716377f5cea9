package catalog

import (
	"context"
	"database/sql"
	"time"
)

const queryTimeout = 3 * time.Second

// LoadPostgres reads the products table once. The result is frozen into a
// Catalog; later table changes are not observed.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, `
		SELECT id, name, price, description
		FROM products
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, 16)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return New(out)
}
