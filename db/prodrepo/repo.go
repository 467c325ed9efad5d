package prodrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"github.com/stockd/inventory-service/core"
	"github.com/stockd/inventory-service/core/inventory"
	"github.com/stockd/inventory-service/db"
)

type dbRepo struct {
	conn core.Conn
}

func NewPostgresRepo(conn core.Conn) inventory.Repository {
	return &dbRepo{
		conn: conn,
	}
}

func (d *dbRepo) GetProduct(ctx context.Context, sku string, options ...core.QueryOptions) (*inventory.Product, error) {
	m := db.StartMetric("GetProduct")
	tx, forUpdate := db.GetQueryOptions(d.conn, options...)

	var (
		quantity  int64
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, `SELECT sku, quantity, updated_at FROM products WHERE sku = $1 `+forUpdate, sku).
		Scan(&sku, &quantity, &updatedAt)

	if err != nil {
		m.Complete(err)
		if err == pgx.ErrNoRows {
			return nil, errors.WithStack(core.ErrNotFound)
		}
		return nil, errors.WithStack(err)
	}

	m.Complete(nil)
	return inventory.Hydrate(sku, quantity, updatedAt), nil
}

func (d *dbRepo) GetAllProducts(ctx context.Context, limit, offset int, options ...core.QueryOptions) ([]*inventory.Product, error) {
	m := db.StartMetric("GetAllProducts")
	tx, forUpdate := db.GetQueryOptions(d.conn, options...)

	products := make([]*inventory.Product, 0)
	rows, err := tx.Query(ctx,
		`SELECT sku, quantity, updated_at FROM products ORDER BY sku LIMIT $1 OFFSET $2 `+forUpdate,
		limit, offset)
	if err != nil {
		m.Complete(err)
		if err == pgx.ErrNoRows {
			return products, nil
		}
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sku       string
			quantity  int64
			updatedAt time.Time
		)
		if err = rows.Scan(&sku, &quantity, &updatedAt); err != nil {
			m.Complete(err)
			return nil, errors.WithStack(err)
		}
		products = append(products, inventory.Hydrate(sku, quantity, updatedAt))
	}

	m.Complete(nil)
	return products, nil
}

func (d *dbRepo) CreateProduct(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
	m := db.StartMetric("CreateProduct")
	tx := db.GetUpdateOptions(d.conn, options...)

	_, err := tx.Exec(ctx, `
		INSERT INTO products (sku, quantity, updated_at)
                      VALUES ($1, $2, $3);`,
		product.Sku(), product.Quantity(), product.UpdatedAt())
	if err != nil {
		m.Complete(err)
		return errors.WithStack(err)
	}
	m.Complete(nil)
	return nil
}

func (d *dbRepo) SaveProduct(ctx context.Context, product *inventory.Product, options ...core.UpdateOptions) error {
	m := db.StartMetric("SaveProduct")
	tx := db.GetUpdateOptions(d.conn, options...)

	ct, err := tx.Exec(ctx, `
		UPDATE products
           SET quantity = $2, updated_at = $3
         WHERE sku = $1;`,
		product.Sku(), product.Quantity(), product.UpdatedAt())
	if err != nil {
		m.Complete(err)
		return errors.WithStack(err)
	}
	if ct.RowsAffected() == 0 {
		m.Complete(nil)
		return errors.WithStack(core.ErrNotFound)
	}
	m.Complete(nil)
	return nil
}

func (d *dbRepo) BeginTransaction(ctx context.Context) (core.Transaction, error) {
	tx, err := d.conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
