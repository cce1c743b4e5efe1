package mysql

import (
	"context"
	"embed"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MySQL error numbers surfaced on constraint violations.
const (
	errDuplicateEntry = 1062
	errCheckViolation = 3819
)

// Bootstrap applies the embedded schema to the database. It is idempotent:
// running it on every startup against an already provisioned database is a
// no-op.
func Bootstrap(db *sqlx.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}

	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return errors.Wrap(err, "init migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "mysql", driver)
	if err != nil {
		return errors.Wrap(err, "init migrate")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}

// ProductRepository persists catalog rows in the products table.
type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productRow struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
}

func (r *ProductRepository) Insert(ctx context.Context, p model.Snapshot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, quantity, price) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Quantity, p.Price,
	)
	if err != nil {
		return wrapStoreError(err, "insert product")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return wrapStoreError(err, "delete product")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET quantity = ? WHERE id = ?`, quantity, id)
	if err != nil {
		return wrapStoreError(err, "update quantity")
	}
	return nil
}

func (r *ProductRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET price = ? WHERE id = ?`, price, id)
	if err != nil {
		return wrapStoreError(err, "update price")
	}
	return nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Snapshot, error) {
	var rows []productRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, quantity, price FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	out := make([]model.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Snapshot{
			ID:       row.ID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		})
	}
	return out, nil
}

// wrapStoreError translates MySQL constraint violations into the domain
// integrity error; anything else is passed through with context.
func wrapStoreError(err error, msg string) error {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDuplicateEntry, errCheckViolation:
			return errors.Wrapf(model.ErrIntegrity, "%s: %s", msg, myErr.Message)
		}
	}
	return errors.Wrap(err, msg)
}
