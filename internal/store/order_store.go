package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/order"
)

// OrderStore is the MySQL-backed Orders repository.
type OrderStore struct {
	DB *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// Create writes the order row and its item snapshot in one transaction, so
// a failure leaves no partial order behind.
func (s *OrderStore) Create(ctx context.Context, o *models.Order) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders
		(id, name, email, phone, address, city, state, postal_code, country, notes, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, orderQuery,
		o.ID,
		o.Customer.Name,
		o.Customer.Email,
		o.Customer.Phone,
		o.Customer.Address,
		o.Customer.City,
		o.Customer.State,
		o.Customer.PostalCode,
		o.Customer.Country,
		o.Customer.Notes,
		o.Total,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, image)
		VALUES (?, ?, ?, ?, ?, ?)`

	for _, item := range o.Items {
		_, err := tx.ExecContext(ctx, itemQuery,
			o.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity, item.Image)
		if err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}

	return errors.Wrap(tx.Commit(), "commit order")
}

// List returns every order, most recent first, with item snapshots attached.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, name, email, phone, address, city, state, postal_code, country, notes, total, status, created_at
		FROM orders
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate order rows")
	}

	for i := range orders {
		items, err := s.itemsFor(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// Get returns one order with its item snapshot, or ErrNotFound.
func (s *OrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, name, email, phone, address, city, state, postal_code, country, notes, total, status, created_at
		FROM orders
		WHERE id = ?`

	row := s.DB.QueryRowContext(ctx, query, id)
	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := s.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// UpdateStatus writes a new status for the order. The write is idempotent;
// lifecycle legality is checked by the caller against the current status.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE orders SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "check affected rows")
	}
	// 0 affected rows can also mean "status already had this value" on
	// MySQL, so only a missing order row counts as not found.
	if affected == 0 {
		var exists int
		err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM orders WHERE id = ?", id).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "verify order exists")
		}
	}
	return nil
}

// CountByStatus returns the number of orders currently in the given status.
func (s *OrderStore) CountByStatus(ctx context.Context, status order.Status) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE status = ?", string(status)).Scan(&count)
	return count, errors.Wrap(err, "count orders by status")
}

func (s *OrderStore) itemsFor(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, unit_price, quantity, image
		FROM order_items
		WHERE order_id = ?
		ORDER BY id ASC`

	rows, err := s.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "query order items")
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.Image,
		); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		items = append(items, item)
	}

	return items, errors.Wrap(rows.Err(), "iterate order items")
}

// scanOrder scans one orders row through the given Scan function, so the
// same column list serves both QueryRow and Query paths.
func scanOrder(scan func(dest ...interface{}) error) (*models.Order, error) {
	var o models.Order
	var notes sql.NullString

	err := scan(
		&o.ID,
		&o.Customer.Name,
		&o.Customer.Email,
		&o.Customer.Phone,
		&o.Customer.Address,
		&o.Customer.City,
		&o.Customer.State,
		&o.Customer.PostalCode,
		&o.Customer.Country,
		&notes,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan order row")
	}

	if notes.Valid {
		o.Customer.Notes = &notes.String
	}
	return &o, nil
}
