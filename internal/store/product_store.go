package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
)

// ProductStore is the MySQL-backed Catalog.
type ProductStore struct {
	DB *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{DB: db}
}

// GetProduct returns the product with the given id, or ErrNotFound.
func (s *ProductStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, slug, description, price, image_urls, category, created_at, updated_at
		FROM products
		WHERE id = ?`

	var p models.Product
	var imagesJSON sql.NullString

	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&imagesJSON,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}

	if err := unmarshalImages(imagesJSON, &p.ImageURLs); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns the catalog, newest first, optionally filtered to a
// single category.
func (s *ProductStore) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	query := `
		SELECT id, name, slug, description, price, image_urls, category, created_at, updated_at
		FROM products`
	args := []interface{}{}

	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var imagesJSON sql.NullString

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.Price,
			&imagesJSON,
			&p.Category,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan product row")
		}

		if err := unmarshalImages(imagesJSON, &p.ImageURLs); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CreateProduct inserts a new product. The caller is expected to have set
// ID and Slug already (the handler generates both).
func (s *ProductStore) CreateProduct(ctx context.Context, p *models.Product) error {
	imagesJSON, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return errors.Wrap(err, "marshal image urls")
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO products (id, name, slug, description, price, image_urls, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, imagesJSON, p.Category, p.CreatedAt, p.UpdatedAt)
	return errors.Wrap(err, "insert product")
}

// UpdateProduct rewrites every editable field of the product row.
func (s *ProductStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	imagesJSON, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return errors.Wrap(err, "marshal image urls")
	}

	p.UpdatedAt = time.Now()

	query := `
		UPDATE products
		SET name = ?, slug = ?, description = ?, price = ?, image_urls = ?, category = ?, updated_at = ?
		WHERE id = ?`

	result, err := s.DB.ExecContext(ctx, query,
		p.Name, p.Slug, p.Description, p.Price, imagesJSON, p.Category, p.UpdatedAt, p.ID)
	if err != nil {
		return errors.Wrap(err, "update product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "check affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes the product row. Already-placed orders keep their
// own snapshot of the product, so deletion never touches order history.
func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "check affected rows")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func unmarshalImages(raw sql.NullString, dst *[]string) error {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw.String), dst); err != nil {
		return errors.Wrap(err, "unmarshal image urls")
	}
	return nil
}
