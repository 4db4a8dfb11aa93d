package db

import (
	"context"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

const queryListProducts = `
SELECT id, category_id, name, description, price::text, stock, is_available, image_url, created_at
FROM products
WHERE ($1::bigint IS NULL OR category_id = $1)
ORDER BY created_at DESC`

func (s *DB) ListProducts(ctx context.Context, filter entity.ProductFilter) (_ []entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "ListProducts")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListProducts, filter.CategoryID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err = rows.Scan(
			&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.IsAvailable, &p.ImageURL, &p.CreatedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		items = append(items, p)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

const queryGetProduct = `
SELECT id, category_id, name, description, price::text, stock, is_available, image_url, created_at
FROM products
WHERE id = $1`

func (s *DB) GetProduct(ctx context.Context, id int64) (_ *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "GetProduct")
	defer func() { s.endSpan(span, err) }()

	var p entity.Product
	if err = s.conn.QueryRow(ctx, queryGetProduct, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.IsAvailable, &p.ImageURL, &p.CreatedAt,
	); err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

const queryCreateProduct = `
INSERT INTO products (id, category_id, name, description, price, stock, is_available, image_url, created_at)
VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, '', $8)`

func (s *DB) CreateProduct(ctx context.Context, p entity.Product) (err error) {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateProduct,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.IsAvailable, p.CreatedAt,
	)
	return s.mapError(err)
}

const queryUpdateProduct = `
UPDATE products
SET category_id = $2, name = $3, description = $4, price = $5::numeric, stock = $6, is_available = $7
WHERE id = $1`

func (s *DB) UpdateProduct(ctx context.Context, p entity.Product) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProduct")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryUpdateProduct,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Stock, p.IsAvailable,
	)
	return s.mapError(err)
}

const queryDeleteProduct = `
DELETE FROM products WHERE id = $1`

func (s *DB) DeleteProduct(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteProduct")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteProduct, id)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const queryUpdateProductImage = `
UPDATE products SET image_url = $2 WHERE id = $1`

func (s *DB) UpdateProductImage(ctx context.Context, id int64, imageURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryUpdateProductImage, id, imageURL)
	return s.mapError(err)
}
