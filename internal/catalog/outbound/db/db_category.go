package db

import (
	"context"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

const queryListCategories = `
SELECT id, name FROM categories ORDER BY name`

func (s *DB) ListCategories(ctx context.Context) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "ListCategories")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListCategories)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	items := make([]entity.Category, 0)
	for rows.Next() {
		var cat entity.Category
		if err = rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, s.mapError(err)
		}
		items = append(items, cat)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return items, nil
}

const queryGetCategory = `
SELECT id, name FROM categories WHERE id = $1`

func (s *DB) GetCategory(ctx context.Context, id int64) (_ *entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategory")
	defer func() { s.endSpan(span, err) }()

	var cat entity.Category
	if err = s.conn.QueryRow(ctx, queryGetCategory, id).Scan(&cat.ID, &cat.Name); err != nil {
		return nil, s.mapError(err)
	}

	return &cat, nil
}

const queryCreateCategory = `
INSERT INTO categories (id, name) VALUES ($1, $2)`

func (s *DB) CreateCategory(ctx context.Context, cat entity.Category) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCategory")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateCategory, cat.ID, cat.Name)
	return s.mapError(err)
}

const queryUpdateCategory = `
UPDATE categories SET name = $2 WHERE id = $1`

func (s *DB) UpdateCategory(ctx context.Context, cat entity.Category) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateCategory")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryUpdateCategory, cat.ID, cat.Name)
	return s.mapError(err)
}

const queryDeleteCategory = `
DELETE FROM categories WHERE id = $1`

func (s *DB) DeleteCategory(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCategory")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryDeleteCategory, id)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
