package usecase

import (
	"context"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) ProductUpdate(ctx context.Context, id int64, in ProductInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductUpdate")
	defer span.End()

	current, err := s.ProductGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateProductInput(ctx, &in); err != nil {
		return nil, err
	}

	p := entity.Product{
		ID:          id,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsAvailable: in.IsAvailable,
		ImageURL:    current.ImageURL,
		CreatedAt:   current.CreatedAt,
	}

	if err := s.repoDB.UpdateProduct(ctx, p); err != nil {
		slog.ErrorContext(ctx, "failed to repo update product", "product_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &p, nil
}
