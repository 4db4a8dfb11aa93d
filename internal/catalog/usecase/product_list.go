package usecase

import (
	"context"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) ProductList(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	items, err := s.repoDB.ListProducts(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}
