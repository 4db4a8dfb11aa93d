package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) ProductGet(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductGet")
	defer span.End()

	p, err := s.repoDB.GetProduct(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product", "product_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return p, nil
}
