package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) ProductDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "ProductDelete")
	defer span.End()

	err := s.repoDB.DeleteProduct(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete product", "product_id", id, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
