package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) CategoryGet(ctx context.Context, id int64) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "CategoryGet")
	defer span.End()

	cat, err := s.repoDB.GetCategory(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category", "category_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return cat, nil
}
