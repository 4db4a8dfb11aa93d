package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

func (s *Usecase) CategoryUpdate(ctx context.Context, id int64, in CategoryInput) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "CategoryUpdate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.CategoryGet(ctx, id); err != nil {
		return nil, err
	}

	cat := entity.Category{ID: id, Name: in.Name}
	if err := s.repoDB.UpdateCategory(ctx, cat); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewInvalidInput(nil, "name", "category with this name already exists.")
		}
		slog.ErrorContext(ctx, "failed to repo update category", "category_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &cat, nil
}
