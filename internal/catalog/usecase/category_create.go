package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

type CategoryInput struct {
	Name string `validate:"required,max=255"`
}

func (s *Usecase) CategoryCreate(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "CategoryCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cat := entity.Category{ID: s.uid.Generate(), Name: in.Name}
	if err := s.repoDB.CreateCategory(ctx, cat); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewInvalidInput(nil, "name", "category with this name already exists.")
		}
		slog.ErrorContext(ctx, "failed to repo create category", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &cat, nil
}
