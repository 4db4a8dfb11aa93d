package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/idempotency"
)

type ProductInput struct {
	CategoryID  int64  `validate:"required"`
	Name        string `validate:"required,max=255"`
	Description string `validate:"omitempty"`
	Price       string `validate:"required,numeric"`
	Stock       int32  `validate:"gte=0"`
	IsAvailable bool
}

// ProductCreate inserts a product. When the caller supplies an idempotency
// key, a replayed request is rejected instead of inserting a duplicate.
func (s *Usecase) ProductCreate(ctx context.Context, in ProductInput, idempotencyKey string) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	if err := s.validateProductInput(ctx, &in); err != nil {
		return nil, err
	}

	p := entity.Product{
		ID:          s.uid.Generate(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsAvailable: in.IsAvailable,
		CreatedAt:   s.clock.Now(),
	}

	create := func(ctx context.Context) error {
		return s.repoDB.CreateProduct(ctx, p)
	}

	var err error
	if idempotencyKey == "" {
		err = create(ctx)
	} else {
		err = s.idemp.Exec(ctx, "catalog:product:create:"+idempotencyKey, create)
		if errors.Is(err, idempotency.ErrAlreadyCompleted) || errors.Is(err, idempotency.ErrAlreadyInProgress) {
			return nil, goerror.NewBusiness("Request with this Idempotency-Key was already processed.", goerror.CodeConflict)
		}
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create product", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &p, nil
}

// validateProductInput runs tag validation plus the referential and decimal
// checks shared by create and update.
func (s *Usecase) validateProductInput(ctx context.Context, in *ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Price = strings.TrimSpace(in.Price)

	if err := s.validator.Validate(*in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if price, err := strconv.ParseFloat(in.Price, 64); err != nil || price < 0 {
		return goerror.NewInvalidInput(nil, "price", "A valid non-negative number is required.")
	}

	_, err := s.repoDB.GetCategory(ctx, in.CategoryID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewInvalidInput(nil, "category",
			fmt.Sprintf("Invalid pk %q - object does not exist.", strconv.FormatInt(in.CategoryID, 10)))
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category", "category_id", in.CategoryID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
