package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samber/lo"
	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/catalog/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the product and category catalog.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) CategoryList(r *router.Request) (any, error) {
	items, err := h.uc.CategoryList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(item entity.Category, _ int) CategoryResponse {
		return newCategoryResponse(item)
	}), nil
}

func (h *HTTPEndpoint) CategoryGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	cat, err := h.uc.CategoryGet(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return newCategoryResponse(*cat), nil
}

func (h *HTTPEndpoint) CategoryCreate(r *router.Request) (any, error) {
	var req CategoryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	cat, err := h.uc.CategoryCreate(r.Context(), usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return CategoryCreatedResponse{CategoryResponse: newCategoryResponse(*cat)}, nil
}

func (h *HTTPEndpoint) CategoryUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req CategoryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	cat, err := h.uc.CategoryUpdate(r.Context(), id, usecase.CategoryInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return newCategoryResponse(*cat), nil
}

func (h *HTTPEndpoint) CategoryDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.CategoryDelete(r.Context(), id)
}

func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	var filter entity.ProductFilter
	if raw := r.GetQuery("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, goerror.NewInvalidFormat("category must be a number")
		}
		filter.CategoryID = &id
	}

	items, err := h.uc.ProductList(r.Context(), filter)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(item entity.Product, _ int) ProductResponse {
		return newProductResponse(item)
	}), nil
}

func (h *HTTPEndpoint) ProductGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.ProductGet(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return newProductResponse(*p), nil
}

func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProductCreate(r.Context(), usecase.ProductInput{
		CategoryID:  req.Category,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsAvailable: req.IsAvailable,
	}, r.Header.Get("Idempotency-Key"))
	if err != nil {
		return nil, err
	}

	return ProductCreatedResponse{ProductResponse: newProductResponse(*p)}, nil
}

func (h *HTTPEndpoint) ProductUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProductUpdate(r.Context(), id, usecase.ProductInput{
		CategoryID:  req.Category,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return nil, err
	}

	return newProductResponse(*p), nil
}

func (h *HTTPEndpoint) ProductDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.ProductDelete(r.Context(), id)
}

func (h *HTTPEndpoint) ProductImage(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	p, err := h.uc.ProductImage(ctx, id, usecase.ProductImageInput{
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return newProductResponse(*p), nil
}
