package inbound

import (
	"context"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/catalog/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/router"
)

type uc interface {
	CategoryList(ctx context.Context) ([]entity.Category, error)
	CategoryGet(ctx context.Context, id int64) (*entity.Category, error)
	CategoryCreate(ctx context.Context, in usecase.CategoryInput) (*entity.Category, error)
	CategoryUpdate(ctx context.Context, id int64, in usecase.CategoryInput) (*entity.Category, error)
	CategoryDelete(ctx context.Context, id int64) error

	ProductList(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	ProductGet(ctx context.Context, id int64) (*entity.Product, error)
	ProductCreate(ctx context.Context, in usecase.ProductInput, idempotencyKey string) (*entity.Product, error)
	ProductUpdate(ctx context.Context, id int64, in usecase.ProductInput) (*entity.Product, error)
	ProductDelete(ctx context.Context, id int64) error
	ProductImage(ctx context.Context, id int64, in usecase.ProductImageInput) (*entity.Product, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Categories
	r.GET("/categories/", end.CategoryList)
	r.POST("/categories/", end.CategoryCreate)
	r.GET("/categories/:id/", end.CategoryGet)
	r.PUT("/categories/:id/", end.CategoryUpdate)
	r.DELETE("/categories/:id/", end.CategoryDelete)

	// Products
	r.GET("/products/", end.ProductList)
	r.POST("/products/", end.ProductCreate)
	r.GET("/products/:id/", end.ProductGet)
	r.PUT("/products/:id/", end.ProductUpdate)
	r.DELETE("/products/:id/", end.ProductDelete)
	r.PUT("/products/:id/image/", end.ProductImage)
}
