package inbound

import (
	"net/http"
	"time"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

func newCategoryResponse(cat entity.Category) CategoryResponse {
	return CategoryResponse{ID: cat.ID, Name: cat.Name}
}

type CategoryCreatedResponse struct {
	CategoryResponse
}

func (CategoryCreatedResponse) StatusCode() int {
	return http.StatusCreated
}

type ProductRequest struct {
	Category    int64  `json:"category,string"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int32  `json:"stock"`
	IsAvailable bool   `json:"is_available"`
}

type ProductResponse struct {
	ID          int64     `json:"id,string"`
	Category    int64     `json:"category,string"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int32     `json:"stock"`
	IsAvailable bool      `json:"is_available"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Category:    p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		IsAvailable: p.IsAvailable,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

type ProductCreatedResponse struct {
	ProductResponse
}

func (ProductCreatedResponse) StatusCode() int {
	return http.StatusCreated
}
