package inbound

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/catalog/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	listFilter     entity.ProductFilter
	createIn       usecase.ProductInput
	idempotencyKey string
	imageID        int64
	imageIn        usecase.ProductImageInput
	imageBody      []byte
}

func (f *fakeUsecase) CategoryList(context.Context) ([]entity.Category, error) {
	return []entity.Category{{ID: 1, Name: "Electronics"}}, nil
}

func (f *fakeUsecase) CategoryGet(_ context.Context, id int64) (*entity.Category, error) {
	return &entity.Category{ID: id, Name: "Electronics"}, nil
}

func (f *fakeUsecase) CategoryCreate(_ context.Context, in usecase.CategoryInput) (*entity.Category, error) {
	return &entity.Category{ID: 1, Name: in.Name}, nil
}

func (f *fakeUsecase) CategoryUpdate(_ context.Context, id int64, in usecase.CategoryInput) (*entity.Category, error) {
	return &entity.Category{ID: id, Name: in.Name}, nil
}

func (f *fakeUsecase) CategoryDelete(context.Context, int64) error { return nil }

func (f *fakeUsecase) ProductList(_ context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	f.listFilter = filter
	return nil, nil
}

func (f *fakeUsecase) ProductGet(_ context.Context, id int64) (*entity.Product, error) {
	return &entity.Product{ID: id, CategoryID: 1, Name: "Keyboard", Price: "129.99"}, nil
}

func (f *fakeUsecase) ProductCreate(_ context.Context, in usecase.ProductInput, idempotencyKey string) (*entity.Product, error) {
	f.createIn = in
	f.idempotencyKey = idempotencyKey
	return &entity.Product{ID: 9, CategoryID: in.CategoryID, Name: in.Name, Price: in.Price}, nil
}

func (f *fakeUsecase) ProductUpdate(_ context.Context, id int64, in usecase.ProductInput) (*entity.Product, error) {
	return &entity.Product{ID: id, CategoryID: in.CategoryID, Name: in.Name, Price: in.Price}, nil
}

func (f *fakeUsecase) ProductDelete(context.Context, int64) error { return nil }

func (f *fakeUsecase) ProductImage(_ context.Context, id int64, in usecase.ProductImageInput) (*entity.Product, error) {
	f.imageID = id
	f.imageIn = in
	body, err := io.ReadAll(in.File)
	if err != nil {
		return nil, err
	}
	f.imageBody = body
	return &entity.Product{ID: id, ImageURL: "https://media.example.com/x.png"}, nil
}

func withParams(req *http.Request, params httprouter.Params) *router.Request {
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return &router.Request{Request: req.WithContext(ctx)}
}

func TestProductListEndpoint(t *testing.T) {
	t.Run("NoFilter", func(t *testing.T) {
		end := &HTTPEndpoint{uc: &fakeUsecase{}}

		req := &router.Request{Request: httptest.NewRequest(http.MethodGet, "/products/", nil)}
		_, err := end.ProductList(req)
		require.NoError(t, err)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		uc := &fakeUsecase{}
		end := &HTTPEndpoint{uc: uc}

		req := &router.Request{Request: httptest.NewRequest(http.MethodGet, "/products/?category=3", nil)}
		_, err := end.ProductList(req)
		require.NoError(t, err)
		require.NotNil(t, uc.listFilter.CategoryID)
		assert.Equal(t, int64(3), *uc.listFilter.CategoryID)
	})

	t.Run("BadCategoryFilter", func(t *testing.T) {
		end := &HTTPEndpoint{uc: &fakeUsecase{}}

		req := &router.Request{Request: httptest.NewRequest(http.MethodGet, "/products/?category=abc", nil)}
		_, err := end.ProductList(req)
		require.Error(t, err)
	})
}

func TestProductCreateEndpoint(t *testing.T) {
	uc := &fakeUsecase{}
	end := &HTTPEndpoint{uc: uc}

	body := `{
		"category": "1",
		"name": "Keyboard",
		"price": "129.99",
		"stock": 10,
		"is_available": true
	}`
	httpReq := httptest.NewRequest(http.MethodPost, "/products/", strings.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", "key-1")

	resp, err := end.ProductCreate(&router.Request{Request: httpReq})
	require.NoError(t, err)

	assert.Equal(t, "key-1", uc.idempotencyKey)
	assert.Equal(t, int64(1), uc.createIn.CategoryID)

	out, ok := resp.(ProductCreatedResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, out.StatusCode())
	assert.Equal(t, int64(9), out.ID)
}

func TestProductGetEndpoint(t *testing.T) {
	end := &HTTPEndpoint{uc: &fakeUsecase{}}

	httpReq := httptest.NewRequest(http.MethodGet, "/products/9/", nil)
	resp, err := end.ProductGet(withParams(httpReq, httprouter.Params{{Key: "id", Value: "9"}}))
	require.NoError(t, err)

	out, ok := resp.(ProductResponse)
	require.True(t, ok)
	assert.Equal(t, int64(9), out.ID)
}

func TestProductGetEndpointBadID(t *testing.T) {
	end := &HTTPEndpoint{uc: &fakeUsecase{}}

	httpReq := httptest.NewRequest(http.MethodGet, "/products/x/", nil)
	_, err := end.ProductGet(withParams(httpReq, httprouter.Params{{Key: "id", Value: "x"}}))
	require.Error(t, err)
}

func TestProductImageEndpoint(t *testing.T) {
	uc := &fakeUsecase{}
	end := &HTTPEndpoint{uc: uc}

	// Minimal PNG header so content sniffing resolves to image/png.
	payload := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600)...)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	httpReq := httptest.NewRequest(http.MethodPut, "/products/9/image/", &buf)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	_, err = end.ProductImage(withParams(httpReq, httprouter.Params{{Key: "id", Value: "9"}}))
	require.NoError(t, err)

	assert.Equal(t, int64(9), uc.imageID)
	assert.Equal(t, "image/png", uc.imageIn.ContentType)
	// The sniffed head bytes must be stitched back onto the stream.
	assert.Equal(t, payload, uc.imageBody)
}
