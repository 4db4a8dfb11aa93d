package usecase

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		created, err := env.uc.ProductCreate(t.Context(), validProductInput(1), "")
		require.NoError(t, err)

		out, err := env.uc.ProductImage(t.Context(), created.ID, ProductImageInput{
			File:        bytes.NewReader([]byte("fake-jpeg-bytes")),
			ContentType: "image/jpeg",
		})
		require.NoError(t, err)

		require.Len(t, env.storage.puts, 1)
		put := env.storage.puts[0]
		assert.Equal(t, "shoply-media", put.bucket)
		assert.Equal(t, "image/jpeg", put.contentType)
		assert.True(t, strings.HasPrefix(put.key, "products/"))
		assert.True(t, strings.HasSuffix(put.key, ".jpg"))

		assert.Equal(t, "https://media.example.com/"+put.key, out.ImageURL)
		assert.Equal(t, out.ImageURL, env.db.products[created.ID].ImageURL)
	})

	t.Run("UnsupportedContentType", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		created, err := env.uc.ProductCreate(t.Context(), validProductInput(1), "")
		require.NoError(t, err)

		_, err = env.uc.ProductImage(t.Context(), created.ID, ProductImageInput{
			File:        bytes.NewReader([]byte("%PDF-1.4")),
			ContentType: "application/pdf",
		})
		requireBusinessError(t, err, "Validation error", http.StatusBadRequest)
		assert.Empty(t, env.storage.puts)
	})

	t.Run("MissingFile", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		created, err := env.uc.ProductCreate(t.Context(), validProductInput(1), "")
		require.NoError(t, err)

		_, err = env.uc.ProductImage(t.Context(), created.ID, ProductImageInput{ContentType: "image/png"})
		require.Error(t, err)
	})

	t.Run("TooLarge", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		created, err := env.uc.ProductCreate(t.Context(), validProductInput(1), "")
		require.NoError(t, err)

		// Config caps uploads at 64 bytes.
		big := bytes.Repeat([]byte("x"), 65)
		_, err = env.uc.ProductImage(t.Context(), created.ID, ProductImageInput{
			File:        bytes.NewReader(big),
			ContentType: "image/png",
		})
		requireBusinessError(t, err, "Validation error", http.StatusBadRequest)
		assert.Empty(t, env.db.products[created.ID].ImageURL)
	})

	t.Run("ExactLimitAccepted", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		created, err := env.uc.ProductCreate(t.Context(), validProductInput(1), "")
		require.NoError(t, err)

		exact := bytes.Repeat([]byte("x"), 64)
		out, err := env.uc.ProductImage(t.Context(), created.ID, ProductImageInput{
			File:        bytes.NewReader(exact),
			ContentType: "image/webp",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ImageURL)
		require.Len(t, env.storage.puts, 1)
		assert.Equal(t, int64(64), env.storage.puts[0].size)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.ProductImage(t.Context(), 404, ProductImageInput{
			File:        bytes.NewReader([]byte("x")),
			ContentType: "image/png",
		})
		requireBusinessError(t, err, "Not found.", http.StatusNotFound)
	})
}
