package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)

		cat, err := env.uc.CategoryCreate(t.Context(), CategoryInput{Name: "  Electronics  "})
		require.NoError(t, err)
		assert.Equal(t, "Electronics", cat.Name)
		assert.NotZero(t, cat.ID)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")

		_, err := env.uc.CategoryCreate(t.Context(), CategoryInput{Name: "Electronics"})
		requireBusinessError(t, err, "Validation error", http.StatusBadRequest)
	})

	t.Run("MissingName", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.CategoryCreate(t.Context(), CategoryInput{Name: "   "})
		require.Error(t, err)
	})
}

func TestCategoryGet(t *testing.T) {
	env := newTestEnv(t)
	seedCategory(env, 1, "Electronics")

	cat, err := env.uc.CategoryGet(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", cat.Name)

	_, err = env.uc.CategoryGet(t.Context(), 404)
	requireBusinessError(t, err, "Not found.", http.StatusNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")

		cat, err := env.uc.CategoryUpdate(t.Context(), 1, CategoryInput{Name: "Gadgets"})
		require.NoError(t, err)
		assert.Equal(t, "Gadgets", cat.Name)
		assert.Equal(t, "Gadgets", env.db.categories[1].Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.CategoryUpdate(t.Context(), 404, CategoryInput{Name: "Gadgets"})
		requireBusinessError(t, err, "Not found.", http.StatusNotFound)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		env := newTestEnv(t)
		seedCategory(env, 1, "Electronics")
		seedCategory(env, 2, "Gadgets")

		_, err := env.uc.CategoryUpdate(t.Context(), 1, CategoryInput{Name: "Gadgets"})
		requireBusinessError(t, err, "Validation error", http.StatusBadRequest)
	})
}

func TestCategoryDelete(t *testing.T) {
	env := newTestEnv(t)
	seedCategory(env, 1, "Electronics")

	require.NoError(t, env.uc.CategoryDelete(t.Context(), 1))
	assert.Empty(t, env.db.categories)

	err := env.uc.CategoryDelete(t.Context(), 1)
	requireBusinessError(t, err, "Not found.", http.StatusNotFound)
}

func TestCategoryList(t *testing.T) {
	env := newTestEnv(t)
	seedCategory(env, 1, "Electronics")
	seedCategory(env, 2, "Books")

	items, err := env.uc.CategoryList(t.Context())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
