package simple_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/externref/macro/app/simple"
)

func TestApp(t *testing.T) {
	t.Parallel()

	app, err := simple.NewApp()
	require.NoError(t, err)

	t.Run("root greets the world", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello, World!", w.Body.String())
	})

	t.Run("named greeting", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/hello/gopher", nil)
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello, gopher!", w.Body.String())
	})

	t.Run("typed item id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":42}`, w.Body.String())
	})

	t.Run("non-numeric item id is json 404", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/items/abc", nil)
		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}
