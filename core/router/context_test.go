package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/externref/macro/core/handler"
	"github.com/externref/macro/core/router"
)

// testCustomContext is a custom context type exercising the context factory.
type testCustomContext struct {
	w      http.ResponseWriter
	r      *http.Request
	params router.Params
	Tenant string
}

func (c *testCustomContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}
func (c *testCustomContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}
func (c *testCustomContext) Err() error {
	return c.r.Context().Err()
}
func (c *testCustomContext) Value(key any) any {
	return c.r.Context().Value(key)
}
func (c *testCustomContext) Request() *http.Request {
	return c.r
}
func (c *testCustomContext) ResponseWriter() http.ResponseWriter {
	return c.w
}
func (c *testCustomContext) Param(key string) string {
	return c.params.Raw(key)
}
func (c *testCustomContext) ParamValue(key string) any {
	v, _ := c.params.Get(key)
	return v
}
func (c *testCustomContext) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

func TestDefaultContext(t *testing.T) {
	t.Parallel()

	t.Run("exposes request and params", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/u/{name}/{id:int}", func(ctx *router.Context) handler.Response {
			assert.Equal(t, "/u/bob/5", ctx.Request().URL.Path)
			assert.Equal(t, "bob", ctx.Param("name"))
			assert.Equal(t, "5", ctx.Param("id"))
			assert.Equal(t, int64(5), ctx.ParamValue("id"))
			assert.Nil(t, ctx.ParamValue("missing"))
			return textResponse("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/u/bob/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set value is visible through context", func(t *testing.T) {
		t.Parallel()

		type ctxKey struct{}

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			ctx.SetValue(ctxKey{}, "stored")
			assert.Equal(t, "stored", ctx.Value(ctxKey{}))
			return textResponse("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delegates cancellation to request context", func(t *testing.T) {
		t.Parallel()

		reqCtx, cancel := context.WithCancel(context.Background())
		cancel()

		r := router.New[*router.Context]()
		r.Get("/", func(ctx *router.Context) handler.Response {
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
			select {
			case <-ctx.Done():
			default:
				t.Error("expected done channel to be closed")
			}
			return textResponse("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(reqCtx)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	})
}

func TestCustomContextFactory(t *testing.T) {
	t.Parallel()

	t.Run("factory builds custom contexts", func(t *testing.T) {
		t.Parallel()

		r := router.New[*testCustomContext](
			router.WithContextFactory(func(w http.ResponseWriter, req *http.Request, params router.Params) *testCustomContext {
				return &testCustomContext{w: w, r: req, params: params, Tenant: "acme"}
			}),
		)
		r.Get("/t/{id:int}", func(ctx *testCustomContext) handler.Response {
			assert.Equal(t, "acme", ctx.Tenant)
			assert.Equal(t, int64(9), ctx.ParamValue("id"))
			return textResponse("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/t/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom context without factory panics", func(t *testing.T) {
		t.Parallel()

		r := router.New[*testCustomContext]()
		r.Get("/", func(ctx *testCustomContext) handler.Response {
			return textResponse("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		require.Panics(t, func() {
			r.ServeHTTP(w, req)
		})
	})
}
