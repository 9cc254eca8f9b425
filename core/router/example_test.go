package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/externref/macro/core/handler"
	"github.com/externref/macro/core/response"
	"github.com/externref/macro/core/router"
)

func ExampleNew() {
	r := router.New[*router.Context]()

	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.String("Hello, World!")
	})

	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
		return response.String("Hello, " + ctx.Param("name") + "!")
	})

	r.Get("/items/{id:int}", func(ctx *router.Context) handler.Response {
		id, _ := ctx.Params().Int("id")
		return response.JSON(map[string]any{"id": id})
	})

	req := httptest.NewRequest(http.MethodGet, "/hello/gopher", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	fmt.Println(w.Body.String())
	// Output: Hello, gopher!
}
