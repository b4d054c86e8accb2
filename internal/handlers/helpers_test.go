package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/plant-journal/internal/middlewares"
)

// authedRequest builds a request carrying an authenticated user id and,
// optionally, chi URL parameters, the way the middleware stack would.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	ctx := middlewares.SetUserIDToContext(req.Context(), userID)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
