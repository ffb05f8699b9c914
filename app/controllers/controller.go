// Package controllers adapts HTTP requests to service calls.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

// respondError maps service errors onto HTTP statuses.
//
//	ErrNotFound        → 404
//	ErrRelatedNotFound → 400 "<Entity> with ID <id> not found"
//	ErrConstraint      → 409
//	anything else      → 500
func respondError(c *ctx.Context, err error) {
	var lookup *services.LookupError

	switch {
	case errors.Is(err, services.ErrRelatedNotFound) && errors.As(err, &lookup):
		c.Error(http.StatusBadRequest, lookup.Error())
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrConstraint):
		c.Error(http.StatusConflict, "The request conflicts with existing data")
	default:
		logger.WithCtx(c.Context()).Error("request failed", "error", err, "path", c.R.URL.Path)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
	}
}

// pathID reads the {id} path parameter. Non-numeric IDs answer 404.
func pathID(c *ctx.Context) (uint, bool) {
	n, ok := c.ParamUint("id")
	if !ok {
		c.NotFound()
	}
	return n, ok
}

// deleted writes 204 when a row was removed and 404 when it never existed.
func deleted(c *ctx.Context, ok bool, err error) {
	switch {
	case err != nil:
		respondError(c, err)
	case !ok:
		c.NotFound()
	default:
		c.Status(http.StatusNoContent)
	}
}
