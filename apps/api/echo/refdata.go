package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hopenndrive/admin/core/entity"
)

// recordForm is any bindable payload that cleans itself and yields a record.
type recordForm[T any] interface {
	Validate() error
	Record() T
}

type crudApi[T any, F recordForm[T]] struct {
	store   *entity.Store[T]
	newForm func() F
}

// registerCrudAPI mounts the uniform list/create/replace/delete endpoints one
// reference collection gets. All of them require authentication.
func registerCrudAPI[T any, F recordForm[T]](
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	name string,
	store *entity.Store[T],
	newForm func() F,
) {
	api := crudApi[T, F]{store: store, newForm: newForm}

	cg := g.Group("/"+name, jwt)
	cg.GET("", api.list)
	cg.POST("", api.create)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

func (api *crudApi[T, F]) list(ctx echo.Context) error {
	records, err := api.store.List(ctx.Request().Context())
	if err != nil {
		return wrapStoreErr(err, "listing records")
	}
	if records == nil {
		records = []T{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *crudApi[T, F]) create(ctx echo.Context) error {
	form := api.newForm()
	if err := ctx.Bind(form); err != nil {
		return errors.Wrap(err, "binding record form")
	}
	if err := form.Validate(); err != nil {
		return err
	}

	rec, err := api.store.Create(ctx.Request().Context(), form.Record())
	if err != nil {
		return wrapStoreErr(err, "creating record")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *crudApi[T, F]) update(ctx echo.Context) error {
	form := api.newForm()
	if err := ctx.Bind(form); err != nil {
		return errors.Wrap(err, "binding record form")
	}
	if err := form.Validate(); err != nil {
		return err
	}

	rec, err := api.store.Update(ctx.Request().Context(), ctx.Param("id"), form.Record())
	if err != nil {
		return wrapStoreErr(err, "updating record")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *crudApi[T, F]) destroy(ctx echo.Context) error {
	if err := api.store.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return wrapStoreErr(err, "deleting record")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func wrapStoreErr(err error, msg string) error {
	switch errors.Cause(err) {
	case entity.ErrNotFound:
		return errHttpNotFound
	case entity.ErrTimeout:
		return errHttpTimeout
	}
	return errors.Wrap(err, msg)
}
