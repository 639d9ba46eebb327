package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/educator"
)

type educatorApi struct {
	svc *educator.Service
}

func registerEducatorAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *educator.Service, readGate, writeGate echo.MiddlewareFunc) {
	api := educatorApi{svc: svc}

	eg := g.Group("/educators", jwt)
	eg.GET("", api.query, readGate)
	eg.POST("", api.create, writeGate)

	dg := eg.Group("/:id")
	dg.GET("", api.retrieve, readGate)
	dg.PUT("", api.update, writeGate)
	dg.DELETE("", api.destroy, writeGate)
}

func (api *educatorApi) create(ctx echo.Context) error {
	var data educator.NewEducator
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEducator")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	e, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating educator")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *educatorApi) query(ctx echo.Context) error {
	filter := new(educator.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []educator.Educator{})
	}
	filter.Clean()

	var educators []educator.Educator
	var err error
	if filter.IsEmpty() {
		educators, err = api.svc.QueryAll()
	} else {
		educators, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying educators")
	}
	if educators == nil {
		educators = []educator.Educator{}
	}
	return ctx.JSON(http.StatusOK, educators)
}

func (api *educatorApi) retrieve(ctx echo.Context) error {
	e, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == educator.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding educator by ID")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *educatorApi) update(ctx echo.Context) error {
	var data educator.UpdateEducator
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEducator")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	e, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == educator.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating educator")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *educatorApi) destroy(ctx echo.Context) error {
	// deleting an educator referenced by a course neither blocks nor
	// cascades; the course keeps its name snapshot
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == educator.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "deleting educator")
	}
	return ctx.NoContent(http.StatusNoContent)
}
