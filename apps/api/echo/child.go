package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/child"
)

type childApi struct {
	svc *child.Service
}

func registerChildAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *child.Service, readGate, writeGate echo.MiddlewareFunc) {
	api := childApi{svc: svc}

	cg := g.Group("/children", jwt)
	cg.GET("", api.query, readGate)
	cg.POST("", api.create, writeGate)

	dg := cg.Group("/:id")
	dg.GET("", api.retrieve, readGate)
	dg.PUT("", api.update, writeGate)
	dg.DELETE("", api.destroy, writeGate)
}

func (api *childApi) create(ctx echo.Context) error {
	var data child.NewChild
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewChild")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	c, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating child")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *childApi) query(ctx echo.Context) error {
	filter := new(child.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []child.Child{})
	}
	filter.Clean()

	var children []child.Child
	var err error
	if filter.IsEmpty() {
		children, err = api.svc.QueryAll()
	} else {
		children, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying children")
	}
	if children == nil {
		children = []child.Child{}
	}
	return ctx.JSON(http.StatusOK, children)
}

func (api *childApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == child.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding child by ID")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *childApi) update(ctx echo.Context) error {
	var data child.UpdateChild
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateChild")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	c, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == child.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating child")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *childApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == child.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "deleting child")
	}
	return ctx.NoContent(http.StatusNoContent)
}
