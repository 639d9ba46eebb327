package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/document"
)

type documentApi struct {
	svc *document.Service
}

func registerDocumentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *document.Service, adminGate echo.MiddlewareFunc) {
	api := documentApi{svc: svc}

	docg := g.Group("/documents", jwt, adminGate)
	docg.GET("", api.query)
	docg.POST("", api.create)

	dg := docg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

func (api *documentApi) create(ctx echo.Context) error {
	var data document.NewDocument
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDocument")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	d, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating document")
	}
	return ctx.JSON(http.StatusCreated, d)
}

func (api *documentApi) query(ctx echo.Context) error {
	filter := new(document.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []document.Document{})
	}
	filter.Clean()

	var docs []document.Document
	var err error
	if filter.IsEmpty() {
		docs, err = api.svc.QueryAll()
	} else {
		docs, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying documents")
	}
	if docs == nil {
		docs = []document.Document{}
	}
	return ctx.JSON(http.StatusOK, docs)
}

func (api *documentApi) retrieve(ctx echo.Context) error {
	d, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == document.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding document by ID")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *documentApi) update(ctx echo.Context) error {
	var data document.UpdateDocument
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDocument")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	d, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == document.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating document")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *documentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == document.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "deleting document")
	}
	return ctx.NoContent(http.StatusNoContent)
}
