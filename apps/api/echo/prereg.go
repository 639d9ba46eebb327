package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/prereg"
)

type preregApi struct {
	svc *prereg.Service
}

// Pre-registration submission is open to prospective parents without an
// account; review is staff-only and there is no delete.
func registerPreRegistrationAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *prereg.Service, adminGate echo.MiddlewareFunc) {
	api := preregApi{svc: svc}

	pg := g.Group("/pre-registrations")
	pg.POST("", api.create)

	ag := pg.Group("", jwt, adminGate)
	ag.GET("", api.query)

	dg := pg.Group("/:id", jwt, adminGate)
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
}

func (api *preregApi) create(ctx echo.Context) error {
	var data prereg.NewPreRegistration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPreRegistration")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pr, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating pre-registration")
	}
	return ctx.JSON(http.StatusCreated, pr)
}

func (api *preregApi) query(ctx echo.Context) error {
	filter := new(prereg.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []prereg.PreRegistration{})
	}
	filter.Clean()

	var regs []prereg.PreRegistration
	var err error
	if filter.IsEmpty() {
		regs, err = api.svc.QueryAll()
	} else {
		regs, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying pre-registrations")
	}
	if regs == nil {
		regs = []prereg.PreRegistration{}
	}
	return ctx.JSON(http.StatusOK, regs)
}

func (api *preregApi) retrieve(ctx echo.Context) error {
	pr, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == prereg.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding pre-registration by ID")
	}
	return ctx.JSON(http.StatusOK, pr)
}

func (api *preregApi) update(ctx echo.Context) error {
	var data prereg.UpdatePreRegistration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePreRegistration")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pr, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == prereg.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating pre-registration")
	}
	return ctx.JSON(http.StatusOK, pr)
}
