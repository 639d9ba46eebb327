package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/schedule"
)

type scheduleApi struct {
	svc *schedule.Service
}

func registerScheduleAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *schedule.Service, readGate, writeGate echo.MiddlewareFunc) {
	api := scheduleApi{svc: svc}

	sg := g.Group("/schedule-events", jwt)
	sg.GET("", api.query, readGate)
	sg.POST("", api.create, writeGate)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve, readGate)
	dg.PUT("", api.update, writeGate)
	dg.DELETE("", api.destroy, writeGate)
}

func (api *scheduleApi) create(ctx echo.Context) error {
	var data schedule.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	evt, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating schedule event")
	}
	return ctx.JSON(http.StatusCreated, evt)
}

func (api *scheduleApi) query(ctx echo.Context) error {
	filter := new(schedule.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []schedule.Event{})
	}
	filter.Clean()

	var events []schedule.Event
	var err error
	if filter.IsEmpty() {
		events, err = api.svc.QueryAll()
	} else {
		events, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying schedule events")
	}
	if events == nil {
		events = []schedule.Event{}
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	evt, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding schedule event by ID")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	var data schedule.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	evt, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating schedule event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == schedule.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "deleting schedule event")
	}
	return ctx.NoContent(http.StatusNoContent)
}
