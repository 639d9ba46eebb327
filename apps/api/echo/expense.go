package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/expense"
)

type expenseApi struct {
	svc *expense.Service
}

func registerExpenseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *expense.Service, adminGate echo.MiddlewareFunc) {
	api := expenseApi{svc: svc}

	eg := g.Group("/expenses", jwt, adminGate)
	eg.GET("", api.query)
	eg.POST("", api.create)

	dg := eg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

func (api *expenseApi) create(ctx echo.Context) error {
	var data expense.NewExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	e, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating expense")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *expenseApi) query(ctx echo.Context) error {
	filter := new(expense.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []expense.Expense{})
	}
	filter.Clean()

	var expenses []expense.Expense
	var err error
	if filter.IsEmpty() {
		expenses, err = api.svc.QueryAll()
	} else {
		expenses, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying expenses")
	}
	if expenses == nil {
		expenses = []expense.Expense{}
	}
	return ctx.JSON(http.StatusOK, expenses)
}

func (api *expenseApi) retrieve(ctx echo.Context) error {
	e, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == expense.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding expense by ID")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *expenseApi) update(ctx echo.Context) error {
	var data expense.UpdateExpense
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExpense")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	e, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == expense.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating expense")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *expenseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		if errors.Cause(err) == expense.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "deleting expense")
	}
	return ctx.NoContent(http.StatusNoContent)
}
