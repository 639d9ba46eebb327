package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/payment"
)

type paymentApi struct {
	svc *payment.Service
}

// Payments have no delete route: records are corrected by update, never
// removed.
func registerPaymentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *payment.Service, readGate, writeGate echo.MiddlewareFunc) {
	api := paymentApi{svc: svc}

	pg := g.Group("/payments", jwt)
	pg.GET("", api.query, readGate)
	pg.POST("", api.create, writeGate)

	dg := pg.Group("/:id")
	dg.GET("", api.retrieve, readGate)
	dg.PUT("", api.update, writeGate)
}

func (api *paymentApi) create(ctx echo.Context) error {
	var data payment.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating payment")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *paymentApi) query(ctx echo.Context) error {
	filter := new(payment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []payment.Payment{})
	}
	filter.Clean()

	var payments []payment.Payment
	var err error
	if filter.IsEmpty() {
		payments, err = api.svc.QueryAll()
	} else {
		payments, err = api.svc.Filter(*filter)
	}
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	if payments == nil {
		payments = []payment.Payment{}
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *paymentApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == payment.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "finding payment by ID")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *paymentApi) update(ctx echo.Context) error {
	var data payment.UpdatePayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePayment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	p, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == payment.ErrNotFound {
			return httpNotFound(err)
		}
		return errors.Wrap(err, "updating payment")
	}
	return ctx.JSON(http.StatusOK, p)
}
