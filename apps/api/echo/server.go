package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/document"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/prereg"
	"github.com/bahati/malezi/core/schedule"
	"github.com/bahati/malezi/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Conf   *core.Config
		Logger core.Logger

		UserSvc     *user.Service
		ChildSvc    *child.Service
		EducatorSvc *educator.Service
		CourseSvc   *course.Service
		PaymentSvc  *payment.Service
		PreregSvc   *prereg.Service
		DocumentSvc *document.Service
		ScheduleSvc *schedule.Service
		ExpenseSvc  *expense.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(metricsMiddleware())
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, func() {
		_ = s.Stop(context.Background())
	})
	s.app.Debug = conf.Debug

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")
	kit := newAuthKit(conf)
	jwt := kit.middleware()

	// Role allow-lists per protected resource. This is the one place
	// where routes and roles meet; handlers never re-check roles.
	adminOnly := roleMiddleware(kit, user.RoleAdmin)
	staffOnly := roleMiddleware(kit, user.RoleAdmin, user.RoleEducator)
	anyRole := roleMiddleware(kit, user.RoleAdmin, user.RoleEducator, user.RoleParent)
	billing := roleMiddleware(kit, user.RoleAdmin, user.RoleParent)

	registerUserAPI(v1, jwt, kit, s.opts.UserSvc, adminOnly)
	registerChildAPI(v1, jwt, s.opts.ChildSvc, anyRole, adminOnly)
	registerEducatorAPI(v1, jwt, s.opts.EducatorSvc, staffOnly, adminOnly)
	registerCourseAPI(v1, jwt, s.opts.CourseSvc, anyRole, adminOnly)
	registerPaymentAPI(v1, jwt, s.opts.PaymentSvc, billing, adminOnly)
	registerPreRegistrationAPI(v1, jwt, s.opts.PreregSvc, adminOnly)
	registerDocumentAPI(v1, jwt, s.opts.DocumentSvc, adminOnly)
	registerScheduleAPI(v1, jwt, s.opts.ScheduleSvc, staffOnly, adminOnly)
	registerExpenseAPI(v1, jwt, s.opts.ExpenseSvc, adminOnly)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Malezi API!")
}
