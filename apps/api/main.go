package main

import (
	"log"
	"os"

	"github.com/bahati/malezi/apps/api/echo"
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
	"github.com/bahati/malezi/services/email"
	"github.com/bahati/malezi/services/logger"
	"github.com/bahati/malezi/storage/database/inmem"
)

func main() {
	wd, err := os.Getwd()
	errAndDie(err)
	conf := core.NewConfig(wd)

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)
	var appLogger core.Logger
	if conf.Debug {
		appLogger = logsvc.NewStdLogger(std)
	} else {
		appLogger = logsvc.NewRollbarLogger(std, conf)
	}

	db, err := inmemdb.Open(conf)
	errAndDie(err)

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(appLogger, conf)
	}

	childRepo := inmemdb.NewChildRepository(db)
	educatorRepo := inmemdb.NewEducatorRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	childSvc := child.NewService(childRepo)
	educatorSvc := educator.NewService(educatorRepo)
	courseSvc := course.NewService(courseRepo, educatorRepo)
	paymentSvc := payment.NewService(inmemdb.NewPaymentRepository(db), childRepo)
	preregSvc := prereg.NewService(inmemdb.NewPreRegistrationRepository(db), mailSvc, conf)
	documentSvc := document.NewService(inmemdb.NewDocumentRepository(db), childRepo)
	scheduleSvc := schedule.NewService(inmemdb.NewScheduleRepository(db), courseRepo, educatorRepo)
	expenseSvc := expense.NewService(inmemdb.NewExpenseRepository(db))

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:   conf.Addr(),
			Conf:   conf,
			Logger: appLogger,

			UserSvc:     usrSvc,
			ChildSvc:    childSvc,
			EducatorSvc: educatorSvc,
			CourseSvc:   courseSvc,
			PaymentSvc:  paymentSvc,
			PreregSvc:   preregSvc,
			DocumentSvc: documentSvc,
			ScheduleSvc: scheduleSvc,
			ExpenseSvc:  expenseSvc,
		},
	)
	appLogger.Info("starting API server on " + conf.Addr())
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
