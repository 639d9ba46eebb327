package main

import (
	"log"
	"os"

	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/schedule"
	"github.com/bahati/malezi/core/user"
	"github.com/bahati/malezi/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	wd, err := os.Getwd()
	errAndDie(err)
	conf := core.NewConfig(wd)

	db, err := inmemdb.Open(conf)
	errAndDie(err)

	childRepo := inmemdb.NewChildRepository(db)
	educatorRepo := inmemdb.NewEducatorRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	cli := commandLine{
		usrSvc:      user.NewService(inmemdb.NewUserRepository(db)),
		childSvc:    child.NewService(childRepo),
		educatorSvc: educator.NewService(educatorRepo),
		courseSvc:   course.NewService(courseRepo, educatorRepo),
		paymentSvc:  payment.NewService(inmemdb.NewPaymentRepository(db), childRepo),
		scheduleSvc: schedule.NewService(inmemdb.NewScheduleRepository(db), courseRepo, educatorRepo),
		expenseSvc:  expense.NewService(inmemdb.NewExpenseRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
