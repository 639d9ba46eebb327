package main

import (
	"bytes"
	"testing"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/schedule"
	"github.com/bahati/malezi/core/user"
	"github.com/bahati/malezi/storage/database/inmem"
	"github.com/bahati/malezi/tests"
)

func setup(t *testing.T) *commandLine {
	db, err := inmemdb.Open(testutil.NewConfig())
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}

	childRepo := inmemdb.NewChildRepository(db)
	educatorRepo := inmemdb.NewEducatorRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	return &commandLine{
		usrSvc:      user.NewService(inmemdb.NewUserRepository(db)),
		childSvc:    child.NewService(childRepo),
		educatorSvc: educator.NewService(educatorRepo),
		courseSvc:   course.NewService(courseRepo, educatorRepo),
		paymentSvc:  payment.NewService(inmemdb.NewPaymentRepository(db), childRepo),
		scheduleSvc: schedule.NewService(inmemdb.NewScheduleRepository(db), courseRepo, educatorRepo),
		expenseSvc:  expense.NewService(inmemdb.NewExpenseRepository(db)),
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "username but no email", args: []string{"adduser", "-username", "mamadou"}, wantErr: errHelp},
		{name: "no password", args: []string{"adduser", "-username", "mamadou", "-email", "mamadou@test.cd"}, wantErr: errHelp},
		{
			name: "create", args: []string{"adduser", "-name", "Mamadou", "-username", "mamadou", "-email", "mamadou@test.cd"},
			extra: extra{pwd: "s3cret"},
		},
		{
			name: "update existing (promote to admin)", args: []string{"adduser", "-username", "mamadou", "-email", "mamadou@test.cd", "-admin"},
			extra: extra{pwd: "n3w-s3cret"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			usr, err := cli.usrSvc.GetByUsernameOrEmail("mamadou")
			if err != nil {
				t.Fatalf("GetByUsernameOrEmail() failed: %v", err)
			}
			if extra, ok := tt.extra.(extra); ok {
				if err := usr.CheckPassword(extra.pwd); err != nil {
					t.Error("failed to set new password")
				}
			}
		})
	}

	usr, err := cli.usrSvc.GetByUsernameOrEmail("mamadou")
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail() failed: %v", err)
	}
	if !usr.IsAdmin() {
		t.Error("expected user to be promoted to admin")
	}
}

func Test_commandLine_addUser_passwordNotReused(t *testing.T) {
	cli := setup(t)

	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("first"), nil }
	if err := cli.run([]string{"admin", "adduser", "-username", "awa123", "-email", "awa@test.cd"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	before, err := cli.usrSvc.GetByUsernameOrEmail("awa123")
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail() failed: %v", err)
	}

	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("second"), nil }
	if err := cli.run([]string{"admin", "adduser", "-username", "awa123", "-email", "awa@test.cd"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	after, err := cli.usrSvc.GetByUsernameOrEmail("awa123")
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail() failed: %v", err)
	}

	if after.ID != before.ID {
		t.Error("expected the existing user to be updated, not recreated")
	}
	if bytes.Equal(after.PasswordHash, before.PasswordHash) {
		t.Error("failed to update new password")
	}
}

func Test_commandLine_seedAndList(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run(seed) failed: %v", err)
	}

	children, err := cli.childSvc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(children) != 2 {
		t.Errorf("children = %d, want 2", len(children))
	}
	payments, err := cli.paymentSvc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("payments = %d, want 1", len(payments))
	}
	if payments[0].ChildName != "Naomi Tshiala" {
		t.Errorf("payment child snapshot = %q, want %q", payments[0].ChildName, "Naomi Tshiala")
	}

	tests := []cliTest{
		{name: "list: no entity", args: []string{"list"}, wantErr: errHelp},
		{name: "list: unknown entity", args: []string{"list", "-entity", "lol"}, wantErrStr: `"lol": no such entity`},
		{name: "list children", args: []string{"list", "-entity", "children"}},
		{name: "list children filtered", args: []string{"list", "-entity", "children", "-search", "naomi"}},
		{name: "list educators", args: []string{"list", "-entity", "educators"}},
		{name: "list courses", args: []string{"list", "-entity", "courses"}},
		{name: "list payments", args: []string{"list", "-entity", "payments"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}
