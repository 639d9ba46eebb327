package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	. "github.com/bahati/malezi/apps/api/echo"
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
	"github.com/bahati/malezi/tests"
)

var (
	errMissingToken     = httpErr{Error: "missing or malformed jwt"}
	errPermissionDenied = httpErr{Error: "permission denied"}
)

// testApp wires a fresh in-memory store and server per test so records
// never leak between tests.
type testApp struct {
	conf *core.Config
	app  Server

	usrRepo     user.Repository
	usrSvc      *user.Service
	childSvc    *child.Service
	educatorSvc *educator.Service
	courseSvc   *course.Service
	paymentSvc  *payment.Service
	preregSvc   *prereg.Service
	documentSvc *document.Service
	scheduleSvc *schedule.Service
	expenseSvc  *expense.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	conf := testutil.NewConfig()

	db, err := inmemdb.Open(conf)
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}

	childRepo := inmemdb.NewChildRepository(db)
	educatorRepo := inmemdb.NewEducatorRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	ta := &testApp{
		conf:        conf,
		usrRepo:     inmemdb.NewUserRepository(db),
		childSvc:    child.NewService(childRepo),
		educatorSvc: educator.NewService(educatorRepo),
		courseSvc:   course.NewService(courseRepo, educatorRepo),
		paymentSvc:  payment.NewService(inmemdb.NewPaymentRepository(db), childRepo),
		preregSvc:   prereg.NewService(inmemdb.NewPreRegistrationRepository(db), emailsvc.NewConsoleServiceMock(conf), conf),
		documentSvc: document.NewService(inmemdb.NewDocumentRepository(db), childRepo),
		scheduleSvc: schedule.NewService(inmemdb.NewScheduleRepository(db), courseRepo, educatorRepo),
		expenseSvc:  expense.NewService(inmemdb.NewExpenseRepository(db)),
	}
	ta.usrSvc = user.NewService(ta.usrRepo)

	ta.app = NewServer(&Options{
		DisableReqLogs: true,
		Conf:           conf,
		Logger:         logsvc.NewStdLogger(log.New(io.Discard, "", 0)),

		UserSvc:     ta.usrSvc,
		ChildSvc:    ta.childSvc,
		EducatorSvc: ta.educatorSvc,
		CourseSvc:   ta.courseSvc,
		PaymentSvc:  ta.paymentSvc,
		PreregSvc:   ta.preregSvc,
		DocumentSvc: ta.documentSvc,
		ScheduleSvc: ta.scheduleSvc,
		ExpenseSvc:  ta.expenseSvc,
	})
	return ta
}

func (ta *testApp) adminToken(t *testing.T) string {
	usr := testutil.CreateUser(t, ta.usrRepo, "Admin", "admin1", "admin@test.cd", "", []string{user.RoleAdmin}, true)
	return getToken(t, ta.conf, usr)
}

func (ta *testApp) educatorToken(t *testing.T) string {
	usr := testutil.CreateUser(t, ta.usrRepo, "Educator", "educ01", "educ@test.cd", "", []string{user.RoleEducator}, true)
	return getToken(t, ta.conf, usr)
}

func (ta *testApp) parentToken(t *testing.T) string {
	usr := testutil.CreateUser(t, ta.usrRepo, "Parent", "parent1", "parent@test.cd", "", []string{user.RoleParent}, true)
	return getToken(t, ta.conf, usr)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	t.Helper()
	claims := GetUserClaims(conf, usr)
	token, err := GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func marshalList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshalList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
