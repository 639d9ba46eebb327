package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/bahati/malezi/core/prereg"
	"github.com/bahati/malezi/services/email"
)

func Test_preregApi_publicSubmission(t *testing.T) {
	ta := newTestApp(t)
	emailsvc.ClearSentMessages()

	// submission needs no account
	req, rec := newRequest(http.MethodPost, "/v1/pre-registrations", marshalObj(t, prereg.NewPreRegistration{
		ChildName:          "Esther Mbuyi",
		ChildBirthDate:     "2022-06-10",
		ParentName:         "Sarah Mbuyi",
		ParentEmail:        "sarah@test.cd",
		PreferredStartDate: "2024-09-02",
		Plan:               prereg.PlanFullTime,
	}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed! code = %v, body = %s", rec.Code, rec.Body.String())
	}
	var created prereg.PreRegistration
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if created.Status != prereg.StatusPending {
		t.Errorf("status = %q, want %q", created.Status, prereg.StatusPending)
	}

	// the staff inbox is notified
	if len(emailsvc.SentMessages) != 1 {
		t.Fatalf("sent messages = %d, want 1", len(emailsvc.SentMessages))
	}
	staffMsg := emailsvc.SentMessages[0]
	if staffMsg.To[0].Address != ta.conf.StaffEmail {
		t.Errorf("staff email to = %q, want %q", staffMsg.To[0].Address, ta.conf.StaffEmail)
	}
	if !strings.Contains(staffMsg.Subject, "Esther Mbuyi") {
		t.Errorf("staff email subject = %q, want the child's name in it", staffMsg.Subject)
	}

	// an invalid submission is rejected with field errors
	req, rec = newRequest(http.MethodPost, "/v1/pre-registrations", marshalObj(t, prereg.NewPreRegistration{
		ChildName: "No Parent",
		Plan:      "lol",
	}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid create: code = %v, want %v", rec.Code, http.StatusBadRequest)
	}
}

func Test_preregApi_reviewIsAdminOnly(t *testing.T) {
	ta := newTestApp(t)

	adminToken := ta.adminToken(t)
	parentToken := ta.parentToken(t)

	submitted, err := ta.preregSvc.Create(prereg.NewPreRegistration{
		ChildName:      "Esther Mbuyi",
		ChildBirthDate: "2022-06-10",
		ParentName:     "Sarah Mbuyi",
		ParentEmail:    "sarah@test.cd",
		Plan:           prereg.PlanHalfDay,
	})
	if err != nil {
		t.Fatalf("preregSvc.Create() failed: %v", err)
	}

	forbidden := marshalObj(t, errPermissionDenied)

	tests := []httpTest{
		{name: "query: auth required", method: http.MethodGet, path: "/v1/pre-registrations", wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken)},
		{name: "query: parent forbidden", method: http.MethodGet, path: "/v1/pre-registrations", token: parentToken, wantCode: http.StatusForbidden, wantData: forbidden},
		{name: "query: admin allowed", method: http.MethodGet, path: "/v1/pre-registrations", token: adminToken, wantCode: http.StatusOK, wantData: marshalList(t, submitted)},
		{name: "retrieve: parent forbidden", method: http.MethodGet, path: "/v1/pre-registrations/" + submitted.ID, token: parentToken, wantCode: http.StatusForbidden, wantData: forbidden},
		{name: "update: parent forbidden", method: http.MethodPut, path: "/v1/pre-registrations/" + submitted.ID, body: marshalObj(t, prereg.UpdatePreRegistration{Status: prereg.StatusApproved}), token: parentToken, wantCode: http.StatusForbidden, wantData: forbidden},
		{name: "delete: no such route", method: http.MethodDelete, path: "/v1/pre-registrations/" + submitted.ID, token: adminToken, wantCode: http.StatusMethodNotAllowed},
		{name: "retrieve: unknown id", method: http.MethodGet, path: "/v1/pre-registrations/no-such-id", token: adminToken, wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "pre-registration not found"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			ta.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_preregApi_approvalNotifiesParent(t *testing.T) {
	ta := newTestApp(t)
	adminToken := ta.adminToken(t)

	submitted, err := ta.preregSvc.Create(prereg.NewPreRegistration{
		ChildName:      "Esther Mbuyi",
		ChildBirthDate: "2022-06-10",
		ParentName:     "Sarah Mbuyi",
		ParentEmail:    "sarah@test.cd",
		Plan:           prereg.PlanPartTime,
	})
	if err != nil {
		t.Fatalf("preregSvc.Create() failed: %v", err)
	}
	emailsvc.ClearSentMessages()

	req, rec := newAuthRequest(http.MethodPut, "/v1/pre-registrations/"+submitted.ID, adminToken,
		marshalObj(t, prereg.UpdatePreRegistration{Status: prereg.StatusApproved}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve failed! code = %v, body = %s", rec.Code, rec.Body.String())
	}

	if len(emailsvc.SentMessages) != 1 {
		t.Fatalf("sent messages = %d, want 1", len(emailsvc.SentMessages))
	}
	msg := emailsvc.SentMessages[0]
	if msg.To[0].Address != "sarah@test.cd" {
		t.Errorf("approval email to = %q, want %q", msg.To[0].Address, "sarah@test.cd")
	}
	emailsvc.ClearSentMessages()

	// approving again is not a transition; no second email
	req, rec = newAuthRequest(http.MethodPut, "/v1/pre-registrations/"+submitted.ID, adminToken,
		marshalObj(t, prereg.UpdatePreRegistration{Status: prereg.StatusApproved}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("re-approve failed! code = %v, body = %s", rec.Code, rec.Body.String())
	}
	if len(emailsvc.SentMessages) != 0 {
		t.Errorf("sent messages = %d, want 0", len(emailsvc.SentMessages))
	}
}
