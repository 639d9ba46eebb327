package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/payment"
)

func Test_paymentApi_accessGate(t *testing.T) {
	ta := newTestApp(t)

	educatorToken := ta.educatorToken(t)
	parentToken := ta.parentToken(t)

	forbidden := marshalObj(t, errPermissionDenied)
	empty := marshalList(t)

	tests := []httpTest{
		{name: "query: auth required", method: http.MethodGet, path: "/v1/payments", wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken)},
		{name: "query: parent allowed", method: http.MethodGet, path: "/v1/payments", token: parentToken, wantCode: http.StatusOK, wantData: empty},
		{name: "query: educator forbidden", method: http.MethodGet, path: "/v1/payments", token: educatorToken, wantCode: http.StatusForbidden, wantData: forbidden},
		{name: "create: parent forbidden", method: http.MethodPost, path: "/v1/payments", token: parentToken, wantCode: http.StatusForbidden, wantData: forbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			ta.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_paymentApi_markPaidFlow(t *testing.T) {
	ta := newTestApp(t)
	adminToken := ta.adminToken(t)

	naomi, err := ta.childSvc.Create(child.NewChild{
		Name:       "Naomi Tshiala",
		BirthDate:  "2021-03-14",
		ParentName: "Grace Tshiala",
	})
	if err != nil {
		t.Fatalf("childSvc.Create() failed: %v", err)
	}

	req, rec := newAuthRequest(http.MethodPost, "/v1/payments", adminToken, marshalObj(t, payment.NewPayment{
		ChildID:       naomi.ID,
		Amount:        15000,
		DueDate:       "2024-02-01",
		InvoiceNumber: "INV-1",
	}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed! code = %v, body = %s", rec.Code, rec.Body.String())
	}
	var created payment.Payment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if created.Status != payment.StatusPending {
		t.Errorf("status = %q, want %q", created.Status, payment.StatusPending)
	}
	if created.ChildName != "Naomi Tshiala" || created.ParentName != "Grace Tshiala" {
		t.Error("expected child and parent names to be snapshotted on create")
	}

	req, rec = newAuthRequest(http.MethodPut, "/v1/payments/"+created.ID, adminToken, marshalObj(t, payment.UpdatePayment{
		Status:   payment.StatusPaid,
		PaidDate: "2024-01-28",
	}))
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed! code = %v, body = %s", rec.Code, rec.Body.String())
	}
	var marked payment.Payment
	if err := json.Unmarshal(rec.Body.Bytes(), &marked); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if marked.Status != payment.StatusPaid || marked.PaidDate != "2024-01-28" {
		t.Errorf("marked = %q/%q, want paid/2024-01-28", marked.Status, marked.PaidDate)
	}
	if marked.Amount != 15000 || marked.InvoiceNumber != "INV-1" || marked.DueDate != "2024-02-01" {
		t.Error("update overwrote fields that were not provided")
	}

	// payments cannot be deleted; the route does not exist
	req, rec = newAuthRequest(http.MethodDelete, "/v1/payments/"+created.ID, adminToken)
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("delete: code = %v, want %v", rec.Code, http.StatusMethodNotAllowed)
	}

	got, err := ta.paymentSvc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("paymentSvc.GetByID() failed: %v", err)
	}
	if got.Status != payment.StatusPaid {
		t.Errorf("stored status = %q, want %q", got.Status, payment.StatusPaid)
	}
}
