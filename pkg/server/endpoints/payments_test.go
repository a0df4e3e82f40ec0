package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

func TestMarkPaid(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	payment := &model.RentPayment{ID: 42, OrganizationID: orgID, Amount: 15000, Status: model.PaymentPending}

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageBilling), nil)
	stores.Payments.On("Get", uint(42)).Return(payment, nil)
	stores.Payments.On("MarkPaid", uint(42), model.MethodCash, "RCPT-1").
		Return(&model.RentPayment{ID: 42, OrganizationID: orgID, Status: model.PaymentCompleted}, nil)

	rec := doRequest(t, s, "POST", "/payments/42/mark-paid", MarkPaidRequest{
		Method:        model.MethodCash,
		TransactionID: "RCPT-1",
	}, 7, &orgID, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.RentPayment
	decodeBody(t, rec, &resp)
	assert.Equal(t, model.PaymentCompleted, resp.Status)
}

func TestMarkPaidAlreadyCompleted(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	payment := &model.RentPayment{ID: 42, OrganizationID: orgID, Status: model.PaymentCompleted}

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(ownerRoles(), nil)
	stores.Payments.On("Get", uint(42)).Return(payment, nil)
	stores.Payments.On("MarkPaid", uint(42), model.MethodCash, "").
		Return(nil, store.ErrValidation)

	rec := doRequest(t, s, "POST", "/payments/42/mark-paid", MarkPaidRequest{}, 7, &orgID, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMarkPaidRequiresAuth(t *testing.T) {
	s, stores := newTestServer()

	rec := doRequest(t, s, "POST", "/payments/42/mark-paid", MarkPaidRequest{}, 0, nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	stores.Payments.AssertNotCalled(t, "Get", mock.Anything)
}

func TestMarkPaidCrossTenantReads404(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Payments.On("Get", uint(42)).
		Return(&model.RentPayment{ID: 42, OrganizationID: 5}, nil)

	rec := doRequest(t, s, "POST", "/payments/42/mark-paid", MarkPaidRequest{}, 7, &orgID, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	stores.Payments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestSTKPush(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	payment := &model.RentPayment{ID: 42, OrganizationID: orgID, Amount: 15000, LateFee: 500}

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionManageBilling), nil)
	stores.Payments.On("Get", uint(42)).Return(payment, nil)
	stores.Payments.On("CreateMpesa", mock.MatchedBy(func(a *model.MpesaPayment) bool {
		return a.RentPaymentID == 42 && a.Amount == 15500 && a.PhoneNumber == "254712345678"
	})).Return(nil)

	rec := doRequest(t, s, "POST", "/payments/42/mpesa", STKPushEndpointRequest{
		PhoneNumber: "0712345678",
	}, 7, &orgID, false)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	stores.Payments.AssertExpectations(t)
}

func TestMpesaCallbackCompletes(t *testing.T) {
	s, stores := newTestServer()

	code := 0
	stores.Payments.On("ApplyMpesaResult", mock.MatchedBy(func(r store.MpesaResult) bool {
		return r.CheckoutRequestID == "ws_CO_abc" && r.ResultCode == 0 && r.Receipt == "QK12XYZ"
	})).Return(&model.MpesaPayment{
		RentPaymentID:     42,
		OrganizationID:    3,
		CheckoutRequestID: "ws_CO_abc",
		MpesaReceipt:      "QK12XYZ",
		ResultCode:        &code,
	}, nil)

	// Gateway webhook carries no bearer token.
	rec := doRequest(t, s, "POST", "/mpesa/callback", MpesaCallbackRequest{
		CheckoutRequestID: "ws_CO_abc",
		ResultCode:        0,
		ResultDescription: "The service request is processed successfully.",
		MpesaReceipt:      "QK12XYZ",
		TransactionDate:   "20260828143000",
	}, 0, nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	stores.Payments.AssertExpectations(t)
}

func TestMpesaCallbackUnknownCheckout(t *testing.T) {
	s, stores := newTestServer()

	stores.Payments.On("ApplyMpesaResult", mock.Anything).Return(nil, store.ErrNotFound)

	rec := doRequest(t, s, "POST", "/mpesa/callback", MpesaCallbackRequest{
		CheckoutRequestID: "ws_CO_unknown",
		ResultCode:        1032,
		ResultDescription: "Request cancelled by user",
	}, 0, nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPaymentsRequiresViewReports(t *testing.T) {
	s, stores := newTestServer()
	orgID := uint(3)

	stores.Memberships.On("ActiveMembershipRoles", mock.Anything, uint(7), orgID).
		Return(memberRoles(rbac.PermissionViewDashboard), nil)

	rec := doRequest(t, s, "GET", "/payments", nil, 7, &orgID, false)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
