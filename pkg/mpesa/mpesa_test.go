package mpesa

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

type mockPaymentsStore struct {
	mock.Mock
}

func (m *mockPaymentsStore) Create(payment *model.RentPayment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *mockPaymentsStore) Get(id uint) (*model.RentPayment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RentPayment), args.Error(1)
}

func (m *mockPaymentsStore) ListByOrg(orgID uint) ([]model.RentPayment, error) {
	args := m.Called(orgID)
	return args.Get(0).([]model.RentPayment), args.Error(1)
}

func (m *mockPaymentsStore) MarkPaid(id uint, method, transactionID string) (*model.RentPayment, error) {
	args := m.Called(id, method, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RentPayment), args.Error(1)
}

func (m *mockPaymentsStore) CreateMpesa(attempt *model.MpesaPayment) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *mockPaymentsStore) GetMpesaByCheckoutID(checkoutRequestID string) (*model.MpesaPayment, error) {
	args := m.Called(checkoutRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MpesaPayment), args.Error(1)
}

func (m *mockPaymentsStore) ApplyMpesaResult(result store.MpesaResult) (*model.MpesaPayment, error) {
	args := m.Called(result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MpesaPayment), args.Error(1)
}

func TestSTKPushRecordsAttempt(t *testing.T) {
	payments := &mockPaymentsStore{}
	payments.On("CreateMpesa", mock.MatchedBy(func(a *model.MpesaPayment) bool {
		return a.RentPaymentID == 42 &&
			a.OrganizationID == 3 &&
			a.PhoneNumber == "254712345678" &&
			strings.HasPrefix(a.CheckoutRequestID, "ws_CO_") &&
			a.MerchantRequestID != ""
	})).Return(nil)

	client := NewClient(payments, "174379", true)
	resp, err := client.STKPush(context.Background(), STKPushRequest{
		RentPaymentID:  42,
		OrganizationID: 3,
		PhoneNumber:    "0712345678",
		Amount:         15000,
		Reference:      "UNIT-A1-2026-08",
	})

	require.NoError(t, err)
	assert.Equal(t, "0", resp.ResponseCode)
	assert.True(t, strings.HasPrefix(resp.CheckoutRequestID, "ws_CO_"))
	payments.AssertExpectations(t)
}

func TestSTKPushRejectsBadInput(t *testing.T) {
	payments := &mockPaymentsStore{}
	client := NewClient(payments, "174379", true)

	_, err := client.STKPush(context.Background(), STKPushRequest{
		PhoneNumber: "12345",
		Amount:      100,
	})
	assert.Error(t, err)

	_, err = client.STKPush(context.Background(), STKPushRequest{
		PhoneNumber: "0712345678",
		Amount:      0,
	})
	assert.Error(t, err)

	payments.AssertNotCalled(t, "CreateMpesa", mock.Anything)
}

func TestSTKPushLiveModeUnconfigured(t *testing.T) {
	payments := &mockPaymentsStore{}
	client := NewClient(payments, "174379", false)

	_, err := client.STKPush(context.Background(), STKPushRequest{
		PhoneNumber: "0712345678",
		Amount:      100,
	})

	require.Error(t, err)
	payments.AssertNotCalled(t, "CreateMpesa", mock.Anything)
}

func TestProcessCallback(t *testing.T) {
	code := 0
	payments := &mockPaymentsStore{}
	payments.On("ApplyMpesaResult", mock.MatchedBy(func(r store.MpesaResult) bool {
		return r.CheckoutRequestID == "ws_CO_abc" && r.ResultCode == 0
	})).Return(&model.MpesaPayment{
		CheckoutRequestID: "ws_CO_abc",
		MpesaReceipt:      "QK12XYZ",
		ResultCode:        &code,
	}, nil)

	client := NewClient(payments, "174379", true)
	attempt, err := client.ProcessCallback(context.Background(), store.MpesaResult{
		CheckoutRequestID: "ws_CO_abc",
		ResultCode:        0,
		Receipt:           "QK12XYZ",
	})

	require.NoError(t, err)
	assert.Equal(t, "QK12XYZ", attempt.MpesaReceipt)
	payments.AssertExpectations(t)
}

func TestProcessCallbackRequiresCheckoutID(t *testing.T) {
	payments := &mockPaymentsStore{}
	client := NewClient(payments, "174379", true)

	_, err := client.ProcessCallback(context.Background(), store.MpesaResult{})

	require.Error(t, err)
	payments.AssertNotCalled(t, "ApplyMpesaResult", mock.Anything)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0712345678", want: "254712345678"},
		{in: "712345678", want: "254712345678"},
		{in: "254712345678", want: "254712345678"},
		{in: "+254712345678", want: "254712345678"},
		{in: "12345", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizePhone(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
