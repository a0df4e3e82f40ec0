package endpoints

import (
	"net/http"
	"time"

	"github.com/nyumbani/homemanager/pkg/audit"
	"github.com/nyumbani/homemanager/pkg/identity"
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/mpesa"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// CreatePaymentRequest is the POST /payments payload
type CreatePaymentRequest struct {
	UnitID   uint      `json:"unit_id"`
	TenantID uint      `json:"tenant_id"`
	Amount   float64   `json:"amount"`
	DueDate  time.Time `json:"due_date"`
	LateFee  float64   `json:"late_fee"`
}

// MarkPaidRequest is the POST /payments/{id}/mark-paid payload
type MarkPaidRequest struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// STKPushEndpointRequest is the POST /payments/{id}/mpesa payload
type STKPushEndpointRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// MpesaCallbackRequest is the gateway webhook payload
type MpesaCallbackRequest struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	ResultCode        int    `json:"result_code"`
	ResultDescription string `json:"result_desc"`
	MpesaReceipt      string `json:"mpesa_receipt_number"`
	TransactionDate   string `json:"transaction_date"`
}

// RegisterPaymentsEndpoints registers the rent payment endpoints
func RegisterPaymentsEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	payRouter := s.Router.PathPrefix("/payments").Subrouter()
	payRouter.Use(jwtMiddleware.Middleware)
	payRouter.HandleFunc("", handleListPayments(s)).Methods("GET")
	payRouter.HandleFunc("", handleCreatePayment(s)).Methods("POST")
	payRouter.HandleFunc("/{id}/mark-paid", handleMarkPaid(s)).Methods("POST")
	payRouter.HandleFunc("/{id}/mpesa", handleSTKPush(s)).Methods("POST")

	// The gateway calls back without a bearer token.
	s.Router.HandleFunc("/mpesa/callback", handleMpesaCallback(s)).Methods("POST")
}

func handleListPayments(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewReports, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		payments, err := s.PaymentsStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, payments)
	}
}

func handleCreatePayment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageBilling, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreatePaymentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UnitID == 0 || req.TenantID == 0 || req.Amount <= 0 {
			respondWithError(w, http.StatusBadRequest, "unit_id, tenant_id and a positive amount are required")
			return
		}

		payment := &model.RentPayment{
			OrganizationID: orgID,
			UnitID:         req.UnitID,
			TenantID:       req.TenantID,
			Amount:         req.Amount,
			DueDate:        req.DueDate,
			LateFee:        req.LateFee,
			Status:         model.PaymentPending,
		}
		if err := s.PaymentsStore.Create(payment); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, payment)
	}
}

// getGuardedPayment loads a payment and authorizes a billing action on
// it, returning the caller's identity alongside the payment.
func getGuardedPayment(s *server.Server, w http.ResponseWriter, r *http.Request) (*model.RentPayment, *identity.Identity, bool) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return nil, nil, false
	}
	paymentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid payment id")
		return nil, nil, false
	}
	payment, err := s.PaymentsStore.Get(paymentID)
	if err != nil {
		respondWithStoreError(w, err)
		return nil, nil, false
	}
	if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageBilling, payment); err != nil {
		respondWithStoreError(w, err)
		return nil, nil, false
	}
	return payment, id, true
}

func handleMarkPaid(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, id, ok := getGuardedPayment(s, w, r)
		if !ok {
			return
		}

		var req MarkPaidRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Method == "" {
			req.Method = model.MethodCash
		}

		payment, err := s.PaymentsStore.MarkPaid(payment.ID, req.Method, req.TransactionID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.PaymentEvent{
			ActorID:   id.UserID,
			OrgID:     payment.OrganizationID,
			PaymentID: payment.ID,
			Operation: "mark-paid",
			Status:    payment.Status,
			ClientIP:  id.RemoteIP.String(),
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, payment)
	}
}

func handleSTKPush(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, id, ok := getGuardedPayment(s, w, r)
		if !ok {
			return
		}

		var req STKPushEndpointRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.PhoneNumber == "" {
			respondWithError(w, http.StatusBadRequest, "phone_number is required")
			return
		}

		resp, err := s.Mpesa.STKPush(r.Context(), mpesa.STKPushRequest{
			RentPaymentID:  payment.ID,
			OrganizationID: payment.OrganizationID,
			PhoneNumber:    req.PhoneNumber,
			Amount:         payment.Amount + payment.LateFee,
			Reference:      payment.TransactionID,
		})
		if err != nil {
			respondWithError(w, http.StatusBadGateway, "failed to initiate payment")
			return
		}

		audit.Log(audit.PaymentEvent{
			ActorID:   id.UserID,
			OrgID:     payment.OrganizationID,
			PaymentID: payment.ID,
			Operation: "stk-push",
			Status:    model.PaymentInitiated,
			ClientIP:  id.RemoteIP.String(),
			Success:   true,
		})

		respondWithJSON(w, http.StatusAccepted, resp)
	}
}

func handleMpesaCallback(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MpesaCallbackRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result := store.MpesaResult{
			CheckoutRequestID: req.CheckoutRequestID,
			ResultCode:        req.ResultCode,
			ResultDescription: req.ResultDescription,
			Receipt:           req.MpesaReceipt,
		}
		if req.TransactionDate != "" {
			if ts, err := time.Parse("20060102150405", req.TransactionDate); err == nil {
				result.TransactionDate = &ts
			}
		}

		attempt, err := s.Mpesa.ProcessCallback(r.Context(), result)
		if err != nil {
			audit.Log(audit.PaymentEvent{
				Operation:    "gateway-result",
				ClientIP:     r.RemoteAddr,
				Success:      false,
				ErrorMessage: req.ResultDescription,
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.PaymentEvent{
			OrgID:     attempt.OrganizationID,
			PaymentID: attempt.RentPaymentID,
			Operation: "gateway-result",
			Status:    req.ResultDescription,
			ClientIP:  r.RemoteAddr,
			Success:   req.ResultCode == 0,
		})

		respondWithJSON(w, http.StatusOK, map[string]string{"status": "received"})
	}
}
